package domain

import "strconv"

// FormatArchived labels items that no longer appear in any menu section.
const FormatArchived = "archived"

// RawMenu is the menu payload exactly as the restaurant platform returns it.
type RawMenu struct {
	Items    []RawMenuItem    `json:"items"`
	Sections []RawMenuSection `json:"sections"`
}

// RawMenuItem carries a localized title and a price in minor units (cents).
type RawMenuItem struct {
	ID    string            `json:"id"`
	Title map[string]string `json:"title"`
	Price int64             `json:"price"`
}

type RawMenuSection struct {
	Children []RawSectionChild `json:"children"`
}

// RawSectionChild groups item ids under a localized section title.
// Children without an itemIds key are structural and get skipped.
type RawSectionChild struct {
	Title   map[string]string `json:"title"`
	ItemIDs []string          `json:"itemIds,omitempty"`
}

// MenuItem is one catalog entry. Price is in USD; Format is the packaging
// label derived from section membership and price.
type MenuItem struct {
	ID     string
	Name   string
	Price  float64
	Format string
}

// Catalog holds menu items keyed by id while preserving menu file order.
// Built once per run; immutable afterward.
type Catalog struct {
	byID  map[string]MenuItem
	order []string
}

func NewCatalog(items []MenuItem) *Catalog {
	c := &Catalog{byID: make(map[string]MenuItem, len(items))}
	for _, it := range items {
		if _, ok := c.byID[it.ID]; !ok {
			c.order = append(c.order, it.ID)
		}
		c.byID[it.ID] = it
	}
	return c
}

// Lookup returns the item for id, reporting whether it exists.
func (c *Catalog) Lookup(id string) (MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Items returns all items in menu file order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ItemNames returns distinct item names in menu file order.
// Downstream tables use this as the item column order.
func (c *Catalog) ItemNames() []string {
	seen := make(map[string]struct{}, len(c.order))
	names := make([]string, 0, len(c.order))
	for _, id := range c.order {
		name := c.byID[id].Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Table renders the catalog as a header row plus one row per item.
func (c *Catalog) Table() [][]string {
	rows := make([][]string, 0, len(c.order)+1)
	rows = append(rows, []string{"id", "name", "price", "format"})
	for _, id := range c.order {
		it := c.byID[id]
		rows = append(rows, []string{
			it.ID,
			it.Name,
			strconv.FormatFloat(it.Price, 'f', -1, 64),
			it.Format,
		})
	}
	return rows
}
