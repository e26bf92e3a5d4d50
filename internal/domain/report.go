package domain

import (
	"strconv"
	"time"
)

// timestampLayout matches the zone-aware rendering the published sheets expect.
const timestampLayout = "2006-01-02 15:04:05-07:00"

// FormattedOrder is one report row: Pacific timestamps, dollar amounts,
// zero-filled item counts, and the scheduled execution date.
type FormattedOrder struct {
	ID      string
	Created time.Time
	Status  string
	Price   float64
	Comment string

	DeliveryType   string
	DeliveryTime   time.Time
	DeliveryCharge float64

	FirstName string
	LastName  string
	Phone     string
	Email     string
	Tip       float64

	AddressFormatted string
	AddressApt       string
	AddressEntrance  string
	AddressFloor     string
	AddressOnArrival string
	AddressComment   string

	ItemCounts map[string]int

	ExecutionDate Date
}

// ItemCount returns the ordered count for an item name, zero when absent.
func (o FormattedOrder) ItemCount(name string) int {
	return o.ItemCounts[name]
}

// NumItems sums the counts across all item columns of the row.
func (o FormattedOrder) NumItems(itemNames []string) int {
	total := 0
	for _, name := range itemNames {
		total += o.ItemCounts[name]
	}
	return total
}

// scalarColumns is the fixed column set preceding the per-item columns.
var scalarColumns = []string{
	"id", "created", "status", "price", "comment",
	"delivery.type", "delivery.time", "delivery.charge",
	"firstName", "lastName", "phone", "email", "tip",
	"address.formatted", "address.apt", "address.entrance",
	"address.floor", "address.onArrival", "address.comment",
}

// Report is the formatted orders table. ItemNames fixes the set and order of
// item columns; every row renders a value for each of them.
type Report struct {
	ItemNames []string
	Orders    []FormattedOrder
}

// Table renders the report as a header row plus one row per order, with the
// execution date as the final column.
func (r Report) Table() [][]string {
	return renderOrders(r.ItemNames, r.Orders, "Execution Date")
}

// DailyDeliveries is the report filtered to delivery orders scheduled for Date.
type DailyDeliveries struct {
	Date      Date
	ItemNames []string
	Orders    []FormattedOrder
}

// Table renders today's deliveries; the date column is labeled Delivery Date.
func (d DailyDeliveries) Table() [][]string {
	return renderOrders(d.ItemNames, d.Orders, "Delivery Date")
}

func renderOrders(itemNames []string, orders []FormattedOrder, dateHeader string) [][]string {
	header := make([]string, 0, len(scalarColumns)+len(itemNames)+1)
	header = append(header, scalarColumns...)
	header = append(header, itemNames...)
	header = append(header, dateHeader)

	rows := make([][]string, 0, len(orders)+1)
	rows = append(rows, header)
	for _, o := range orders {
		row := make([]string, 0, len(header))
		row = append(row,
			o.ID,
			formatTimestamp(o.Created),
			o.Status,
			formatMoney(o.Price),
			o.Comment,
			o.DeliveryType,
			formatTimestamp(o.DeliveryTime),
			formatMoney(o.DeliveryCharge),
			o.FirstName,
			o.LastName,
			o.Phone,
			o.Email,
			formatMoney(o.Tip),
			o.AddressFormatted,
			o.AddressApt,
			o.AddressEntrance,
			o.AddressFloor,
			o.AddressOnArrival,
			o.AddressComment,
		)
		for _, name := range itemNames {
			row = append(row, strconv.Itoa(o.ItemCounts[name]))
		}
		row = append(row, o.ExecutionDate.String())
		rows = append(rows, row)
	}
	return rows
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ManifestEntry is one routing stop handed to the dispatch system.
type ManifestEntry struct {
	Name             string
	Phone            string
	Email            string
	AddressFormatted string
	AddressEntrance  string
	AddressFloor     string
	AddressApt       string
	AddressComment   string
	AddressOnArrival string
	NumItems         int

	// Clock times rendered as HH:MM; ServiceTime is minutes per stop.
	StartTime   string
	EndTime     string
	ServiceTime int
}

// Manifest is the route-planning extract for one delivery day.
type Manifest struct {
	Entries []ManifestEntry
}

// Table renders the manifest as a header row plus one row per stop.
func (m Manifest) Table() [][]string {
	rows := make([][]string, 0, len(m.Entries)+1)
	rows = append(rows, []string{
		"name", "phone", "email",
		"address.formatted", "address.entrance", "address.floor",
		"address.apt", "address.comment", "address.onArrival",
		"numItems", "startTime", "endTime", "serviceTime",
	})
	for _, e := range m.Entries {
		rows = append(rows, []string{
			e.Name, e.Phone, e.Email,
			e.AddressFormatted, e.AddressEntrance, e.AddressFloor,
			e.AddressApt, e.AddressComment, e.AddressOnArrival,
			strconv.Itoa(e.NumItems), e.StartTime, e.EndTime,
			strconv.Itoa(e.ServiceTime),
		})
	}
	return rows
}
