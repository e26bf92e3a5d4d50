package domain

// Order status and delivery type values used by the pipeline.
const (
	StatusCanceled       = "canceled"
	DeliveryTypeDelivery = "delivery"
)

// RawOrder is one order exactly as the restaurant platform returns it.
// Timestamps are epoch milliseconds UTC; monetary amounts are minor units (cents).
type RawOrder struct {
	ID           string        `json:"id"`
	Created      int64         `json:"created"`
	Status       string        `json:"status"`
	Price        int64         `json:"price"`
	Comment      string        `json:"comment,omitempty"`
	Delivery     *RawDelivery  `json:"delivery,omitempty"`
	Contact      RawContact    `json:"contact"`
	Address      RawAddress    `json:"address"`
	OrderCharges []RawCharge   `json:"orderCharges,omitempty"`
	OrderItems   []RawLineItem `json:"orderItems"`
}

type RawDelivery struct {
	Type   string `json:"type"`
	Time   int64  `json:"time,omitempty"`
	Charge *int64 `json:"charge,omitempty"`
}

type RawContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// RawAddress carries only the address fields the reports use.
type RawAddress struct {
	Formatted string `json:"formatted"`
	Apt       string `json:"apt,omitempty"`
	Entrance  string `json:"entrance,omitempty"`
	Floor     string `json:"floor,omitempty"`
	OnArrival string `json:"onArrival,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

type RawCharge struct {
	Amount int64 `json:"amount"`
}

type RawLineItem struct {
	ItemID string `json:"itemId"`
	Count  int    `json:"count"`
}

// FlatOrder is one order with its sub-records promoted to flat fields and one
// summed count per catalog item name. Monetary fields remain in cents; the
// formatter converts them to dollars exactly once.
type FlatOrder struct {
	ID      string
	Created int64
	Status  string
	Price   int64
	Comment string

	DeliveryType   string
	DeliveryTime   int64
	DeliveryCharge *int64

	FirstName string
	LastName  string
	Phone     string
	Email     string

	// Tip is nil when the order carried no charge line items.
	Tip *int64

	AddressFormatted string
	AddressApt       string
	AddressEntrance  string
	AddressFloor     string
	AddressOnArrival string
	AddressComment   string

	// ItemCounts maps catalog item name to the summed ordered count.
	ItemCounts map[string]int
}
