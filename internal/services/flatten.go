package services

import (
	"orders-report-service/internal/domain"
)

// FlattenOrders produces one flat record per raw order: sub-records become
// flat fields, the tip is lifted out of the charge list, and line items are
// summed into per-item-name counts resolved through the catalog.
//
// An order referencing an item id the catalog does not know fails the whole
// run; a silent drop would hide catalog/order desync.
func FlattenOrders(orders []domain.RawOrder, catalog *domain.Catalog) ([]domain.FlatOrder, error) {
	out := make([]domain.FlatOrder, 0, len(orders))
	for _, o := range orders {
		flat := domain.FlatOrder{
			ID:      o.ID,
			Created: o.Created,
			Status:  o.Status,
			Price:   o.Price,
			Comment: o.Comment,

			FirstName: o.Contact.FirstName,
			LastName:  o.Contact.LastName,
			Phone:     o.Contact.Phone,
			Email:     o.Contact.Email,

			AddressFormatted: o.Address.Formatted,
			AddressApt:       o.Address.Apt,
			AddressEntrance:  o.Address.Entrance,
			AddressFloor:     o.Address.Floor,
			AddressOnArrival: o.Address.OnArrival,
			AddressComment:   o.Address.Comment,
		}

		if o.Delivery != nil {
			flat.DeliveryType = o.Delivery.Type
			flat.DeliveryTime = o.Delivery.Time
			flat.DeliveryCharge = o.Delivery.Charge
		}

		if len(o.OrderCharges) > 0 {
			tip := o.OrderCharges[0].Amount
			// A legacy coupon recorded its discount as a negative tip for
			// non-tipping customers. Clamp to zero rather than drop.
			if tip < 0 {
				tip = 0
			}
			flat.Tip = &tip
		}

		// Group line items by item name; customers can add the same item
		// as multiple lines.
		counts := make(map[string]int, len(o.OrderItems))
		for _, line := range o.OrderItems {
			item, ok := catalog.Lookup(line.ItemID)
			if !ok {
				return nil, &domain.ItemNotFoundError{OrderID: o.ID, ItemID: line.ItemID}
			}
			counts[item.Name] += line.Count
		}
		flat.ItemCounts = counts

		out = append(out, flat)
	}
	return out, nil
}
