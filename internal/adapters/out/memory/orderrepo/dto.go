// Package orderrepo provides the stored representation of orders and the
// repository that reads and writes it.
// Orders are kept as plain records so that callers never share mutable state
// with the store.
package orderrepo

import (
	"grubdash/internal/core/domain/model/order"
)

// OrderRecord is the stored form of an order aggregate.
type OrderRecord struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Dishes       []DishRecord
	Status       string
}

// DishRecord is the stored form of a dish.
type DishRecord struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Quantity    int
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(o *order.Order) OrderRecord {
	dishes := o.Dishes()
	records := make([]DishRecord, len(dishes))
	for i, d := range dishes {
		records[i] = DishRecord{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
			Quantity:    d.Quantity,
		}
	}

	return OrderRecord{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Dishes:       records,
		Status:       string(o.Status()),
	}
}

// toDomain rebuilds an order aggregate from a record using RestoreOrder.
func toDomain(rec OrderRecord) (*order.Order, error) {
	draft := order.Draft{
		DeliverTo:    rec.DeliverTo,
		MobileNumber: rec.MobileNumber,
		HasDishes:    true,
		Dishes:       make([]order.DraftDish, len(rec.Dishes)),
	}
	for i, d := range rec.Dishes {
		quantity := d.Quantity
		draft.Dishes[i] = order.DraftDish{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
			Quantity:    &quantity,
		}
	}

	details, err := order.NewDetails(draft)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(rec.ID, details, order.Status(rec.Status))
}
