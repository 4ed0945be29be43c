package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// GetOrderQueryHandler resolves an order id to the stored order.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler reading from the given repository.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order or an error wrapping errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
