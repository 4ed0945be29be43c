package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// ListOrdersQueryHandler returns the whole store.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler reading from the given repository.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns all orders in insertion order; an empty store yields an
// empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetAll(ctx)
}
