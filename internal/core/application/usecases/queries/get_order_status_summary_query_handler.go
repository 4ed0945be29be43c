package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// GetOrderStatusSummaryQueryHandler computes the status summary from the
// committed store.
type GetOrderStatusSummaryQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderStatusSummaryQueryHandler creates a handler reading from the
// given repository.
func NewGetOrderStatusSummaryQueryHandler(orders ports.OrderRepository) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{orders: orders}
}

// Handle counts the orders.
func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) (GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	byStatus := make(map[string]int, len(order.Statuses()))
	for _, s := range order.Statuses() {
		byStatus[string(s)] = 0
	}
	for _, o := range orders {
		byStatus[o.Status().String()]++
	}

	return GetOrderStatusSummaryQueryResponse{
		Total:    len(orders),
		ByStatus: byStatus,
	}, nil
}
