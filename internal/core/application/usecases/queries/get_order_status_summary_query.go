package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
		"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
	)
)

// GetOrderStatusSummaryQuery counts stored orders per status.
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusSummaryQuery creates the summary query.
func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// GetOrderStatusSummaryQueryResponse is the per-status read model.
//
// Example:
//
//	GetOrderStatusSummaryQueryResponse{
//	    Total: 3,
//	    ByStatus: map[string]int{
//	        "pending": 2, "preparing": 1, "out-for-delivery": 0, "delivered": 0,
//	    },
//	}
type GetOrderStatusSummaryQueryResponse struct {
	Total int
	// ByStatus has an entry for each legal status. Orders without a status
	// count as pending.
	ByStatus map[string]int
}
