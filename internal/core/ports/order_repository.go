// Package ports defines the interfaces the order use cases depend on.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and per-test isolation.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// Orders are kept in insertion order; identifiers are compared by exact
// string equality.
type OrderRepository interface {
	// Add inserts a new order. The id must not already be stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that has the aggregate's id.
	// Returns errs.ErrObjectNotFound when there is none.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get finds an order by id.
	// Returns errs.ErrObjectNotFound when there is none.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Remove deletes the order with the given id.
	// Returns errs.ErrObjectNotFound when there is none.
	Remove(ctx context.Context, id string) error

	// GetAll returns every stored order in insertion order. The result is
	// never nil.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
