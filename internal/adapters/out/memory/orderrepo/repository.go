package orderrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/order"
)

var ErrOrderAlreadyExists = errors.New("order with this id already exists")

// TableAccessor grants access to the order table under the appropriate lock.
type TableAccessor interface {
	Read(fn func(t *Table) error) error
	Write(fn func(t *Table) error) error
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// MemoryOrderRepository implements OrderRepository on top of a Table.
type MemoryOrderRepository struct {
	tables  TableAccessor
	tracker aggregateTracker
}

// NewMemoryOrderRepository creates a new in-memory order repository.
func NewMemoryOrderRepository(tables TableAccessor, tracker aggregateTracker) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		tables:  tables,
		tracker: tracker,
	}
}

// Add stores a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := fromDomain(aggregate)
	err := r.tables.Write(func(t *Table) error {
		if !t.insert(rec) {
			return ErrOrderAlreadyExists
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored order with the same id.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := fromDomain(aggregate)
	err := r.tables.Write(func(t *Table) error {
		if !t.replace(rec) {
			return order.NewNotFoundError(rec.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *MemoryOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec OrderRecord
	err := r.tables.Read(func(t *Table) error {
		var ok bool
		if rec, ok = t.find(id); !ok {
			return order.NewNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDomain(rec)
}

// Remove deletes the order with the given id.
func (r *MemoryOrderRepository) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.tables.Write(func(t *Table) error {
		if !t.delete(id) {
			return order.NewNotFoundError(id)
		}
		return nil
	})
}

// GetAll returns every order in insertion order.
func (r *MemoryOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []OrderRecord
	_ = r.tables.Read(func(t *Table) error {
		records = t.all()
		return nil
	})

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
