package memory

import (
	"context"
	"errors"

	"grubdash/internal/adapters/out/memory/orderrepo"
	"grubdash/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// MemoryUnitOfWorkFactory creates UnitOfWork instances bound to one Database.
type MemoryUnitOfWorkFactory struct {
	db *Database
}

// NewMemoryUnitOfWorkFactory creates a factory for in-memory units of work.
func NewMemoryUnitOfWorkFactory(db *Database) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork. Instances must not be shared between
// goroutines.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// MemoryUnitOfWork is a transaction over the order table.
//
// Between Begin and Commit or Rollback the unit of work holds the database's
// write lock; every other reader and writer waits.
type MemoryUnitOfWork struct {
	db                *Database
	staged            *orderrepo.Table
	trackedAggregates []trackedAggregate
}

// Begin takes the write lock and stages a copy of the table.
// Calling Begin on an active unit of work is a no-op.
func (uow *MemoryUnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.db.mu.Lock()
	uow.staged = uow.db.orders.Clone()
	return nil
}

// Commit makes the staged table the committed one and releases the lock.
func (uow *MemoryUnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}

	uow.db.orders = uow.staged
	uow.staged = nil
	uow.db.mu.Unlock()
	return nil
}

// Rollback discards the staged table and releases the lock.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}

	uow.staged = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.db.mu.Unlock()
	return nil
}

// OrderRepository returns a repository working on the staged table when a
// transaction is active, otherwise on the committed table.
func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.staged == nil {
		return orderrepo.NewMemoryOrderRepository(uow.db, uow)
	}
	return orderrepo.NewMemoryOrderRepository(stagedTable{table: uow.staged}, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
func (uow *MemoryUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the ids of the aggregates changed so far, in order.
func (uow *MemoryUnitOfWork) TrackedIDs() []string {
	ids := make([]string, len(uow.trackedAggregates))
	for i, tracked := range uow.trackedAggregates {
		ids[i] = tracked.ID
	}
	return ids
}

// stagedTable gives access to a table already protected by the unit of
// work's write lock.
type stagedTable struct {
	table *orderrepo.Table
}

func (s stagedTable) Read(fn func(t *orderrepo.Table) error) error {
	return fn(s.table)
}

func (s stagedTable) Write(fn func(t *orderrepo.Table) error) error {
	return fn(s.table)
}
