// Package memory keeps the order store in process memory.
//
// A Database owns a single order table guarded by a sync.RWMutex. Reads made
// outside a unit of work take the read lock for the duration of one call.
// A unit of work takes the write lock in Begin, applies its changes to a
// private copy of the table and swaps the copy in on Commit, so a failed or
// abandoned command leaves no trace and two commands never interleave.
//
// Usage:
//
//	db := memory.NewDatabase()
//	factory := memory.NewMemoryUnitOfWorkFactory(db)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"sync"

	"grubdash/internal/adapters/out/memory/orderrepo"
	"grubdash/internal/core/ports"
)

// Database is the in-memory order store.
type Database struct {
	mu     sync.RWMutex
	orders *orderrepo.Table
}

// NewDatabase creates an empty store.
func NewDatabase() *Database {
	return &Database{orders: orderrepo.NewTable()}
}

// Read runs fn with the committed table under the read lock.
func (db *Database) Read(fn func(t *orderrepo.Table) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.orders)
}

// Write runs fn with the committed table under the write lock.
func (db *Database) Write(fn func(t *orderrepo.Table) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.orders)
}

// OrderRepository returns a repository whose every call is applied to the
// committed table on its own. Queries use it.
func (db *Database) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(db, noopTracker{})
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}
