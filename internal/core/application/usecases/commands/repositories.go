// Package commands contains the operations that modify the order store.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, then event publication.
package commands

import (
	"context"
	"log/slog"
	"time"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// eventNotifier publishes change events once a command has committed.
// A failed publication is logged and swallowed: the change already happened.
type eventNotifier struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func (n eventNotifier) notify(ctx context.Context, eventType ports.OrderEventType, o *order.Order) {
	event := ports.OrderChangedEvent{
		Type:       eventType,
		Order:      o,
		OccurredAt: time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.WarnContext(ctx, "Order event not published",
			"event", string(eventType), "order_id", o.ID(), "error", err)
	}
}
