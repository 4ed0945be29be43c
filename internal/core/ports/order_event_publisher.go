package ports

import (
	"context"
	"time"

	"grubdash/internal/core/domain/model/order"
)

// OrderEventType names a change to the order store.
type OrderEventType string

const (
	OrderCreated OrderEventType = "order.created"
	OrderUpdated OrderEventType = "order.updated"
	OrderDeleted OrderEventType = "order.deleted"
)

// OrderChangedEvent describes one committed change. For deletions Order holds
// the state the order had when it was removed.
type OrderChangedEvent struct {
	Type       OrderEventType
	Order      *order.Order
	OccurredAt time.Time
}

// OrderEventPublisher delivers OrderChangedEvents to interested parties.
// Publishing happens after the change is committed; a publishing failure does
// not undo the change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent) error
}
