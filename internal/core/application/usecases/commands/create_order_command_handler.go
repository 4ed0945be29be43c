package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler places new orders. Each order gets a fresh id from
// the IDGenerator and starts without a status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        kernel.IDGenerator
	events     eventNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ids kernel.IDGenerator,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		events:     eventNotifier{publisher: publisher, logger: logger},
	}
}

// Handle creates the order, stores it and returns it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(h.ids.NextID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.notify(ctx, ports.OrderCreated, o)
	return o, nil
}
