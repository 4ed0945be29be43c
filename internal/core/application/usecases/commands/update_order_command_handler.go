package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderCommandHandler replaces stored orders.
//
// The lookup, the update rules and the write happen inside one unit of work,
// so a rejected update leaves the store exactly as it was and two concurrent
// updates of the same order cannot interleave.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventNotifier
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     eventNotifier{publisher: publisher, logger: logger},
	}
}

// Handle applies the update and returns the stored result.
// Returns errs.ErrObjectNotFound if the order is gone and errs.ErrValueIsInvalid
// if an update rule is violated.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Replace(cmd.PayloadID(), cmd.Details(), cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.notify(ctx, ports.OrderUpdated, o)
	return o, nil
}
