package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders that are still pending.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventNotifier
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		events:     eventNotifier{publisher: publisher, logger: logger},
	}
}

// Handle removes the order. A non-pending order is kept and
// errs.ErrValueIsInvalid returned.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ValidateDelete(); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.notify(ctx, ports.OrderDeleted, o)
	return nil
}
