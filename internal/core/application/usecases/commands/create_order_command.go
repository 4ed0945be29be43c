package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	details, err := order.NewDetails(draft)
//	if err != nil {
//	    return err // 400
//	}
//	cmd, err := NewCreateOrderCommand(details)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order with the given
// validated details.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	if err := details.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the validated order content.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
