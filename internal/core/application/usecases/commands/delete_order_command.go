package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove a pending order.
type DeleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a delete command for the order with the
// given route id.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if orderID == "" {
		return DeleteOrderCommand{}, ErrOrderIDIsRequired
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
