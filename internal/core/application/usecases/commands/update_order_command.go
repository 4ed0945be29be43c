package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// UpdateOrderCommand represents a request to replace the content of an
// existing order.
//
// orderID comes from the route, payloadID and status from the request body.
// payloadID may be empty. The status is kept raw because checking it is part
// of the update rules, which run after the route id check.
type UpdateOrderCommand struct {
	orderID   string
	payloadID string
	details   order.Details
	status    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update command.
func NewUpdateOrderCommand(orderID, payloadID string, details order.Details, status string) (UpdateOrderCommand, error) {
	if orderID == "" {
		return UpdateOrderCommand{}, ErrOrderIDIsRequired
	}
	if err := details.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:   orderID,
		payloadID: payloadID,
		details:   details,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) PayloadID() string {
	return c.payloadID
}

func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}

func (c UpdateOrderCommand) Status() string {
	return c.status
}
