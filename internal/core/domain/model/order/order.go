package order

import (
	"errors"
	"fmt"

	"grubdash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrIDIsRequired = errors.New("Order must have an id")
)

// Order represents a delivery order. It is the aggregate root of the package.
//
// Order follows these invariants:
//   - The id is non-empty and never changes
//   - The details passed NewDetails (so dishes are non-empty with positive quantities)
//   - A delivered order is never changed again
//   - Only a pending order may be deleted
type Order struct {
	// id is the unique identifier issued at creation
	id string
	// details holds deliverTo, mobileNumber and dishes
	details Details
	// status is Unset until the first update
	status Status
	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order with the given identifier and validated details.
// The status of a new order is Unset.
//
// Example:
//
//	details, err := order.NewDetails(draft)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(ids.NextID(), details)
func NewOrder(id string, details Details) (*Order, error) {
	return RestoreOrder(id, details, Unset)
}

// RestoreOrder rebuilds an order from stored state. Unlike NewOrder it accepts
// any status; Unset and the members of Statuses are valid.
func RestoreOrder(id string, details Details, status Status) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) DeliverTo() string {
	return o.details.DeliverTo()
}

func (o *Order) MobileNumber() string {
	return o.details.MobileNumber()
}

// Dishes returns a copy of the order's dishes.
func (o *Order) Dishes() []Dish {
	return o.details.Dishes()
}

func (o *Order) Status() Status {
	return o.status
}

// Replace overwrites the details and status of the order with the content of
// an update request.
//
// payloadID is the id carried in the request body, empty when absent. status is
// the raw status from the body. The rules run in this order and the first
// failure is returned with the order left untouched:
//   - a non-empty payloadID must equal the order id
//   - status must be one of Statuses
//   - neither the current nor the requested status may be Delivered
func (o *Order) Replace(payloadID string, details Details, status string) error {
	if payloadID != "" && payloadID != o.id {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("Order id does not match route id. Order: %s, Route: %s", payloadID, o.id),
		)
	}

	newStatus, err := o.status.ChangeTo(Status(status))
	if err != nil {
		return err
	}

	if err = details.Validate(); err != nil {
		return err
	}

	o.details = details
	o.status = newStatus
	return nil
}

// ValidateDelete reports whether the order may be removed from the store.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredErrorWithCause("id", ErrIDIsRequired)
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if status == Unset {
		o.status = Unset
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// NewNotFoundError reports that no stored order has the given id.
func NewNotFoundError(id string) *errs.ObjectNotFoundError {
	return errs.NewObjectNotFoundErrorWithCause("orderId", id, fmt.Errorf("Order does not exist: %s", id))
}
