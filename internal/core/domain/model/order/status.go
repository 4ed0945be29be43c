package order

import (
	"errors"
	"fmt"
	"strings"

	"grubdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Orders are created without a status (Unset), which counts as pending. Clients
// move them through the remaining states with updates:
//
//	(unset) ─┬─> pending ─> preparing ─> out-for-delivery ─> delivered
//	         └──────────────────────────────────────────────────┘
//
// The service does not force the order of the intermediate states. Delivered
// is final: a delivered order can no longer be changed.
type Status string

const (
	// Unset is the status of a freshly created order. It is treated as Pending.
	Unset Status = ""

	// Pending means the order was accepted but preparation has not started.
	// Only pending orders can be deleted.
	Pending Status = "pending"

	// Preparing means the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery means a courier is on the way.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is the final state.
	Delivered Status = "delivered"
)

// Statuses lists the legal statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

var (
	// ErrStatusIsInvalid is the cause reported when an update carries no status
	// or one outside Statuses.
	ErrStatusIsInvalid = fmt.Errorf("Order must have a status of %s", joinStatuses(Statuses()))

	// ErrDeliveredOrderIsImmutable is the cause reported when an update touches
	// a delivered order.
	ErrDeliveredOrderIsImmutable = errors.New("A delivered order cannot be changed")

	// ErrOrderIsNotPending is the cause reported when deleting an order that is
	// no longer pending.
	ErrOrderIsNotPending = errors.New("An order cannot be deleted unless it is pending")
)

// Validate checks that s is one of Statuses. Unset is not a valid status for
// a client to send.
func (s Status) Validate() error {
	for _, legal := range Statuses() {
		if s == legal {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", ErrStatusIsInvalid)
}

// String returns the wire name of the status, "pending" for Unset.
func (s Status) String() string {
	if s == Unset {
		return string(Pending)
	}
	return string(s)
}

// IsPending reports whether the order has not entered preparation yet.
func (s Status) IsPending() bool {
	return s == Unset || s == Pending
}

// ValidateDelete checks whether an order in status s may be removed.
func (s Status) ValidateDelete() error {
	if !s.IsPending() {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrOrderIsNotPending)
	}
	return nil
}

// ChangeTo returns target if an order in status s may be updated to it.
//
// The checks run in this order and stop at the first failure:
//   - target must be one of Statuses
//   - neither s nor target may be Delivered
//
// A delivered target is refused as well: the delivered state is immutable, and
// the service does not let an update land an order in it.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unset, err
	}
	if s == Delivered || target == Delivered {
		return Unset, errs.NewValueIsInvalidErrorWithCause("status", ErrDeliveredOrderIsImmutable)
	}
	return target, nil
}

func joinStatuses(statuses []Status) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
