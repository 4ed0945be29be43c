// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell instances built by their constructor apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the embedding object was created through its
// constructor. The zero value is "not constructed".
//
// Example usage:
//
//	var ErrDeleteOrderCommandIsNotConstructed = errors.New("DeleteOrderCommand must be created via NewDeleteOrderCommand")
//
//	type DeleteOrderCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c DeleteOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
