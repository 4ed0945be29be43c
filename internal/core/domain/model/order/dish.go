package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Dish is a line item of an order. It is not addressable on its own; the
// descriptive fields are carried as the client sent them and only Quantity is
// subject to validation.
type Dish struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Quantity    int
}

// validateQuantity enforces the quantity rule for the dish at position index.
// quantity is nil when the client sent no quantity or a value that is not an
// integer.
func validateQuantity(index int, quantity *int) error {
	if quantity == nil || *quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("dishes[%d].quantity", index),
			fmt.Errorf("Dish %d must have a quantity that is an integer greater than 0", index),
		)
	}
	return nil
}
