package order

import (
	"errors"
	"slices"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var (
	ErrDetailsIsNotConstructed = errors.New("Details must be created via NewDetails constructor")

	ErrDeliverToIsMissing    = errors.New("Order must include a deliverTo")
	ErrMobileNumberIsMissing = errors.New("Order must include a mobileNumber")
	ErrDishesAreMissing      = errors.New("Order must include a dish")
	ErrDishesAreEmpty        = errors.New("Order must include at least one dish")
)

// Draft is an order payload as decoded from a request, before any rule has
// been applied. The HTTP adapter fills it; NewDetails validates it.
type Draft struct {
	// ID is the optional id echoed by the client on update.
	ID           string
	DeliverTo    string
	MobileNumber string
	// HasDishes is false when the payload carried no dishes value at all.
	// When it is true but Dishes is empty the value was an empty list or not a
	// list.
	HasDishes bool
	Dishes    []DraftDish
	// Status is the raw status; empty when absent.
	Status string
}

// DraftDish is an unvalidated dish.
type DraftDish struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       float64
	// Quantity is nil when absent or not an integer.
	Quantity *int
}

// Details is the validated, client-editable content of an order.
type Details struct {
	deliverTo    string
	mobileNumber string
	dishes       []Dish

	guard guard.ConstructorGuard
}

// NewDetails applies the payload rules to d and returns the validated details.
//
// Rules, checked in this order; the first violation is returned:
//  1. deliverTo is present
//  2. mobileNumber is present
//  3. dishes is present
//  4. dishes is a non-empty list
//  5. every dish has an integer quantity greater than 0
//
// Missing values are reported as *errs.ValueIsRequiredError and broken ones as
// *errs.ValueIsInvalidError. The cause of either is the message for the client.
func NewDetails(d Draft) (Details, error) {
	switch {
	case d.DeliverTo == "":
		return Details{}, errs.NewValueIsRequiredErrorWithCause("deliverTo", ErrDeliverToIsMissing)
	case d.MobileNumber == "":
		return Details{}, errs.NewValueIsRequiredErrorWithCause("mobileNumber", ErrMobileNumberIsMissing)
	case !d.HasDishes:
		return Details{}, errs.NewValueIsRequiredErrorWithCause("dishes", ErrDishesAreMissing)
	case len(d.Dishes) == 0:
		return Details{}, errs.NewValueIsInvalidErrorWithCause("dishes", ErrDishesAreEmpty)
	}

	dishes := make([]Dish, len(d.Dishes))
	for i, dd := range d.Dishes {
		if err := validateQuantity(i, dd.Quantity); err != nil {
			return Details{}, err
		}
		dishes[i] = Dish{
			ID:          dd.ID,
			Name:        dd.Name,
			Description: dd.Description,
			ImageURL:    dd.ImageURL,
			Price:       dd.Price,
			Quantity:    *dd.Quantity,
		}
	}

	return Details{
		deliverTo:    d.DeliverTo,
		mobileNumber: d.MobileNumber,
		dishes:       dishes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the details were produced by NewDetails.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsIsNotConstructed)
}

func (d Details) DeliverTo() string {
	return d.deliverTo
}

func (d Details) MobileNumber() string {
	return d.mobileNumber
}

// Dishes returns a copy of the dish list.
func (d Details) Dishes() []Dish {
	return slices.Clone(d.dishes)
}
