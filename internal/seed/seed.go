// Package seed fills an empty store with generated demo orders.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
)

// OrderSeeder places fake orders through the regular create command, so
// seeded orders are validated, stored and published like any other.
type OrderSeeder struct {
	handler commands.CreateOrderCommandHandler
	logger  *slog.Logger
}

func NewOrderSeeder(handler commands.CreateOrderCommandHandler, logger *slog.Logger) *OrderSeeder {
	return &OrderSeeder{
		handler: handler,
		logger:  logger.With("component", "order_seeder"),
	}
}

// Seed creates count orders and returns how many were stored before the
// first failure.
func (s *OrderSeeder) Seed(ctx context.Context, count int) (int, error) {
	for i := range count {
		details, err := order.NewDetails(FakeDraft())
		if err != nil {
			return i, fmt.Errorf("generate order %d: %w", i, err)
		}

		cmd, err := commands.NewCreateOrderCommand(details)
		if err != nil {
			return i, err
		}

		if _, err = s.handler.Handle(ctx, cmd); err != nil {
			return i, fmt.Errorf("create order %d: %w", i, err)
		}
	}

	if count > 0 {
		s.logger.InfoContext(ctx, "Demo orders created", "count", count)
	}
	return count, nil
}

// FakeDraft returns a random valid order payload with one to four dishes.
func FakeDraft() order.Draft {
	dishes := make([]order.DraftDish, gofakeit.Number(1, 4))
	for i := range dishes {
		quantity := gofakeit.Number(1, 5)
		dishes[i] = order.DraftDish{
			ID:          gofakeit.UUID(),
			Name:        gofakeit.Dinner(),
			Description: gofakeit.ProductDescription(),
			ImageURL:    "https://images.grubdash.example/" + gofakeit.LetterN(10) + ".jpg",
			Price:       math.Round(gofakeit.Price(5, 40)*100) / 100,
			Quantity:    &quantity,
		}
	}

	return order.Draft{
		DeliverTo:    gofakeit.Street() + ", " + gofakeit.City(),
		MobileNumber: gofakeit.Phone(),
		HasDishes:    true,
		Dishes:       dishes,
	}
}
