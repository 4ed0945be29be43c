// Package orderevents publishes order change events to Kafka.
package orderevents

import (
	"encoding/json"
	"time"

	"grubdash/internal/core/ports"

	"github.com/google/uuid"
)

// OrderChangedMessage is the JSON value of an order change message.
type OrderChangedMessage struct {
	EventID    string       `json:"eventId"`
	Type       string       `json:"type"`
	OccurredAt time.Time    `json:"occurredAt"`
	Order      OrderPayload `json:"order"`
}

// OrderPayload is the order state carried by a message.
type OrderPayload struct {
	ID           string        `json:"id"`
	DeliverTo    string        `json:"deliverTo"`
	MobileNumber string        `json:"mobileNumber"`
	Status       string        `json:"status"`
	Dishes       []DishPayload `json:"dishes"`
}

type DishPayload struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Quantity    int     `json:"quantity"`
}

func newOrderChangedMessage(event ports.OrderChangedEvent) OrderChangedMessage {
	o := event.Order
	dishes := o.Dishes()
	payload := make([]DishPayload, len(dishes))
	for i, d := range dishes {
		payload[i] = DishPayload{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
			Quantity:    d.Quantity,
		}
	}

	return OrderChangedMessage{
		EventID:    uuid.NewString(),
		Type:       string(event.Type),
		OccurredAt: event.OccurredAt,
		Order: OrderPayload{
			ID:           o.ID(),
			DeliverTo:    o.DeliverTo(),
			MobileNumber: o.MobileNumber(),
			Status:       o.Status().String(),
			Dishes:       payload,
		},
	}
}

func (m OrderChangedMessage) encode() ([]byte, error) {
	return json.Marshal(m)
}
