package http

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"grubdash/internal/core/domain/model/order"
)

// orderRequest is the body of create and update requests:
//
//	{"data": {"deliverTo": "...", "mobileNumber": "...", "dishes": [{"quantity": 1}], "status": "...", "id": "..."}}
type orderRequest struct {
	Data orderData `json:"data"`
}

// orderData decodes the loosely typed payload into an order.Draft.
//
// Presence follows JSON truthiness: null, false, 0 and "" count as absent.
// deliverTo, mobileNumber and status are only taken from JSON strings. A
// truthy dishes value that is not a list yields HasDishes with no dishes. A
// quantity is kept only when it is a JSON number with an integral value.
type orderData struct {
	draft order.Draft
}

func (d *orderData) UnmarshalJSON(b []byte) error {
	d.draft = order.Draft{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		// A data value that is not an object carries no fields.
		return nil
	}

	d.draft.ID = idValue(fields["id"])
	d.draft.DeliverTo = stringValue(fields["deliverTo"])
	d.draft.MobileNumber = stringValue(fields["mobileNumber"])
	d.draft.Status = stringValue(fields["status"])

	if raw, ok := fields["dishes"]; ok && isTruthy(raw) {
		d.draft.HasDishes = true

		var items []json.RawMessage
		if json.Unmarshal(raw, &items) == nil {
			d.draft.Dishes = make([]order.DraftDish, len(items))
			for i, item := range items {
				d.draft.Dishes[i] = decodeDish(item)
			}
		}
	}

	return nil
}

func decodeDish(raw json.RawMessage) order.DraftDish {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return order.DraftDish{}
	}

	dish := order.DraftDish{
		ID:          idValue(fields["id"]),
		Name:        stringValue(fields["name"]),
		Description: stringValue(fields["description"]),
		ImageURL:    stringValue(fields["image_url"]),
		Quantity:    integerValue(fields["quantity"]),
	}
	if price, ok := numberValue(fields["price"]); ok {
		dish.Price = price
	}
	return dish
}

func stringValue(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// idValue is stringValue that also accepts truthy scalars, rendered as their
// JSON text, so that a numeric id is compared with the route id instead of
// being ignored.
func idValue(raw json.RawMessage) string {
	if s := stringValue(raw); s != "" {
		return s
	}
	if !isTruthy(raw) {
		return ""
	}
	return string(bytes.TrimSpace(raw))
}

func numberValue(raw json.RawMessage) (float64, bool) {
	var f float64
	if json.Unmarshal(raw, &f) != nil {
		return 0, false
	}
	return f, true
}

// maxExactInteger is the largest integer every float64 below it represents.
const maxExactInteger = 1 << 53

func integerValue(raw json.RawMessage) *int {
	f, ok := numberValue(raw)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxExactInteger {
		return nil
	}
	n := int(f)
	return &n
}

func isTruthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		return f != 0
	}
	return true
}
