package http

import (
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"
)

// dataResponse wraps every successful body.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type orderResponse struct {
	ID           string         `json:"id"`
	DeliverTo    string         `json:"deliverTo"`
	MobileNumber string         `json:"mobileNumber"`
	Status       string         `json:"status,omitempty"`
	Dishes       []dishResponse `json:"dishes"`
}

type dishResponse struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Quantity    int     `json:"quantity"`
}

type statusSummaryResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

func newOrderResponse(o *order.Order) orderResponse {
	dishes := o.Dishes()
	resp := orderResponse{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       string(o.Status()),
		Dishes:       make([]dishResponse, len(dishes)),
	}
	for i, d := range dishes {
		resp.Dishes[i] = dishResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
			Quantity:    d.Quantity,
		}
	}
	return resp
}

func newOrderListResponse(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = newOrderResponse(o)
	}
	return resp
}

func newStatusSummaryResponse(summary queries.GetOrderStatusSummaryQueryResponse) statusSummaryResponse {
	return statusSummaryResponse{
		Total:    summary.Total,
		ByStatus: summary.ByStatus,
	}
}
