package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Keys of the values the handler chain stores on the echo context.
const (
	orderIDKey = "orderId"
	orderKey   = "order"
	draftKey   = "draft"
	detailsKey = "details"
)

var errInvalidRequestBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// orderExists resolves the orderId path parameter to a stored order. The
// rest of the chain runs only when the order exists.
func (s *Server) orderExists(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var orderID string
		err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &orderID,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return order.NewNotFoundError(c.Param("orderId"))
		}

		query, err := queries.NewGetOrderQuery(orderID)
		if err != nil {
			return order.NewNotFoundError(orderID)
		}

		o, err := s.getOrderHandler.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}

		c.Set(orderIDKey, orderID)
		c.Set(orderKey, o)
		return next(c)
	}
}

// isValid decodes the request body and applies the payload rules. An empty
// body is treated as an empty object.
func (s *Server) isValid(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req orderRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return errInvalidRequestBody
		}

		details, err := order.NewDetails(req.Data.draft)
		if err != nil {
			return err
		}

		c.Set(draftKey, req.Data.draft)
		c.Set(detailsKey, details)
		return next(c)
	}
}
