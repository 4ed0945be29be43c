package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/pkg/errs"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// NewErrorHandler returns the echo error handler that renders every failure
// as {"error": message}.
//
// Domain errors carry the client message as their cause. Unknown errors are
// answered with 500, logged and reported to Sentry.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := describeError(err, c)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
			reportError(err, c)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, errorResponse{Error: message})
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "Error response not written", "error", writeErr)
		}
	}
}

func describeError(err error, c echo.Context) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, errs.Cause(err).Error()
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, errs.Cause(err).Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, "Path not found: " + c.Request().URL.Path
		case http.StatusMethodNotAllowed:
			return he.Code, fmt.Sprintf("%s not allowed for %s", c.Request().Method, c.Request().URL.Path)
		}
		if he.Code >= http.StatusInternalServerError {
			return he.Code, "Internal server error"
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	return http.StatusInternalServerError, "Internal server error"
}

func reportError(err error, c echo.Context) {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetRequest(c.Request())
	hub.Scope().SetTag("route", c.Path())
	hub.CaptureException(err)
}
