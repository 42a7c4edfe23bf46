package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ApiError is the wire representation of every failed call. The correlation
// id lets the caller find the matching audit record; it is "N/A" for failures
// outside the audited prefix.
type ApiError struct {
	Status        int    `json:"status"`
	Error         string `json:"error"`
	Message       string `json:"message"`
	Path          string `json:"path"`
	Timestamp     int64  `json:"timestamp"`
	CorrelationID string `json:"correlationId"`
}

// NewHTTPErrorHandler builds the central error classifier. Domain errors map
// onto HTTP statuses here and nowhere else: handlers and use cases return
// typed errors and never pick status codes themselves.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := classify(err)

		correlationID := "N/A"
		if id, ok := ctx.Get(correlationIDContextKey).(string); ok && id != "" {
			correlationID = id
		}

		apiErr := ApiError{
			Status:        status,
			Error:         http.StatusText(status),
			Message:       err.Error(),
			Path:          ctx.Request().URL.Path,
			Timestamp:     time.Now().UnixMilli(),
			CorrelationID: correlationID,
		}

		if jsonErr := ctx.JSON(status, apiErr); jsonErr != nil {
			ctx.Logger().Error(jsonErr)
		}
	}
}

func classify(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
