package http

import (
	"errors"
	"net/http"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps workflow errors onto HTTP statuses: unknown objects
// read as 404, authorization denials as 403, state conflicts and bad input
// as 400, missing identity as 401.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderIncomplete),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
