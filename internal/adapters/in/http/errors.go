package http

import (
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed request.
type Error struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// respondError writes err with the status errs.HTTPStatus assigns to it.
// Internal failures are logged and reported without details.
func respondError(ctx echo.Context, err error) error {
	status := errs.HTTPStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Errorf("%s %s: %v", ctx.Request().Method, ctx.Path(), err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{Error: message, Status: status})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Error: message, Status: http.StatusBadRequest})
}
