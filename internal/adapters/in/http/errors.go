package http

import (
	"net/http"

	"ordering/internal/core/application/faults"

	"github.com/labstack/echo/v4"
)

func statusOf(kind faults.Kind) int {
	switch kind {
	case faults.InvalidArgument:
		return http.StatusBadRequest
	case faults.NotFound:
		return http.StatusNotFound
	case faults.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeFault renders err as an ErrorResponse. Errors that are not faults yet are
// classified first, so an unexpected error never leaks its text to the client.
func writeFault(ctx echo.Context, err error) error {
	fault := faults.Classify(err)
	code := statusOf(fault.Kind)

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Kind:    fault.Kind.String(),
		Message: fault.Message,
	})
}
