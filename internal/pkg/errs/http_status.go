package errs

import (
	"errors"
	"net/http"
)

// HTTPStatus maps an error onto the status code returned to API callers.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.HTTPStatus()
	}

	switch {
	case errors.Is(err, ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrRuleIsViolated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
