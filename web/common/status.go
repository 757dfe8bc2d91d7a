package common

import (
	"errors"
	"net/http"

	"pulsehr.com/pulsehr/core"
)

// StatusForError maps the service error taxonomy to HTTP statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrConflict), errors.Is(err, core.ErrImmutable):
		return http.StatusConflict
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
