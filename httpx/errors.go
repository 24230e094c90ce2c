package httpx

import (
	"errors"
	"net/http"

	"record-api/models"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Unrecognized errors, storage failures included, are 500 with the message
// passed through.
func WriteError(w http.ResponseWriter, err error) {
	JSONError(w, StatusFor(err), err.Error())
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
