package api

import (
	"errors"
	"net/http"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

// Out of range coordinates answer 404 rather than 400 so that "not a
// cell" stays distinguishable from "not a number". Existing clients
// depend on these codes.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, cerr.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, cerr.ErrOutOfBounds):
		return http.StatusNotFound
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

var errNoLocalAddr = errors.New("request carries no local address")
