package mpa

import "errors"

var ErrRatingNotFound = errors.New("mpa rating not found")

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRatingNotFound):
		return 404
	default:
		return 500
	}
}
