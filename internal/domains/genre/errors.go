package genre

import "errors"

var ErrGenreNotFound = errors.New("genre not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return 404
	default:
		return 500
	}
}
