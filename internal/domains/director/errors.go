package director

import "errors"

var ErrDirectorNotFound = errors.New("director not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDirectorNotFound):
		return 404
	default:
		return 500
	}
}
