package film

import (
	"errors"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/internal/domains/user"
)

var (
	ErrFilmNotFound  = errors.New("film not found")
	ErrInvalidSortBy = errors.New("sortBy must be likes or year")
	ErrEmptyQuery    = errors.New("search query must not be empty")
)

// ToHTTPStatus also maps the reference errors of the domains a film points
// to, since create/update and like operations surface them unchanged.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrFilmNotFound),
		errors.Is(err, mpa.ErrRatingNotFound),
		errors.Is(err, genre.ErrGenreNotFound),
		errors.Is(err, director.ErrDirectorNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return 404
	case errors.Is(err, ErrInvalidSortBy), errors.Is(err, ErrEmptyQuery):
		return 400
	default:
		return 500
	}
}
