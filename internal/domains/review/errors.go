package review

import (
	"errors"

	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/domains/user"
)

var ErrReviewNotFound = errors.New("review not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrReviewNotFound),
		errors.Is(err, film.ErrFilmNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return 404
	default:
		return 500
	}
}
