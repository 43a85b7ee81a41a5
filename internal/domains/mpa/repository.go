package mpa

import "context"

// Repository is the data access contract for MPA ratings.
type Repository interface {
	// GetAll returns every rating ordered by id.
	GetAll(ctx context.Context) ([]Rating, error)

	// GetByID returns ErrRatingNotFound if the id is absent.
	GetByID(ctx context.Context, id int) (*Rating, error)
}
