package genre

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Genre, error)

	// GetByID returns ErrGenreNotFound if the id is absent.
	GetByID(ctx context.Context, id int) (*Genre, error)
}
