package director

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Director, error)

	// GetByID returns ErrDirectorNotFound if the id is absent.
	GetByID(ctx context.Context, id int64) (*Director, error)

	// Create returns the director with its generated id.
	Create(ctx context.Context, d *Director) (*Director, error)

	// Update is a full-row replace; returns ErrDirectorNotFound if absent.
	Update(ctx context.Context, d *Director) (*Director, error)

	// Delete removes the director and its film associations.
	Delete(ctx context.Context, id int64) error
}
