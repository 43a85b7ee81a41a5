package director

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]Director, error)
	GetByID(ctx context.Context, id int64) (*Director, error)
	Create(ctx context.Context, req CreateDirectorRequest) (*Director, error)
	Update(ctx context.Context, req UpdateDirectorRequest) (*Director, error)
	Delete(ctx context.Context, id int64) error
}
