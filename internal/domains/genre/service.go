package genre

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id int) (*Genre, error)
}
