package mpa

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]Rating, error)
	GetByID(ctx context.Context, id int) (*Rating, error)
}
