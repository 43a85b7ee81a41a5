package service

import (
	"context"

	"filmrate-backend/internal/domains/mpa"
)

type mpaService struct {
	repo mpa.Repository
}

func NewMpaService(repo mpa.Repository) mpa.Service {
	return &mpaService{repo: repo}
}

func (s *mpaService) GetAll(ctx context.Context) ([]mpa.Rating, error) {
	return s.repo.GetAll(ctx)
}

func (s *mpaService) GetByID(ctx context.Context, id int) (*mpa.Rating, error) {
	return s.repo.GetByID(ctx, id)
}
