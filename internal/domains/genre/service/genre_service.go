package service

import (
	"context"

	"filmrate-backend/internal/domains/genre"
)

type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int) (*genre.Genre, error) {
	return s.repo.GetByID(ctx, id)
}
