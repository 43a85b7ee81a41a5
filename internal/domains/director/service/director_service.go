package service

import (
	"context"

	"filmrate-backend/internal/domains/director"
)

type directorService struct {
	repo director.Repository
}

func NewDirectorService(repo director.Repository) director.Service {
	return &directorService{repo: repo}
}

func (s *directorService) GetAll(ctx context.Context) ([]director.Director, error) {
	return s.repo.GetAll(ctx)
}

func (s *directorService) GetByID(ctx context.Context, id int64) (*director.Director, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *directorService) Create(ctx context.Context, req director.CreateDirectorRequest) (*director.Director, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &director.Director{Name: req.Name})
}

func (s *directorService) Update(ctx context.Context, req director.UpdateDirectorRequest) (*director.Director, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, &director.Director{ID: req.ID, Name: req.Name})
}

func (s *directorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
