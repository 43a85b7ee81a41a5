package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"filmrate-backend/internal/domains/review"
)

type reviewService struct {
	repo review.Repository
}

func NewReviewService(repo review.Repository) review.Service {
	return &reviewService{repo: repo}
}

func (s *reviewService) Create(ctx context.Context, req review.CreateReviewRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToReview())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("review_id", created.ID).Int64("film_id", created.FilmID).Msg("review created")
	return created, nil
}

func (s *reviewService) Update(ctx context.Context, req review.UpdateReviewRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, req.ID, req.Content, *req.Positive)
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) GetByFilm(ctx context.Context, filmID int64, count int) ([]review.Review, error) {
	return s.repo.GetByFilm(ctx, filmID, count)
}

func (s *reviewService) AddLike(ctx context.Context, reviewID, userID int64) error {
	return s.repo.SetVote(ctx, reviewID, userID, true)
}

func (s *reviewService) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return s.repo.SetVote(ctx, reviewID, userID, false)
}

func (s *reviewService) RemoveLike(ctx context.Context, reviewID, userID int64) error {
	return s.repo.RemoveVote(ctx, reviewID, userID, true)
}

func (s *reviewService) RemoveDislike(ctx context.Context, reviewID, userID int64) error {
	return s.repo.RemoveVote(ctx, reviewID, userID, false)
}
