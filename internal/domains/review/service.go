package review

import "context"

type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (*Review, error)
	Update(ctx context.Context, req UpdateReviewRequest) (*Review, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	GetByFilm(ctx context.Context, filmID int64, count int) ([]Review, error)

	AddLike(ctx context.Context, reviewID, userID int64) error
	AddDislike(ctx context.Context, reviewID, userID int64) error
	RemoveLike(ctx context.Context, reviewID, userID int64) error
	RemoveDislike(ctx context.Context, reviewID, userID int64) error
}
