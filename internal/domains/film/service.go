package film

import "context"

const (
	SortByLikes = "likes"
	SortByYear  = "year"
)

type Service interface {
	GetAll(ctx context.Context) ([]Film, error)
	GetByID(ctx context.Context, id int64) (*Film, error)
	Create(ctx context.Context, req CreateFilmRequest) (*Film, error)
	Update(ctx context.Context, req UpdateFilmRequest) (*Film, error)
	Delete(ctx context.Context, id int64) error

	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error

	GetPopular(ctx context.Context, count int, filter PopularFilter) ([]Film, error)
	GetCommonFilms(ctx context.Context, userID, friendID int64) ([]Film, error)
	GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]Film, error)
	Search(ctx context.Context, query string, by []string) ([]Film, error)

	// Recommend runs single-neighbor collaborative filtering: films liked
	// by the user with the largest like overlap, minus the user's own.
	Recommend(ctx context.Context, userID int64) ([]Film, error)
}
