package film

import "context"

// PopularFilter restricts GetPopular to a genre and/or a release year.
// Nil fields mean no restriction.
type PopularFilter struct {
	GenreID *int
	Year    *int
}

// Repository is the data access contract for films, their relation tables
// and the like relation.
type Repository interface {
	// GetAll returns every film, hydrated, ordered by id.
	GetAll(ctx context.Context) ([]Film, error)

	// GetByID returns the fully hydrated film or ErrFilmNotFound.
	GetByID(ctx context.Context, id int64) (*Film, error)

	// GetByIDs resolves and hydrates the given ids, ordered by id
	// ascending. Relation lookups are batched over the whole id set.
	GetByIDs(ctx context.Context, ids []int64) ([]Film, error)

	// Create validates every foreign reference (MPA, genres, directors)
	// before any row is written, then inserts the film and its join rows in
	// one transaction. Returns the hydrated film.
	Create(ctx context.Context, f *Film, genreIDs []int, directorIDs []int64) (*Film, error)

	// Update is a full-row replace; join rows are replaced with
	// delete-all-then-insert semantics in the same transaction.
	Update(ctx context.Context, f *Film, genreIDs []int, directorIDs []int64) (*Film, error)

	// Delete removes the film; likes, join rows and reviews cascade.
	Delete(ctx context.Context, id int64) error

	// AddLike records a like. Duplicate likes are ignored (one row per
	// pair). ErrFilmNotFound / user.ErrUserNotFound on absent ids.
	AddLike(ctx context.Context, filmID, userID int64) error

	// RemoveLike deletes the like if present.
	RemoveLike(ctx context.Context, filmID, userID int64) error

	// GetPopular returns up to count films ordered by like count
	// descending, id ascending, optionally filtered.
	GetPopular(ctx context.Context, count int, filter PopularFilter) ([]Film, error)

	// GetCommonFilms returns films liked by both users, ordered by like
	// count descending, id ascending.
	GetCommonFilms(ctx context.Context, userID, friendID int64) ([]Film, error)

	// GetByDirector returns the director's films (hydrated, id order) or
	// director.ErrDirectorNotFound.
	GetByDirector(ctx context.Context, directorID int64) ([]Film, error)

	// Search matches the query case-insensitively against film titles
	// and/or director names, ordered by like count descending.
	Search(ctx context.Context, query string, byTitle, byDirector bool) ([]Film, error)

	// LikedFilmIDs returns the ids of films liked by the user, ascending.
	LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error)

	// OverlappingLikes returns, for every other user sharing at least one
	// liked film with userID, that user's full liked film id set.
	OverlappingLikes(ctx context.Context, userID int64) (map[int64][]int64, error)

	// UserExists reports whether the user id is present.
	UserExists(ctx context.Context, userID int64) (bool, error)
}
