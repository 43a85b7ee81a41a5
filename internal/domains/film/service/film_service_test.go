package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/domains/user"
	"filmrate-backend/internal/shared"
)

// fakeFilmRepository serves canned data so the service logic can be tested
// without a database.
type fakeFilmRepository struct {
	films        map[int64]film.Film
	users        map[int64]bool
	likedByUser  map[int64][]int64
	overlapLikes map[int64][]int64
	byDirector   []film.Film
	directorOK   bool

	searchQuery      string
	searchByTitle    bool
	searchByDirector bool
}

func (f *fakeFilmRepository) GetAll(ctx context.Context) ([]film.Film, error) { return nil, nil }

func (f *fakeFilmRepository) GetByID(ctx context.Context, id int64) (*film.Film, error) {
	fl, ok := f.films[id]
	if !ok {
		return nil, film.ErrFilmNotFound
	}
	return &fl, nil
}

func (f *fakeFilmRepository) GetByIDs(ctx context.Context, ids []int64) ([]film.Film, error) {
	var out []film.Film
	for _, id := range ids {
		if fl, ok := f.films[id]; ok {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFilmRepository) Create(ctx context.Context, fl *film.Film, genreIDs []int, directorIDs []int64) (*film.Film, error) {
	return fl, nil
}

func (f *fakeFilmRepository) Update(ctx context.Context, fl *film.Film, genreIDs []int, directorIDs []int64) (*film.Film, error) {
	return fl, nil
}

func (f *fakeFilmRepository) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeFilmRepository) AddLike(ctx context.Context, filmID, userID int64) error { return nil }

func (f *fakeFilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) error { return nil }

func (f *fakeFilmRepository) GetPopular(ctx context.Context, count int, filter film.PopularFilter) ([]film.Film, error) {
	return nil, nil
}

func (f *fakeFilmRepository) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]film.Film, error) {
	return nil, nil
}

func (f *fakeFilmRepository) GetByDirector(ctx context.Context, directorID int64) ([]film.Film, error) {
	if !f.directorOK {
		return nil, director.ErrDirectorNotFound
	}
	out := make([]film.Film, len(f.byDirector))
	copy(out, f.byDirector)
	return out, nil
}

func (f *fakeFilmRepository) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]film.Film, error) {
	f.searchQuery = query
	f.searchByTitle = byTitle
	f.searchByDirector = byDirector
	return nil, nil
}

func (f *fakeFilmRepository) LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error) {
	return f.likedByUser[userID], nil
}

func (f *fakeFilmRepository) OverlappingLikes(ctx context.Context, userID int64) (map[int64][]int64, error) {
	return f.overlapLikes, nil
}

func (f *fakeFilmRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	return f.users[userID], nil
}

func testFilm(id int64, title string) film.Film {
	return film.Film{ID: id, Title: title}
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("suggests films from the closest neighbor", func(t *testing.T) {
		// User 1 likes {1,2,3}; user 2 likes {1,2,4}; user 3 likes {3,5}.
		// User 2 has the larger overlap, so film 4 is recommended.
		repo := &fakeFilmRepository{
			films: map[int64]film.Film{
				4: testFilm(4, "The Fourth"),
				5: testFilm(5, "The Fifth"),
			},
			users:       map[int64]bool{1: true},
			likedByUser: map[int64][]int64{1: {1, 2, 3}},
			overlapLikes: map[int64][]int64{
				2: {1, 2, 4},
				3: {3, 5},
			},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, int64(4), films[0].ID)
	})

	t.Run("never recommends films the user already likes", func(t *testing.T) {
		repo := &fakeFilmRepository{
			films:        map[int64]film.Film{9: testFilm(9, "Unseen")},
			users:        map[int64]bool{1: true},
			likedByUser:  map[int64][]int64{1: {1, 2}},
			overlapLikes: map[int64][]int64{2: {1, 2, 9}},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, int64(9), films[0].ID)
	})

	t.Run("empty when the user has no likes", func(t *testing.T) {
		repo := &fakeFilmRepository{
			users:       map[int64]bool{1: true},
			likedByUser: map[int64][]int64{},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, films)
		assert.NotNil(t, films)
	})

	t.Run("empty when no other user shares a like", func(t *testing.T) {
		repo := &fakeFilmRepository{
			users:        map[int64]bool{1: true},
			likedByUser:  map[int64][]int64{1: {1}},
			overlapLikes: map[int64][]int64{},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, films)
	})

	t.Run("empty when the neighbor's likes are a subset", func(t *testing.T) {
		repo := &fakeFilmRepository{
			users:        map[int64]bool{1: true},
			likedByUser:  map[int64][]int64{1: {1, 2, 3}},
			overlapLikes: map[int64][]int64{2: {1, 2}},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, films)
	})

	t.Run("overlap ties break toward the lower user id", func(t *testing.T) {
		repo := &fakeFilmRepository{
			films: map[int64]film.Film{
				10: testFilm(10, "From Two"),
				20: testFilm(20, "From Five"),
			},
			users:       map[int64]bool{1: true},
			likedByUser: map[int64][]int64{1: {1}},
			overlapLikes: map[int64][]int64{
				5: {1, 20},
				2: {1, 10},
			},
		}
		svc := NewFilmService(repo)

		films, err := svc.Recommend(ctx, 1)
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, int64(10), films[0].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &fakeFilmRepository{users: map[int64]bool{}}
		svc := NewFilmService(repo)

		_, err := svc.Recommend(ctx, 42)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestGetByDirector(t *testing.T) {
	ctx := context.Background()

	withRelease := func(id int64, year int, likes int64) film.Film {
		return film.Film{
			ID:          id,
			ReleaseDate: shared.NewDate(year, 1, 1),
			Likes:       likes,
		}
	}

	t.Run("sorted by year", func(t *testing.T) {
		repo := &fakeFilmRepository{
			directorOK: true,
			byDirector: []film.Film{
				withRelease(1, 2010, 0),
				withRelease(2, 1999, 0),
				withRelease(3, 2005, 0),
			},
		}
		svc := NewFilmService(repo)

		films, err := svc.GetByDirector(ctx, 1, film.SortByYear)
		require.NoError(t, err)
		require.Len(t, films, 3)
		assert.Equal(t, []int64{2, 3, 1}, []int64{films[0].ID, films[1].ID, films[2].ID})
	})

	t.Run("sorted by likes with id tie-break", func(t *testing.T) {
		repo := &fakeFilmRepository{
			directorOK: true,
			byDirector: []film.Film{
				withRelease(3, 2000, 5),
				withRelease(1, 2000, 9),
				withRelease(2, 2000, 5),
			},
		}
		svc := NewFilmService(repo)

		films, err := svc.GetByDirector(ctx, 1, film.SortByLikes)
		require.NoError(t, err)
		require.Len(t, films, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{films[0].ID, films[1].ID, films[2].ID})
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		repo := &fakeFilmRepository{directorOK: true}
		svc := NewFilmService(repo)

		_, err := svc.GetByDirector(ctx, 1, "rating")
		assert.ErrorIs(t, err, film.ErrInvalidSortBy)
	})

	t.Run("unknown director", func(t *testing.T) {
		repo := &fakeFilmRepository{directorOK: false}
		svc := NewFilmService(repo)

		_, err := svc.GetByDirector(ctx, 99, film.SortByLikes)
		assert.ErrorIs(t, err, director.ErrDirectorNotFound)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank query", func(t *testing.T) {
		svc := NewFilmService(&fakeFilmRepository{})

		_, err := svc.Search(ctx, "   ", []string{"title"})
		assert.ErrorIs(t, err, film.ErrEmptyQuery)
	})

	t.Run("parses search fields", func(t *testing.T) {
		repo := &fakeFilmRepository{}
		svc := NewFilmService(repo)

		_, err := svc.Search(ctx, "crad", []string{"title", "director"})
		require.NoError(t, err)
		assert.True(t, repo.searchByTitle)
		assert.True(t, repo.searchByDirector)
	})

	t.Run("defaults to title search", func(t *testing.T) {
		repo := &fakeFilmRepository{}
		svc := NewFilmService(repo)

		_, err := svc.Search(ctx, "crad", []string{"banana"})
		require.NoError(t, err)
		assert.True(t, repo.searchByTitle)
		assert.False(t, repo.searchByDirector)
	})
}
