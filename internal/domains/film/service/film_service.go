package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/internal/domains/user"
)

type filmService struct {
	repo film.Repository
}

func NewFilmService(repo film.Repository) film.Service {
	return &filmService{repo: repo}
}

func (s *filmService) GetAll(ctx context.Context) ([]film.Film, error) {
	films, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(films), nil
}

func (s *filmService) GetByID(ctx context.Context, id int64) (*film.Film, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *filmService) Create(ctx context.Context, req film.CreateFilmRequest) (*film.Film, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f := &film.Film{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		Mpa:         mpa.Rating{ID: req.Mpa.ID},
	}
	created, err := s.repo.Create(ctx, f, req.GenreIDs(), req.DirectorIDs())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("film_id", created.ID).Str("title", created.Title).Msg("film created")
	return created, nil
}

func (s *filmService) Update(ctx context.Context, req film.UpdateFilmRequest) (*film.Film, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f := &film.Film{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		Mpa:         mpa.Rating{ID: req.Mpa.ID},
	}
	return s.repo.Update(ctx, f, req.GenreIDs(), req.DirectorIDs())
}

func (s *filmService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("film_id", id).Msg("film deleted")
	return nil
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int64) error {
	return s.repo.AddLike(ctx, filmID, userID)
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	return s.repo.RemoveLike(ctx, filmID, userID)
}

func (s *filmService) GetPopular(ctx context.Context, count int, filter film.PopularFilter) ([]film.Film, error) {
	films, err := s.repo.GetPopular(ctx, count, filter)
	if err != nil {
		return nil, err
	}
	return nonNil(films), nil
}

func (s *filmService) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]film.Film, error) {
	films, err := s.repo.GetCommonFilms(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	return nonNil(films), nil
}

func (s *filmService) GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]film.Film, error) {
	if sortBy != film.SortByLikes && sortBy != film.SortByYear {
		return nil, film.ErrInvalidSortBy
	}

	films, err := s.repo.GetByDirector(ctx, directorID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case film.SortByYear:
		sort.SliceStable(films, func(i, j int) bool {
			return films[i].ReleaseDate.Before(films[j].ReleaseDate.Time)
		})
	case film.SortByLikes:
		sort.SliceStable(films, func(i, j int) bool {
			if films[i].Likes != films[j].Likes {
				return films[i].Likes > films[j].Likes
			}
			return films[i].ID < films[j].ID
		})
	}
	return nonNil(films), nil
}

func (s *filmService) Search(ctx context.Context, query string, by []string) ([]film.Film, error) {
	if strings.TrimSpace(query) == "" {
		return nil, film.ErrEmptyQuery
	}

	byTitle, byDirector := false, false
	for _, field := range by {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "title":
			byTitle = true
		case "director":
			byDirector = true
		}
	}
	// No recognized field defaults to a title search.
	if !byTitle && !byDirector {
		byTitle = true
	}

	films, err := s.repo.Search(ctx, query, byTitle, byDirector)
	if err != nil {
		return nil, err
	}
	return nonNil(films), nil
}

// Recommend implements single-neighbor collaborative filtering. The
// neighbor is the user with the largest like overlap; ties break toward
// the lowest user id so the result is deterministic.
func (s *filmService) Recommend(ctx context.Context, userID int64) ([]film.Film, error) {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	own, err := s.repo.LikedFilmIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(own) == 0 {
		return []film.Film{}, nil
	}

	neighbors, err := s.repo.OverlappingLikes(ctx, userID)
	if err != nil {
		return nil, err
	}

	ownSet := make(map[int64]struct{}, len(own))
	for _, id := range own {
		ownSet[id] = struct{}{}
	}

	var bestUser int64
	bestOverlap := 0
	for uid, liked := range neighbors {
		overlap := 0
		for _, id := range liked {
			if _, ok := ownSet[id]; ok {
				overlap++
			}
		}
		if overlap > bestOverlap || (overlap == bestOverlap && overlap > 0 && uid < bestUser) {
			bestUser = uid
			bestOverlap = overlap
		}
	}
	if bestOverlap == 0 {
		return []film.Film{}, nil
	}

	var recommended []int64
	for _, id := range neighbors[bestUser] {
		if _, ok := ownSet[id]; !ok {
			recommended = append(recommended, id)
		}
	}
	if len(recommended) == 0 {
		return []film.Film{}, nil
	}

	films, err := s.repo.GetByIDs(ctx, recommended)
	if err != nil {
		return nil, err
	}
	return nonNil(films), nil
}

// nonNil keeps empty result sets encoding as [] rather than null.
func nonNil(films []film.Film) []film.Film {
	if films == nil {
		return []film.Film{}
	}
	for i := range films {
		if films[i].Genres == nil {
			films[i].Genres = []genre.Genre{}
		}
		if films[i].Directors == nil {
			films[i].Directors = []director.Director{}
		}
	}
	return films
}
