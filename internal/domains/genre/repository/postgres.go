package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/pkg/cache"
)

const (
	genreCacheKeyPrefix = "genre:"
	genreListCacheKey   = "genre:list"
	cacheTTL            = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) genre.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]genre.Genre, error) {
	var genres []genre.Genre
	if hit, err := r.cache.Get(ctx, genreListCacheKey, &genres); err == nil && hit {
		return genres, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genres: %w", err)
	}

	_ = r.cache.Set(ctx, genreListCacheKey, genres, cacheTTL)
	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*genre.Genre, error) {
	cacheKey := fmt.Sprintf("%s%d", genreCacheKeyPrefix, id)

	var g genre.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &g); err == nil && hit {
		return &g, nil
	}

	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM genres WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}

	_ = r.cache.Set(ctx, cacheKey, g, cacheTTL)
	return &g, nil
}
