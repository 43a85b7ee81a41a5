package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/pkg/cache"
)

const (
	ratingCacheKeyPrefix = "mpa:"
	ratingListCacheKey   = "mpa:list"
	cacheTTL             = 15 * time.Minute
)

// postgresRepository implements mpa.Repository. The rating table is
// read-mostly, so lookups go through the cache first.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) mpa.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]mpa.Rating, error) {
	var ratings []mpa.Rating
	if hit, err := r.cache.Get(ctx, ratingListCacheKey, &ratings); err == nil && hit {
		return ratings, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mpa ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating mpa.Rating
		if err := rows.Scan(&rating.ID, &rating.Name); err != nil {
			return nil, fmt.Errorf("failed to scan mpa rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mpa ratings: %w", err)
	}

	_ = r.cache.Set(ctx, ratingListCacheKey, ratings, cacheTTL)
	return ratings, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*mpa.Rating, error) {
	cacheKey := fmt.Sprintf("%s%d", ratingCacheKeyPrefix, id)

	var rating mpa.Rating
	if hit, err := r.cache.Get(ctx, cacheKey, &rating); err == nil && hit {
		return &rating, nil
	}

	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM mpa_ratings WHERE id = $1`, id,
	).Scan(&rating.ID, &rating.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, mpa.ErrRatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mpa rating %d: %w", id, err)
	}

	_ = r.cache.Set(ctx, cacheKey, rating, cacheTTL)
	return &rating, nil
}
