package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/pkg/cache"
)

const (
	directorCacheKeyPrefix = "director:"
	directorListCacheKey   = "director:list"
	cacheTTL               = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) director.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]director.Director, error) {
	var directors []director.Director
	if hit, err := r.cache.Get(ctx, directorListCacheKey, &directors); err == nil && hit {
		return directors, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM directors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d director.Director
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan director: %w", err)
		}
		directors = append(directors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read directors: %w", err)
	}

	_ = r.cache.Set(ctx, directorListCacheKey, directors, cacheTTL)
	return directors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*director.Director, error) {
	cacheKey := fmt.Sprintf("%s%d", directorCacheKeyPrefix, id)

	var d director.Director
	if hit, err := r.cache.Get(ctx, cacheKey, &d); err == nil && hit {
		return &d, nil
	}

	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM directors WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, director.ErrDirectorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get director %d: %w", id, err)
	}

	_ = r.cache.Set(ctx, cacheKey, d, cacheTTL)
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, d *director.Director) (*director.Director, error) {
	var created director.Director
	err := r.pool.QueryRow(ctx,
		`INSERT INTO directors (name) VALUES ($1) RETURNING id, name`, d.Name,
	).Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create director: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, d *director.Director) (*director.Director, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE directors SET name = $1 WHERE id = $2`, d.Name, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update director %d: %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, director.ErrDirectorNotFound
	}

	r.invalidate(ctx)
	return d, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete director %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return director.ErrDirectorNotFound
	}

	r.invalidate(ctx)
	return nil
}

// invalidate drops the list key and every per-id key; a rename must not
// leave a stale entry behind for any id.
func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, directorCacheKeyPrefix+"*")
}
