package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/feed"
	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/domains/review"
	"filmrate-backend/internal/domains/user"
	"filmrate-backend/pkg/database"
)

// reviewSelect derives the useful score from the vote relation on every
// read.
const reviewSelect = `
	SELECT r.id, r.content, r.positive, r.user_id, r.film_id,
	       COALESCE((SELECT SUM(CASE WHEN v.positive THEN 1 ELSE -1 END)
	                 FROM review_votes v WHERE v.review_id = r.id), 0) AS useful
	FROM reviews r`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, rev *review.Review) (*review.Review, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		if err := checkUserAndFilm(ctx, tx, rev.UserID, rev.FilmID); err != nil {
			return 0, err
		}

		var reviewID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO reviews (user_id, film_id, positive, content)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			rev.UserID, rev.FilmID, rev.Positive, rev.Content,
		).Scan(&reviewID)
		if err != nil {
			return 0, fmt.Errorf("failed to create review: %w", err)
		}

		return reviewID, recordReviewEvent(ctx, tx, rev.UserID, reviewID, feed.OperationAdd)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, id int64, content string, positive bool) (*review.Review, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// The feed event belongs to the review's author, not the caller.
		var authorID int64
		err := tx.QueryRow(ctx, `
			UPDATE reviews SET content = $1, positive = $2
			WHERE id = $3
			RETURNING user_id`, content, positive, id).Scan(&authorID)
		if errors.Is(err, pgx.ErrNoRows) {
			return review.ErrReviewNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update review %d: %w", id, err)
		}
		return recordReviewEvent(ctx, tx, authorID, id, feed.OperationUpdate)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var authorID int64
		err := tx.QueryRow(ctx,
			`DELETE FROM reviews WHERE id = $1 RETURNING user_id`, id).Scan(&authorID)
		if errors.Is(err, pgx.ErrNoRows) {
			return review.ErrReviewNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete review %d: %w", id, err)
		}
		return recordReviewEvent(ctx, tx, authorID, id, feed.OperationRemove)
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	var rev review.Review
	err := r.pool.QueryRow(ctx, reviewSelect+` WHERE r.id = $1`, id).
		Scan(&rev.ID, &rev.Content, &rev.Positive, &rev.UserID, &rev.FilmID, &rev.Useful)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, review.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review %d: %w", id, err)
	}
	return &rev, nil
}

func (r *postgresRepository) GetByFilm(ctx context.Context, filmID int64, count int) ([]review.Review, error) {
	query := reviewSelect
	args := []interface{}{}
	if filmID != 0 {
		args = append(args, filmID)
		query += ` WHERE r.film_id = $1`
	}
	args = append(args, count)
	query += fmt.Sprintf(` ORDER BY useful DESC, r.id LIMIT $%d`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []review.Review{}
	for rows.Next() {
		var rev review.Review
		err := rows.Scan(&rev.ID, &rev.Content, &rev.Positive, &rev.UserID, &rev.FilmID, &rev.Useful)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}
	return reviews, nil
}

func (r *postgresRepository) SetVote(ctx context.Context, reviewID, userID int64, positive bool) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := checkReviewAndUser(ctx, tx, reviewID, userID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO review_votes (review_id, user_id, positive)
			VALUES ($1, $2, $3)
			ON CONFLICT (review_id, user_id) DO UPDATE SET positive = EXCLUDED.positive`,
			reviewID, userID, positive)
		if err != nil {
			return fmt.Errorf("failed to set review vote: %w", err)
		}
		return nil
	})
}

func (r *postgresRepository) RemoveVote(ctx context.Context, reviewID, userID int64, positive bool) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := checkReviewAndUser(ctx, tx, reviewID, userID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			DELETE FROM review_votes
			WHERE review_id = $1 AND user_id = $2 AND positive = $3`,
			reviewID, userID, positive)
		if err != nil {
			return fmt.Errorf("failed to remove review vote: %w", err)
		}
		return nil
	})
}

func checkUserAndFilm(ctx context.Context, tx pgx.Tx, userID, filmID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if !exists {
		return user.ErrUserNotFound
	}

	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM films WHERE id = $1)`, filmID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check film %d: %w", filmID, err)
	}
	if !exists {
		return film.ErrFilmNotFound
	}
	return nil
}

func checkReviewAndUser(ctx context.Context, tx pgx.Tx, reviewID, userID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, reviewID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check review %d: %w", reviewID, err)
	}
	if !exists {
		return review.ErrReviewNotFound
	}

	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if !exists {
		return user.ErrUserNotFound
	}
	return nil
}

func recordReviewEvent(ctx context.Context, tx pgx.Tx, userID, reviewID int64, operation string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO feed_events (user_id, event_ts, entity_id, event_type, operation)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, time.Now().UnixMilli(), reviewID, feed.EventTypeReview, operation)
	if err != nil {
		return fmt.Errorf("failed to record review feed event: %w", err)
	}
	return nil
}
