package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/feed"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) feed.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetForUser(ctx context.Context, userID int64) ([]feed.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, event_ts, entity_id, event_type, operation
		FROM feed_events
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed for user %d: %w", userID, err)
	}
	defer rows.Close()

	var events []feed.Event
	for rows.Next() {
		var e feed.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Timestamp, &e.EntityID, &e.EventType, &e.Operation); err != nil {
			return nil, fmt.Errorf("failed to scan feed event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feed events: %w", err)
	}

	return events, nil
}
