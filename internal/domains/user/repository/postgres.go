package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/feed"
	"filmrate-backend/internal/domains/user"
	"filmrate-backend/internal/shared"
	"filmrate-backend/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, login, name, birthday FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT id, email, login, name, birthday FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT id, email, login, name, birthday FROM users WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, email, login, name, birthday FROM users WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, login, name, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Email, u.Login, u.Name, u.Birthday.Time,
	).Scan(&u.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET email = $1, login = $2, name = $3, birthday = $4
		WHERE id = $5`,
		u.Email, u.Login, u.Name, u.Birthday.Time, u.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO friendships (user_id, friend_id, confirmed) VALUES ($1, $2, FALSE)`,
			userID, friendID)
		if err != nil {
			if isPgError(err, pgUniqueViolation) {
				return user.ErrRequestExists
			}
			if isPgError(err, pgForeignKeyViolation) {
				return user.ErrUserNotFound
			}
			return fmt.Errorf("failed to add friend edge %d->%d: %w", userID, friendID, err)
		}
		return recordFriendEvent(ctx, tx, userID, friendID, feed.OperationAdd)
	})
}

func (r *postgresRepository) ConfirmFriend(ctx context.Context, userID, friendID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE friendships SET confirmed = TRUE WHERE user_id = $1 AND friend_id = $2`,
			userID, friendID)
		if err != nil {
			return fmt.Errorf("failed to confirm friend edge %d->%d: %w", userID, friendID, err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrEdgeNotFound
		}
		return recordFriendEvent(ctx, tx, userID, friendID, feed.OperationUpdate)
	})
}

func (r *postgresRepository) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`,
			userID, friendID)
		if err != nil {
			return fmt.Errorf("failed to remove friend edge %d->%d: %w", userID, friendID, err)
		}
		// Idempotent delete: no event, no error for a missing edge.
		if tag.RowsAffected() == 0 {
			return nil
		}
		return recordFriendEvent(ctx, tx, userID, friendID, feed.OperationRemove)
	})
}

func (r *postgresRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend ids for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read friend ids: %w", err)
	}
	return ids, nil
}

func recordFriendEvent(ctx context.Context, tx pgx.Tx, userID, friendID int64, operation string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO feed_events (user_id, event_ts, entity_id, event_type, operation)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, time.Now().UnixMilli(), friendID, feed.EventTypeFriend, operation)
	if err != nil {
		return fmt.Errorf("failed to record friend feed event: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var birthday time.Time
	if err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
		return nil, err
	}
	u.Birthday = shared.Date{Time: birthday}
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	var users []user.User
	for rows.Next() {
		var u user.User
		var birthday time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Birthday = shared.Date{Time: birthday}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
