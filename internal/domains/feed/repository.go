package feed

import "context"

type Repository interface {
	// GetForUser returns the user's feed ordered by event id ascending.
	GetForUser(ctx context.Context, userID int64) ([]Event, error)
}
