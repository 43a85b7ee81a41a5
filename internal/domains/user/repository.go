package user

import "context"

// Repository is the data access contract for users and friend edges.
type Repository interface {
	GetAll(ctx context.Context) ([]User, error)

	// GetByID returns ErrUserNotFound if the id is absent.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns ErrUserNotFound on a miss.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByIDs resolves the given ids, silently skipping any that no longer
	// exist, ordered by id ascending.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Create returns the user with its generated id; ErrEmailTaken on a
	// duplicate email.
	Create(ctx context.Context, u *User) (*User, error)

	// Update is a full-row replace-by-id; ErrUserNotFound if absent.
	Update(ctx context.Context, u *User) (*User, error)

	// Delete removes the user; likes, friend edges, reviews and feed rows
	// cascade.
	Delete(ctx context.Context, id int64) error

	// AddFriend inserts a directed, unconfirmed edge and records a feed
	// event in the same transaction. ErrRequestExists on a duplicate pair.
	AddFriend(ctx context.Context, userID, friendID int64) error

	// ConfirmFriend flips the edge's confirmed flag; ErrEdgeNotFound if the
	// directed edge does not exist.
	ConfirmFriend(ctx context.Context, userID, friendID int64) error

	// RemoveFriend deletes the directed edge. Removing a missing edge is a
	// no-op.
	RemoveFriend(ctx context.Context, userID, friendID int64) error

	// FriendIDs returns the outgoing friend ids of a user, ascending.
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
}
