package user

import (
	"context"

	"filmrate-backend/internal/domains/feed"
)

type Service interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error

	AddFriend(ctx context.Context, userID, friendID int64) error
	ConfirmFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]User, error)

	GetFeed(ctx context.Context, userID int64) ([]feed.Event, error)
}
