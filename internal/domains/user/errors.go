package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email is already in use")
	ErrRequestExists  = errors.New("friend request already exists")
	ErrEdgeNotFound   = errors.New("friend request not found")
	ErrSelfFriendship = errors.New("cannot add yourself as a friend")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrEdgeNotFound):
		return 404
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrRequestExists), errors.Is(err, ErrSelfFriendship):
		return 400
	default:
		return 500
	}
}
