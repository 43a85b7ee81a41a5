package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"filmrate-backend/internal/domains/feed"
	"filmrate-backend/internal/domains/user"
)

type userService struct {
	repo     user.Repository
	feedRepo feed.Repository
}

func NewUserService(repo user.Repository, feedRepo feed.Repository) user.Service {
	return &userService{repo: repo, feedRepo: feedRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]user.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilUsers(users), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Duplicate email check before insert; the unique constraint backs this
	// up under concurrency.
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToUser())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) Update(ctx context.Context, req user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, req.ToUser())
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return user.ErrSelfFriendship
	}
	if err := s.ensureUsersExist(ctx, userID, friendID); err != nil {
		return err
	}
	return s.repo.AddFriend(ctx, userID, friendID)
}

func (s *userService) ConfirmFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.ensureUsersExist(ctx, userID, friendID); err != nil {
		return err
	}
	return s.repo.ConfirmFriend(ctx, userID, friendID)
}

func (s *userService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.ensureUsersExist(ctx, userID, friendID); err != nil {
		return err
	}
	return s.repo.RemoveFriend(ctx, userID, friendID)
}

func (s *userService) GetFriends(ctx context.Context, userID int64) ([]user.User, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.repo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// GetByIDs drops ids of users that no longer exist; a dangling edge must
	// not fail the whole listing.
	friends, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return nonNilUsers(friends), nil
}

func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]user.User, error) {
	if err := s.ensureUsersExist(ctx, userID, otherID); err != nil {
		return nil, err
	}

	mine, err := s.repo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.repo.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	common := intersect(mine, theirs)
	if len(common) == 0 {
		return []user.User{}, nil
	}

	users, err := s.repo.GetByIDs(ctx, common)
	if err != nil {
		return nil, err
	}
	return nonNilUsers(users), nil
}

func (s *userService) GetFeed(ctx context.Context, userID int64) ([]feed.Event, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	events, err := s.feedRepo.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []feed.Event{}
	}
	return events, nil
}

func (s *userService) ensureUsersExist(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// nonNilUsers keeps empty listings encoding as [] rather than null.
func nonNilUsers(users []user.User) []user.User {
	if users == nil {
		return []user.User{}
	}
	return users
}

func intersect(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}

	var out []int64
	for _, id := range b {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
