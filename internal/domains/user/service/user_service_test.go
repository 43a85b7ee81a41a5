package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmrate-backend/internal/domains/feed"
	"filmrate-backend/internal/domains/user"
	"filmrate-backend/internal/shared"
)

type fakeUserRepository struct {
	users   map[int64]user.User
	friends map[int64][]int64
	nextID  int64

	addedEdges   [][2]int64
	removedEdges [][2]int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:   make(map[int64]user.User),
		friends: make(map[int64][]int64),
		nextID:  1,
	}
}

func (f *fakeUserRepository) seed(u user.User) user.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepository) GetAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepository) GetByIDs(ctx context.Context, ids []int64) ([]user.User, error) {
	var out []user.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	created := f.seed(*u)
	return &created, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return nil, user.ErrUserNotFound
	}
	f.users[u.ID] = *u
	return u, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	f.addedEdges = append(f.addedEdges, [2]int64{userID, friendID})
	f.friends[userID] = append(f.friends[userID], friendID)
	return nil
}

func (f *fakeUserRepository) ConfirmFriend(ctx context.Context, userID, friendID int64) error {
	return nil
}

func (f *fakeUserRepository) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	f.removedEdges = append(f.removedEdges, [2]int64{userID, friendID})
	return nil
}

func (f *fakeUserRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	return f.friends[userID], nil
}

type fakeFeedRepository struct {
	events map[int64][]feed.Event
}

func (f *fakeFeedRepository) GetForUser(ctx context.Context, userID int64) ([]feed.Event, error) {
	return f.events[userID], nil
}

func testUser(email, login string) user.User {
	return user.User{
		Email:    email,
		Login:    login,
		Name:     login,
		Birthday: shared.NewDate(1990, time.June, 15),
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.seed(testUser("taken@example.com", "first"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Email:    "taken@example.com",
			Login:    "second",
			Birthday: shared.NewDate(1990, time.June, 15),
		})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("name defaults to login", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := NewUserService(repo, &fakeFeedRepository{})

		created, err := svc.Create(ctx, user.CreateUserRequest{
			Email:    "new@example.com",
			Login:    "newbie",
			Birthday: shared.NewDate(1990, time.June, 15),
		})
		require.NoError(t, err)
		assert.Equal(t, "newbie", created.Name)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := NewUserService(repo, &fakeFeedRepository{})

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Email: "not-an-email",
			Login: "has space",
		})
		assert.Error(t, err)
	})
}

func TestFriendship(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects self friendship", func(t *testing.T) {
		repo := newFakeUserRepository()
		u := repo.seed(testUser("a@example.com", "a"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		err := svc.AddFriend(ctx, u.ID, u.ID)
		assert.ErrorIs(t, err, user.ErrSelfFriendship)
		assert.Empty(t, repo.addedEdges)
	})

	t.Run("rejects unknown participant", func(t *testing.T) {
		repo := newFakeUserRepository()
		u := repo.seed(testUser("a@example.com", "a"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		err := svc.AddFriend(ctx, u.ID, 404)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("friendship is one-directional", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		b := repo.seed(testUser("b@example.com", "b"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		require.NoError(t, svc.AddFriend(ctx, a.ID, b.ID))

		mine, err := svc.GetFriends(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, b.ID, mine[0].ID)

		theirs, err := svc.GetFriends(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, theirs)
		assert.NotNil(t, theirs)
	})

	t.Run("removing an absent edge is a no-op", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		b := repo.seed(testUser("b@example.com", "b"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		assert.NoError(t, svc.RemoveFriend(ctx, a.ID, b.ID))
	})

	t.Run("dangling edges are skipped when listing", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		b := repo.seed(testUser("b@example.com", "b"))
		repo.friends[a.ID] = []int64{b.ID, 999}
		svc := NewUserService(repo, &fakeFeedRepository{})

		friends, err := svc.GetFriends(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, b.ID, friends[0].ID)
	})
}

func TestGetCommonFriends(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the intersection", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		b := repo.seed(testUser("b@example.com", "b"))
		mutual := repo.seed(testUser("m@example.com", "mutual"))
		onlyA := repo.seed(testUser("oa@example.com", "onlyA"))
		repo.friends[a.ID] = []int64{mutual.ID, onlyA.ID}
		repo.friends[b.ID] = []int64{mutual.ID}
		svc := NewUserService(repo, &fakeFeedRepository{})

		common, err := svc.GetCommonFriends(ctx, a.ID, b.ID)
		require.NoError(t, err)
		require.Len(t, common, 1)
		assert.Equal(t, mutual.ID, common[0].ID)
	})

	t.Run("empty when nothing is shared", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		b := repo.seed(testUser("b@example.com", "b"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		common, err := svc.GetCommonFriends(ctx, a.ID, b.ID)
		require.NoError(t, err)
		assert.Empty(t, common)
		assert.NotNil(t, common)
	})
}

func TestGetFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's events", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		feedRepo := &fakeFeedRepository{events: map[int64][]feed.Event{
			a.ID: {
				{ID: 1, UserID: a.ID, EventType: feed.EventTypeLike, Operation: feed.OperationAdd},
			},
		}}
		svc := NewUserService(repo, feedRepo)

		events, err := svc.GetFeed(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, feed.EventTypeLike, events[0].EventType)
	})

	t.Run("quiet user gets an empty feed", func(t *testing.T) {
		repo := newFakeUserRepository()
		a := repo.seed(testUser("a@example.com", "a"))
		svc := NewUserService(repo, &fakeFeedRepository{})

		events, err := svc.GetFeed(ctx, a.ID)
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NotNil(t, events)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := NewUserService(repo, &fakeFeedRepository{})

		_, err := svc.GetFeed(ctx, 404)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
