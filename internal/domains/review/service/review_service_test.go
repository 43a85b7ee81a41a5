package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmrate-backend/internal/domains/review"
)

type vote struct {
	reviewID int64
	userID   int64
	positive bool
}

type fakeReviewRepository struct {
	reviews map[int64]review.Review
	nextID  int64

	setVotes     []vote
	removedVotes []vote
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{reviews: make(map[int64]review.Review), nextID: 1}
}

func (f *fakeReviewRepository) Create(ctx context.Context, r *review.Review) (*review.Review, error) {
	created := *r
	created.ID = f.nextID
	f.nextID++
	f.reviews[created.ID] = created
	return &created, nil
}

func (f *fakeReviewRepository) Update(ctx context.Context, id int64, content string, positive bool) (*review.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	r.Content = content
	r.Positive = positive
	f.reviews[id] = r
	return &r, nil
}

func (f *fakeReviewRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return review.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	return &r, nil
}

func (f *fakeReviewRepository) GetByFilm(ctx context.Context, filmID int64, count int) ([]review.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepository) SetVote(ctx context.Context, reviewID, userID int64, positive bool) error {
	f.setVotes = append(f.setVotes, vote{reviewID, userID, positive})
	return nil
}

func (f *fakeReviewRepository) RemoveVote(ctx context.Context, reviewID, userID int64, positive bool) error {
	f.removedVotes = append(f.removedVotes, vote{reviewID, userID, positive})
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := newFakeReviewRepository()
		svc := NewReviewService(repo)

		created, err := svc.Create(ctx, review.CreateReviewRequest{
			Content:  "A fine picture.",
			Positive: boolPtr(true),
			UserID:   1,
			FilmID:   2,
		})
		require.NoError(t, err)
		assert.True(t, created.Positive)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("missing verdict", func(t *testing.T) {
		svc := NewReviewService(newFakeReviewRepository())

		_, err := svc.Create(ctx, review.CreateReviewRequest{
			Content: "No verdict.",
			UserID:  1,
			FilmID:  2,
		})
		assert.Error(t, err)
	})

	t.Run("explicit negative verdict survives", func(t *testing.T) {
		repo := newFakeReviewRepository()
		svc := NewReviewService(repo)

		created, err := svc.Create(ctx, review.CreateReviewRequest{
			Content:  "Not worth the ticket.",
			Positive: boolPtr(false),
			UserID:   1,
			FilmID:   2,
		})
		require.NoError(t, err)
		assert.False(t, created.Positive)
	})
}

func TestReviewVotes(t *testing.T) {
	ctx := context.Background()

	repo := newFakeReviewRepository()
	svc := NewReviewService(repo)

	require.NoError(t, svc.AddLike(ctx, 1, 10))
	require.NoError(t, svc.AddDislike(ctx, 1, 11))
	require.NoError(t, svc.RemoveLike(ctx, 1, 10))
	require.NoError(t, svc.RemoveDislike(ctx, 1, 11))

	assert.Equal(t, []vote{{1, 10, true}, {1, 11, false}}, repo.setVotes)
	assert.Equal(t, []vote{{1, 10, true}, {1, 11, false}}, repo.removedVotes)
}
