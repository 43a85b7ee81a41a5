package review

import "context"

// Repository is the data access contract for reviews and their votes.
// Write operations that change a review's lifecycle record a feed event
// for the review's author in the same transaction.
type Repository interface {
	// Create validates the user and film references, inserts the review
	// and records a REVIEW/ADD feed event.
	Create(ctx context.Context, r *Review) (*Review, error)

	// Update changes content and verdict only; author and film are
	// immutable. Records a REVIEW/UPDATE event for the original author.
	Update(ctx context.Context, id int64, content string, positive bool) (*Review, error)

	// Delete removes the review and records a REVIEW/REMOVE event for its
	// author.
	Delete(ctx context.Context, id int64) error

	// GetByID returns the review with its useful score or
	// ErrReviewNotFound.
	GetByID(ctx context.Context, id int64) (*Review, error)

	// GetByFilm returns up to count reviews, ordered by useful score
	// descending then id ascending. filmID of zero means all films.
	GetByFilm(ctx context.Context, filmID int64, count int) ([]Review, error)

	// SetVote upserts the user's vote on a review; a like replaces a
	// dislike and vice versa.
	SetVote(ctx context.Context, reviewID, userID int64, positive bool) error

	// RemoveVote deletes the user's vote if it matches the given polarity.
	RemoveVote(ctx context.Context, reviewID, userID int64, positive bool) error
}
