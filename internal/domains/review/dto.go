package review

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Positive is a pointer so a missing verdict is distinguishable from an
// explicit negative one.
type CreateReviewRequest struct {
	Content  string `json:"content"`
	Positive *bool  `json:"isPositive"`
	UserID   int64  `json:"userId"`
	FilmID   int64  `json:"filmId"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Positive, validation.NotNil.Error("isPositive is required")),
		validation.Field(&r.UserID, validation.Required.Error("userId is required")),
		validation.Field(&r.FilmID, validation.Required.Error("filmId is required")),
	)
}

func (r CreateReviewRequest) ToReview() *Review {
	return &Review{
		Content:  r.Content,
		Positive: r.Positive != nil && *r.Positive,
		UserID:   r.UserID,
		FilmID:   r.FilmID,
	}
}

type UpdateReviewRequest struct {
	ID       int64  `json:"reviewId"`
	Content  string `json:"content"`
	Positive *bool  `json:"isPositive"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("reviewId is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Positive, validation.NotNil.Error("isPositive is required")),
	)
}
