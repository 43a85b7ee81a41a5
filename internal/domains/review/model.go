package review

// Review is a user's verdict on a film. Useful is derived from the vote
// relation as likes minus dislikes and never stored.
type Review struct {
	ID       int64  `json:"reviewId" db:"id"`
	Content  string `json:"content" db:"content"`
	Positive bool   `json:"isPositive" db:"positive"`
	UserID   int64  `json:"userId" db:"user_id"`
	FilmID   int64  `json:"filmId" db:"film_id"`
	Useful   int64  `json:"useful"`
}
