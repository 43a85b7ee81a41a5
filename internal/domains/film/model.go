package film

import (
	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/internal/shared"
)

// Film is the aggregate root. Genre and director associations live in join
// rows and are hydrated as sets; Likes is always the cardinality of the
// likes relation, never a stored counter.
type Film struct {
	ID          int64               `json:"id" db:"id"`
	Title       string              `json:"name" db:"title"`
	Description string              `json:"description" db:"description"`
	ReleaseDate shared.Date         `json:"releaseDate" db:"release_date"`
	Duration    int                 `json:"duration" db:"duration"` // minutes
	Mpa         mpa.Rating          `json:"mpa"`
	Genres      []genre.Genre       `json:"genres"`
	Directors   []director.Director `json:"directors"`
	Likes       int64               `json:"likes"`
}
