package film

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filmrate-backend/internal/shared"
)

// The first film screening; no release date may precede it.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type MpaRef struct {
	ID int `json:"id"`
}

type GenreRef struct {
	ID int `json:"id"`
}

type DirectorRef struct {
	ID int64 `json:"id"`
}

type CreateFilmRequest struct {
	Title       string        `json:"name"`
	Description string        `json:"description"`
	ReleaseDate shared.Date   `json:"releaseDate"`
	Duration    int           `json:"duration"`
	Mpa         MpaRef        `json:"mpa"`
	Genres      []GenreRef    `json:"genres"`
	Directors   []DirectorRef `json:"directors"`
}

func (r CreateFilmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("film name is required")),
		validation.Field(&r.Description,
			validation.Length(0, 200).Error("description must not exceed 200 characters")),
		validation.Field(&r.ReleaseDate, validation.By(releaseDateValid)),
		validation.Field(&r.Duration,
			validation.Required.Error("duration is required"),
			validation.Min(1).Error("duration must be positive")),
		validation.Field(&r.Mpa, validation.By(mpaRefRequired)),
	)
}

type UpdateFilmRequest struct {
	ID          int64         `json:"id"`
	Title       string        `json:"name"`
	Description string        `json:"description"`
	ReleaseDate shared.Date   `json:"releaseDate"`
	Duration    int           `json:"duration"`
	Mpa         MpaRef        `json:"mpa"`
	Genres      []GenreRef    `json:"genres"`
	Directors   []DirectorRef `json:"directors"`
}

func (r UpdateFilmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("id is required")),
		validation.Field(&r.Title, validation.Required.Error("film name is required")),
		validation.Field(&r.Description,
			validation.Length(0, 200).Error("description must not exceed 200 characters")),
		validation.Field(&r.ReleaseDate, validation.By(releaseDateValid)),
		validation.Field(&r.Duration,
			validation.Required.Error("duration is required"),
			validation.Min(1).Error("duration must be positive")),
		validation.Field(&r.Mpa, validation.By(mpaRefRequired)),
	)
}

// GenreIDs returns the referenced genre ids with duplicates removed
// (associations are sets, not sequences).
func (r CreateFilmRequest) GenreIDs() []int {
	return dedupeInts(r.Genres)
}

func (r CreateFilmRequest) DirectorIDs() []int64 {
	return dedupeInt64s(r.Directors)
}

func (r UpdateFilmRequest) GenreIDs() []int {
	return dedupeInts(r.Genres)
}

func (r UpdateFilmRequest) DirectorIDs() []int64 {
	return dedupeInt64s(r.Directors)
}

// Required does not see a struct embedding a zero time.Time as empty, so
// presence is checked here, like mpaRefRequired.
func releaseDateValid(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return errors.New("release date is required")
	}
	if d.Before(earliestReleaseDate) {
		return errors.New("release date must not be before 1895-12-28")
	}
	return nil
}

func mpaRefRequired(value interface{}) error {
	ref, ok := value.(MpaRef)
	if !ok || ref.ID == 0 {
		return errors.New("mpa rating is required")
	}
	return nil
}

func dedupeInts(refs []GenreRef) []int {
	seen := make(map[int]struct{}, len(refs))
	var out []int
	for _, ref := range refs {
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		out = append(out, ref.ID)
	}
	return out
}

func dedupeInt64s(refs []DirectorRef) []int64 {
	seen := make(map[int64]struct{}, len(refs))
	var out []int64
	for _, ref := range refs {
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		out = append(out, ref.ID)
	}
	return out
}
