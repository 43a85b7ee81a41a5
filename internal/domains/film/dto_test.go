package film

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmrate-backend/internal/shared"
)

func validCreateRequest() CreateFilmRequest {
	return CreateFilmRequest{
		Title:       "The Cradle of Film",
		Description: "Workers leaving the factory.",
		ReleaseDate: shared.NewDate(1895, time.December, 28),
		Duration:    46,
		Mpa:         MpaRef{ID: 1},
	}
}

func TestCreateFilmRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate())
	})

	t.Run("boundary release date is allowed", func(t *testing.T) {
		req := validCreateRequest()
		req.ReleaseDate = shared.NewDate(1895, time.December, 28)
		assert.NoError(t, req.Validate())
	})

	t.Run("missing release date", func(t *testing.T) {
		req := validCreateRequest()
		req.ReleaseDate = shared.Date{}
		assert.Error(t, req.Validate())
	})

	t.Run("release date before first screening", func(t *testing.T) {
		req := validCreateRequest()
		req.ReleaseDate = shared.NewDate(1895, time.December, 27)
		assert.Error(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := validCreateRequest()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("description at the limit", func(t *testing.T) {
		req := validCreateRequest()
		req.Description = strings.Repeat("x", 200)
		assert.NoError(t, req.Validate())
	})

	t.Run("description over the limit", func(t *testing.T) {
		req := validCreateRequest()
		req.Description = strings.Repeat("x", 201)
		assert.Error(t, req.Validate())
	})

	t.Run("non-positive duration", func(t *testing.T) {
		req := validCreateRequest()
		req.Duration = 0
		assert.Error(t, req.Validate())

		req.Duration = -10
		assert.Error(t, req.Validate())
	})

	t.Run("missing mpa", func(t *testing.T) {
		req := validCreateRequest()
		req.Mpa = MpaRef{}
		assert.Error(t, req.Validate())
	})
}

func TestRequestRefDedupe(t *testing.T) {
	req := validCreateRequest()
	req.Genres = []GenreRef{{ID: 2}, {ID: 1}, {ID: 2}}
	req.Directors = []DirectorRef{{ID: 7}, {ID: 7}}

	assert.Equal(t, []int{2, 1}, req.GenreIDs())
	assert.Equal(t, []int64{7}, req.DirectorIDs())
}

func TestUpdateFilmRequestValidate(t *testing.T) {
	req := UpdateFilmRequest{
		ID:          1,
		Title:       "Updated",
		ReleaseDate: shared.NewDate(2000, time.January, 1),
		Duration:    90,
		Mpa:         MpaRef{ID: 2},
	}
	require.NoError(t, req.Validate())

	req.ID = 0
	assert.Error(t, req.Validate())

	req.ID = 1
	req.ReleaseDate = shared.Date{}
	assert.Error(t, req.Validate())
}
