package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"filmrate-backend/internal/shared"
)

func validUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Email:    "viewer@example.com",
		Login:    "viewer",
		Name:     "A Viewer",
		Birthday: shared.NewDate(1990, time.June, 15),
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validUserRequest().Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := validUserRequest()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("login with whitespace", func(t *testing.T) {
		req := validUserRequest()
		req.Login = "has space"
		assert.Error(t, req.Validate())
	})

	t.Run("missing birthday", func(t *testing.T) {
		req := validUserRequest()
		req.Birthday = shared.Date{}
		assert.Error(t, req.Validate())
	})

	t.Run("birthday in the future", func(t *testing.T) {
		req := validUserRequest()
		future := time.Now().AddDate(1, 0, 0)
		req.Birthday = shared.NewDate(future.Year(), future.Month(), future.Day())
		assert.Error(t, req.Validate())
	})

	t.Run("recent birthday is allowed", func(t *testing.T) {
		req := validUserRequest()
		recent := time.Now().AddDate(0, 0, -2)
		req.Birthday = shared.NewDate(recent.Year(), recent.Month(), recent.Day())
		assert.NoError(t, req.Validate())
	})
}

func TestToUser(t *testing.T) {
	t.Run("keeps an explicit name", func(t *testing.T) {
		u := validUserRequest().ToUser()
		assert.Equal(t, "A Viewer", u.Name)
	})

	t.Run("blank name falls back to login", func(t *testing.T) {
		req := validUserRequest()
		req.Name = ""
		u := req.ToUser()
		assert.Equal(t, "viewer", u.Name)
	})
}
