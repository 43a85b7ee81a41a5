package user

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"filmrate-backend/internal/shared"
)

var loginPattern = regexp.MustCompile(`^\S+$`)

type CreateUserRequest struct {
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"`
	Birthday shared.Date `json:"birthday"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Login,
			validation.Required.Error("login is required"),
			validation.Match(loginPattern).Error("login must not contain whitespace"),
		),
		validation.Field(&r.Birthday, validation.By(birthdayValid)),
	)
}

// ToUser builds the domain entity; display name defaults to login.
func (r CreateUserRequest) ToUser() *User {
	name := r.Name
	if name == "" {
		name = r.Login
	}
	return &User{
		Email:    r.Email,
		Login:    r.Login,
		Name:     name,
		Birthday: r.Birthday,
	}
}

type UpdateUserRequest struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"`
	Birthday shared.Date `json:"birthday"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("id is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Login,
			validation.Required.Error("login is required"),
			validation.Match(loginPattern).Error("login must not contain whitespace"),
		),
		validation.Field(&r.Birthday, validation.By(birthdayValid)),
	)
}

func (r UpdateUserRequest) ToUser() *User {
	name := r.Name
	if name == "" {
		name = r.Login
	}
	return &User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     name,
		Birthday: r.Birthday,
	}
}

// Required does not see a struct embedding a zero time.Time as empty, so
// presence is checked here.
func birthdayValid(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return errors.New("birthday is required")
	}
	if d.After(time.Now()) {
		return errors.New("birthday must not be in the future")
	}
	return nil
}
