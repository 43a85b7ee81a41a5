package director

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateDirectorRequest struct {
	Name string `json:"name"`
}

func (r CreateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("director name is required"),
			validation.Length(1, 255),
		),
	)
}

type UpdateDirectorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r UpdateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("id is required")),
		validation.Field(&r.Name,
			validation.Required.Error("director name is required"),
			validation.Length(1, 255),
		),
	)
}
