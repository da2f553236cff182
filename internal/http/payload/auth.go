package payload

import (
	"piquante/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Email:    s.Email,
		Password: s.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    l.Email,
		Password: l.Password,
	}
}
