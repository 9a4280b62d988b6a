package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	requiredMessage = "This field is required"
	emailMessage    = "Invalid email"
	mismatchMessage = "Passwords do not match"
)

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New(requiredMessage)
	}
	return nil
}

// SignupForm holds the values of the signup page
type SignupForm struct {
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"passwordConfirmation" form:"passwordConfirmation"`
	Firstname            string `json:"firstname" form:"firstname"`
	Lastname             string `json:"lastname" form:"lastname"`
}

// Validate checks the whole form in one pass. Errors are keyed by the json
// field name and each field reports its first violation only.
func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required.Error(requiredMessage), is.Email.Error(emailMessage)),
		validation.Field(&f.Password, validation.Required.Error(requiredMessage), validation.By(notBlank)),
		validation.Field(&f.PasswordConfirmation,
			validation.Required.Error(requiredMessage),
			validation.In(f.Password).Error(mismatchMessage),
		),
		validation.Field(&f.Firstname, validation.Required.Error(requiredMessage)),
		validation.Field(&f.Lastname, validation.Required.Error(requiredMessage)),
	)
}

// Request returns the payload sent to the account creation endpoint
func (f SignupForm) Request() SignupRequest {
	return SignupRequest{Email: f.Email, Password: f.Password}
}

// SignupRequest is the body sent to the account creation endpoint
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
