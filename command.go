package session

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Commands are transient values describing one coordinated invocation.
// They exist only for the duration of the call and are validated before
// the provider is contacted; a validation failure follows the same
// classified failure path as a provider failure.
//
// The provider is the arbiter of credential policy, so only presence is
// checked here: format or strength rules would reject input the provider
// might accept.

type SignInCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (c SignInCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

type RegisterCommand struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// Validate will run validation rules. DisplayName is optional: an empty
// name is the normal anonymous-style path, not an error.
func (c RegisterCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

type ResetPasswordCommand struct {
	Email string `json:"email"`
}

// Validate will run validation rules
func (c ResetPasswordCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
	)
}
