package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidRecipeID    = errors.New("invalid recipe id")
)

// Client-facing validation messages
const (
	MsgAllFieldsRequired    = "all fields are required"
	MsgInvalidFirstName     = "first name must contain only letters and spaces"
	MsgInvalidLastName      = "last name must contain only letters and spaces"
	MsgInvalidEmail         = "invalid email format"
	MsgWeakPassword         = "password must be atleast 8 characters long and include uppercase, lowercase, number, and special character"
	MsgLoginFieldsRequired  = "email and password are required"
	MsgNoValidUpdateFields  = "no valid fields provided for update"
	msgFieldMustBeStringFmt = "%s must be a string"
)

// ValidationError reports input the caller has to fix. Its message is safe to return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
