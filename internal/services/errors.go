package services

import "errors"

var (
	// ErrFlightNotFound is returned for an unknown flight slug.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned for self-registration against an existing account.
	ErrEmailTaken = errors.New("account with this email already exists")

	// ErrUnknownGroup means staff registration named a group that is not seeded.
	ErrUnknownGroup = errors.New("unknown staff group")
)

// ValidationError carries a user-facing message back to the booking
// form. Nothing is persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reports whether err is a form-level validation
// failure rather than a system fault.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
