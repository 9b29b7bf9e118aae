package domain

import "errors"

// Domain errors
var (
	ErrUnknownField       = errors.New("unknown field")
	ErrNoMatch            = errors.New("no matching entity")
	ErrAmbiguousMatch     = errors.New("field query matched more than one entity")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrBookNotFound       = errors.New("book not found")
	ErrPDFNotFound        = errors.New("pdf not found")
	ErrFileNotFound       = errors.New("file not found")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
