package entity

import (
	"errors"
)

var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrDuplicateUniqueField = errors.New("duplicate unique field")
	ErrInvalidArgument      = errors.New("invalid argument")
)

var (
	ErrDuplicateSignIn = errors.New("already signed in today")
	ErrNoOpenSignIn    = errors.New("no open sign in")
	ErrMessageNotFound = errors.New("message not found")
)

var (
	ErrNotFound      = errors.New("not found")
	ErrLocationInUse = errors.New("location is assigned to guards")
)

// FieldError names the offending field of a validation failure.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func MissingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingRequiredField}
}

func DuplicateField(field string) error {
	return &FieldError{Field: field, Err: ErrDuplicateUniqueField}
}

func InvalidField(field string) error {
	return &FieldError{Field: field, Err: ErrInvalidArgument}
}
