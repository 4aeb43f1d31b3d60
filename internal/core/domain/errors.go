package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound indicates no account matches the given email.
	ErrUserNotFound = errors.New("usuario no encontrado")

	// ErrWrongPassword indicates the password does not match the account.
	ErrWrongPassword = errors.New("contraseña incorrecta")

	// ErrNotLoggedIn indicates an operation requires an active session.
	ErrNotLoggedIn = errors.New("no active session")

	// ErrRoleDenied indicates the active user's role may not perform the
	// operation (e.g. a student confirming appointments).
	ErrRoleDenied = errors.New("role not permitted")
)

// FieldError is a validation failure tied to a specific input field. The
// message is the human-readable reason shown to the actor, in the fixed
// order the checks run: only the first failing check is surfaced.
type FieldError struct {
	// Field names the input that failed (e.g. "email", "fecha").
	Field string
	// Message is the user-facing reason, in Spanish like the rest of the
	// product surface.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes every FieldError match ErrInvalidInput, so callers can branch
// on the class without caring which field failed.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewFieldError builds a FieldError for the given field and message.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
