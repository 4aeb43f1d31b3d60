// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewWelcome is the landing screen with the service statistics.
	ViewWelcome ViewType = iota
	// ViewLogin is the login form.
	ViewLogin
	// ViewRegister is the registration wizard.
	ViewRegister
	// ViewStudent is the student panel.
	ViewStudent
	// ViewStaff is the staff panel.
	ViewStaff
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewStudent:
		return "student"
	case ViewStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// LoginCompleted carries the outcome of a login attempt.
type LoginCompleted struct {
	User *domain.User
	Err  error
}

// RegistrationCompleted carries the outcome of a registration attempt.
type RegistrationCompleted struct {
	User *domain.User
	Err  error
}

// SessionClosed signals the active session was closed.
type SessionClosed struct{}

// AppointmentCreated carries the outcome of an appointment request.
type AppointmentCreated struct {
	Appointment *domain.Appointment
	Err         error
}

// StatusChanged carries the outcome of a staff status change.
type StatusChanged struct {
	Appointment *domain.Appointment
	Err         error
}

// ProfileSaved carries the outcome of a profile update.
type ProfileSaved struct {
	User *domain.User
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
