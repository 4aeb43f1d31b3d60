package driving

import "github.com/uniwell-labs/bienestar-cli/internal/core/domain"

// AccountService handles registration, authentication and profile
// self-service.
type AccountService interface {
	// Login validates the form, matches the credentials against the
	// user set and opens a persisted session. Failures are a
	// *domain.FieldError, domain.ErrUserNotFound or
	// domain.ErrWrongPassword.
	Login(form domain.LoginForm) (*domain.User, error)

	// Logout clears the active session. A no-op without one.
	Logout() error

	// Register validates the form against the existing user set and
	// appends the new account. It does not open a session.
	Register(form domain.RegistrationForm) (*domain.User, error)

	// UpdateProfile patches the active user's profile, persists the
	// user set and keeps the session reference in step.
	UpdateProfile(patch domain.ProfilePatch) (*domain.User, error)

	// CurrentUser returns the active session's user, or nil.
	CurrentUser() *domain.User
}
