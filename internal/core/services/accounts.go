package services

import (
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
	"github.com/uniwell-labs/bienestar-cli/internal/logger"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// AccountService implements registration, login and profile flows over
// the repository. Passwords are compared in plain text; that is the
// documented behaviour of this system.
type AccountService struct {
	repo     *Repository
	validate *validation.Service
}

// NewAccountService creates an account service.
func NewAccountService(repo *Repository, validate *validation.Service) *AccountService {
	return &AccountService{repo: repo, validate: validate}
}

// Login validates the form, matches credentials and opens a session.
// No state is mutated on any failure path.
func (s *AccountService) Login(form domain.LoginForm) (*domain.User, error) {
	if err := s.validate.CheckLogin(form); err != nil {
		return nil, err
	}

	user := s.repo.FindUserByEmail(form.Email)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Password != form.Password {
		return nil, domain.ErrWrongPassword
	}

	if err := s.repo.SetSession(*user); err != nil {
		return nil, err
	}
	logger.Info("session opened for %s (%s)", user.Email, user.Role)
	return user, nil
}

// Logout clears the session.
func (s *AccountService) Logout() error {
	return s.repo.ClearSession()
}

// Register validates the form against the existing user set and
// appends the new account. The caller logs in separately.
func (s *AccountService) Register(form domain.RegistrationForm) (*domain.User, error) {
	if err := s.validate.CheckRegistration(form, s.repo.Users()); err != nil {
		return nil, err
	}

	user := form.User()
	if err := s.repo.AddUser(user); err != nil {
		return nil, err
	}
	logger.Info("registered %s as %s", user.Email, user.Role)
	return &user, nil
}

// UpdateProfile patches the active user, persists the user set and
// keeps the session reference pointing at the updated record.
func (s *AccountService) UpdateProfile(patch domain.ProfilePatch) (*domain.User, error) {
	current := s.repo.Session()
	if current == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if err := s.validate.CheckProfile(patch); err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if err := s.repo.UpdateUser(updated); err != nil {
		return nil, err
	}
	if err := s.repo.SetSession(updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CurrentUser returns the active session's user, or nil.
func (s *AccountService) CurrentUser() *domain.User {
	return s.repo.Session()
}
