package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
)

func newTestServices(t *testing.T) (*Repository, *AccountService, *AppointmentService) {
	t.Helper()
	repo, _ := newTestRepository(t)
	validate := validation.New(dates.NewWithClock(testClock))
	return repo, NewAccountService(repo, validate), NewAppointmentService(repo, validate)
}

func TestLoginOpensSession(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	user, err := accounts.Login(domain.LoginForm{
		Email:    "juan.estudiante@gmail.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SeedStudent.ID, user.ID)

	session := repo.Session()
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	_, err := accounts.Login(domain.LoginForm{
		Email:    "nadie@gmail.com",
		Password: "123456",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, repo.Session())
}

func TestLoginWrongPassword(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	_, err := accounts.Login(domain.LoginForm{
		Email:    "juan.estudiante@gmail.com",
		Password: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.Nil(t, repo.Session())
}

func TestLoginInvalidForm(t *testing.T) {
	_, accounts, _ := newTestServices(t)

	_, err := accounts.Login(domain.LoginForm{Email: "", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = accounts.Login(domain.LoginForm{Email: "juan@hotmail.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogoutClearsSession(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	_, err := accounts.Login(domain.LoginForm{Email: "nohegarcia@gmail.com", Password: "123456"})
	require.NoError(t, err)
	require.NotNil(t, repo.Session())

	require.NoError(t, accounts.Logout())
	assert.Nil(t, repo.Session())
}

func validRegistration() domain.RegistrationForm {
	return domain.RegistrationForm{
		ID:              "1717171717",
		Name:            "Laura Mendoza",
		Email:           "laura.mendoza@gmail.com",
		Password:        "segura1",
		ConfirmPassword: "segura1",
		Role:            "estudiante",
		Phone:           "3123456789",
		Major:           "Psicología",
		Term:            "4",
	}
}

func TestRegisterAddsUser(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	user, err := accounts.Register(validRegistration())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.Equal(t, domain.PlaceholderPhoto, user.Photo)

	assert.Len(t, repo.Users(), 3)
	// Registration does not open a session.
	assert.Nil(t, repo.Session())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	form := validRegistration()
	form.Email = "juan.estudiante@gmail.com"
	_, err := accounts.Register(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, repo.Users(), 2)
}

func TestRegisterDuplicateID(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	form := validRegistration()
	form.ID = domain.SeedStudent.ID
	_, err := accounts.Register(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, repo.Users(), 2)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	_, accounts, _ := newTestServices(t)

	_, err := accounts.UpdateProfile(domain.ProfilePatch{
		Name:  "Juan P.",
		Email: "juan.estudiante@gmail.com",
		Phone: "3001234567",
	})
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestUpdateProfileUpdatesUserAndSession(t *testing.T) {
	repo, accounts, _ := newTestServices(t)

	_, err := accounts.Login(domain.LoginForm{Email: "juan.estudiante@gmail.com", Password: "123456"})
	require.NoError(t, err)

	updated, err := accounts.UpdateProfile(domain.ProfilePatch{
		Name:  "Juan Pérez Actualizado",
		Email: "juan.estudiante@gmail.com",
		Phone: "3119998877",
		Major: "Ingeniería de Sistemas",
		Term:  "9",
	})
	require.NoError(t, err)

	assert.Equal(t, "Juan Pérez Actualizado", updated.Name)
	assert.Equal(t, "3119998877", updated.Phone)
	// Identity and credential survive untouched.
	assert.Equal(t, domain.SeedStudent.ID, updated.ID)
	assert.Equal(t, domain.SeedStudent.Password, updated.Password)
	// Empty photo keeps the existing one.
	assert.Equal(t, domain.SeedStudent.Photo, updated.Photo)

	session := repo.Session()
	require.NotNil(t, session)
	assert.Equal(t, "Juan Pérez Actualizado", session.Name)

	stored := repo.FindUserByID(domain.SeedStudent.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "9", stored.Term)
}

func TestCurrentUser(t *testing.T) {
	_, accounts, _ := newTestServices(t)

	assert.Nil(t, accounts.CurrentUser())

	_, err := accounts.Login(domain.LoginForm{Email: "nohegarcia@gmail.com", Password: "123456"})
	require.NoError(t, err)

	current := accounts.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, domain.RoleStaff, current.Role)
}
