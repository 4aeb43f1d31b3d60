package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

func TestProfileCmd_Use(t *testing.T) {
	assert.Equal(t, "profile", profileCmd.Use)
}

func TestProfileShow_RequiresSession(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "profile", "show")

	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestProfileShow_StudentFields(t *testing.T) {
	setupServices(t)
	loginAs(t, "juan.estudiante@gmail.com")

	out, err := execute(t, "profile", "show")

	assert.NoError(t, err)
	assert.Contains(t, out, "Cédula:   "+domain.SeedStudent.ID)
	assert.Contains(t, out, "Juan Pérez Estudiante")
	assert.Contains(t, out, "Carrera:  Ingeniería de Sistemas")
	assert.Contains(t, out, "Semestre: 8")
}

func TestProfileUpdate_ChangesOnlyGivenFlags(t *testing.T) {
	setupServices(t)
	loginAs(t, "juan.estudiante@gmail.com")

	out, err := execute(t, "profile", "update", "--phone", "3215557777")

	assert.NoError(t, err)
	assert.Contains(t, out, "Perfil actualizado: Juan Pérez Estudiante")

	user := accountService.CurrentUser()
	assert.Equal(t, "3215557777", user.Phone)
	assert.Equal(t, domain.SeedStudent.Email, user.Email)
	assert.Equal(t, domain.SeedStudent.ID, user.ID)
}
