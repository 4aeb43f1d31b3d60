package login

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/storage/memory"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/messages"
	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/services"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
)

func newTestView(t *testing.T) *View {
	t.Helper()

	now := func() time.Time { return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) }
	repo, err := services.NewRepository(memory.NewKVStore(), now)
	require.NoError(t, err)

	accounts := services.NewAccountService(repo, validation.New(dates.NewWithClock(now)))
	return NewView(nil, accounts)
}

// typeString feeds a string into the focused input rune by rune.
func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestView_SubmitValidCredentials(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "juan.estudiante@gmail.com")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v = typeString(v, "123456")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.LoginCompleted)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "Juan Pérez Estudiante", msg.User.Name)
}

func TestView_SubmitUnknownUser(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "nadie@gmail.com")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v = typeString(v, "123456")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.LoginCompleted)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, domain.ErrUserNotFound)

	v, _ = v.Update(msg)
	assert.Equal(t, "Usuario no encontrado", v.ErrMsg())
}

func TestView_WrongPasswordMessage(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(messages.LoginCompleted{Err: domain.ErrWrongPassword})

	assert.Equal(t, "Contraseña incorrecta", v.ErrMsg())
}

func TestView_ResetClearsForm(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "algo@gmail.com")
	v, _ = v.Update(messages.LoginCompleted{Err: domain.ErrUserNotFound})
	v.Reset()

	assert.Empty(t, v.ErrMsg())
	out := v.View()
	assert.NotContains(t, out, "algo@gmail.com")
}

func TestView_EscReturnsToWelcome(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewWelcome, msg.View)
}
