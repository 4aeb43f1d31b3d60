package register

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

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func enter(v *View) (*View, tea.Cmd) {
	return v.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestView_DefaultsToStudent(t *testing.T) {
	v := newTestView(t)

	assert.Equal(t, domain.RoleStudent, v.Role())
}

func TestView_RoleToggle(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.RoleStaff, v.Role())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.RoleStudent, v.Role())
}

func TestView_StaffHidesStudentFields(t *testing.T) {
	v := newTestView(t)
	v.SetDimensions(80, 24)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	out := v.View()

	assert.NotContains(t, out, "Carrera")
	assert.NotContains(t, out, "Semestre")
}

func TestView_SubmitStudent(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "1717171717")
	v, _ = enter(v)
	v = typeString(v, "Laura Mendoza")
	v, _ = enter(v)
	v = typeString(v, "laura.mendoza@gmail.com")
	v, _ = enter(v)
	v = typeString(v, "3125550101")
	v, _ = enter(v)
	v = typeString(v, "Psicología")
	v, _ = enter(v)
	v = typeString(v, "4")
	v, _ = enter(v)
	v = typeString(v, "claveok")
	v, _ = enter(v)
	v = typeString(v, "claveok")
	_, cmd := enter(v)

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.RegistrationCompleted)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "1717171717", msg.User.ID)
	assert.Equal(t, domain.RoleStudent, msg.User.Role)

	v, _ = v.Update(msg)
	assert.Contains(t, v.View(), "Cuenta creada. Vuelva e inicie sesión.")
}

func TestView_SubmitDuplicateEmail(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "1717171717")
	v, _ = enter(v)
	v = typeString(v, "Laura Mendoza")
	v, _ = enter(v)
	v = typeString(v, "juan.estudiante@gmail.com")
	v, _ = enter(v)
	v = typeString(v, "3125550101")
	v, _ = enter(v)
	v = typeString(v, "Psicología")
	v, _ = enter(v)
	v = typeString(v, "4")
	v, _ = enter(v)
	v = typeString(v, "claveok")
	v, _ = enter(v)
	v = typeString(v, "claveok")
	_, cmd := enter(v)

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.RegistrationCompleted)
	require.True(t, ok)
	require.Error(t, msg.Err)

	v, _ = v.Update(msg)
	assert.NotEmpty(t, v.ErrMsg())
}

func TestView_ResetClearsForm(t *testing.T) {
	v := newTestView(t)

	v = typeString(v, "1717171717")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	v.Reset()

	assert.Equal(t, domain.RoleStudent, v.Role())
	assert.Empty(t, v.ErrMsg())
}
