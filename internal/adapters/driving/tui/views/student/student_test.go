package student

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

	dateService := dates.NewWithClock(now)
	validate := validation.New(dateService)

	v := NewView(nil,
		services.NewAppointmentService(repo, validate),
		services.NewDirectoryService(repo),
		services.NewAccountService(repo, validate),
		dateService,
	)
	v.SetUser(domain.SeedStudent)
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestView_StartsOnDashboard(t *testing.T) {
	v := newTestView(t)

	assert.Equal(t, TabDashboard, v.CurrentTab())
	assert.Contains(t, v.View(), "Próximas citas")
}

func TestView_TabCycles(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(key("tab"))
	assert.Equal(t, TabRequest, v.CurrentTab())

	v, _ = v.Update(key("tab"))
	assert.Equal(t, TabHistory, v.CurrentTab())

	v, _ = v.Update(key("tab"))
	assert.Equal(t, TabProfile, v.CurrentTab())

	v, _ = v.Update(key("tab"))
	assert.Equal(t, TabDashboard, v.CurrentTab())
}

func TestView_EscClosesSession(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(key("esc"))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.SessionClosed{}, cmd())
}

func TestView_HistoryFilterCycles(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(key("tab"))
	v, _ = v.Update(key("tab"))
	require.Equal(t, TabHistory, v.CurrentTab())

	assert.Contains(t, v.View(), "Historial: todas")

	v, _ = v.Update(key("f"))
	assert.Contains(t, v.View(), "Historial: hoy")
}

func TestView_RequestWizardCreatesAppointment(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(key("tab"))
	require.Equal(t, TabRequest, v.CurrentTab())

	// Pick the second specialty, the first date and the first slot.
	v, _ = v.Update(key("j"))
	v, _ = v.Update(key("enter"))
	v, _ = v.Update(key("enter"))
	v, _ = v.Update(key("enter"))
	_, cmd := v.Update(key("enter"))

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.AppointmentCreated)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, domain.KindBloodTests, msg.Appointment.Kind)
	assert.Equal(t, domain.StatusPending, msg.Appointment.Status)

	v, _ = v.Update(msg)
	assert.Contains(t, v.View(), "Cita solicitada")
}

func TestView_RequestWizardBackspace(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(key("tab"))

	v, _ = v.Update(key("enter"))
	assert.Contains(t, v.View(), "Fecha")

	v, _ = v.Update(key("backspace"))
	assert.Contains(t, v.View(), "Tipo de cita")
}

func TestView_AppointmentError(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(messages.AppointmentCreated{
		Err: domain.NewFieldError("fecha", "Seleccione una fecha válida"),
	})

	assert.Equal(t, "Seleccione una fecha válida", v.ErrMsg())
}

func TestView_ProfileSaved(t *testing.T) {
	v := newTestView(t)
	updated := domain.SeedStudent
	updated.Phone = "3000000000"

	v, _ = v.Update(messages.ProfileSaved{User: &updated})

	assert.Empty(t, v.ErrMsg())
}

func TestView_DashboardShowsUpcoming(t *testing.T) {
	v := newTestView(t)

	out := v.View()

	// Seeded data has a confirmed visit three days out.
	assert.Contains(t, out, "Medicina General")
}
