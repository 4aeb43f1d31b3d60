package staff

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
		services.NewAccountService(repo, validate),
		dateService,
	)
	v.SetUser(domain.SeedStaff)
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
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestView_StartsOnManage(t *testing.T) {
	v := newTestView(t)

	assert.Equal(t, TabManage, v.CurrentTab())
}

func TestView_ManageShowsOpenAppointments(t *testing.T) {
	v := newTestView(t)

	out := v.View()

	// The demo data has one pending and one confirmed appointment open.
	assert.Contains(t, out, "Juan Pérez Estudiante")
	assert.Contains(t, out, "Psicología")
	assert.NotContains(t, out, "Exámenes de Sangre")
}

func TestView_HistoryShowsClosed(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(key("tab"))
	require.Equal(t, TabHistory, v.CurrentTab())

	out := v.View()

	assert.Contains(t, out, "Exámenes de Sangre")
	assert.NotContains(t, out, "Psicología")
}

func TestView_ConfirmPending(t *testing.T) {
	v := newTestView(t)

	// The open list is sorted by date; the pending visit tomorrow comes
	// before the confirmed one three days out.
	_, cmd := v.Update(key("c"))

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.StatusChanged)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, domain.StatusConfirmed, msg.Appointment.Status)

	v, _ = v.Update(msg)
	assert.Contains(t, v.View(), "Confirmada")
}

func TestView_ConfirmAlreadyConfirmedRejected(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(key("j"))
	v, _ = v.Update(key("c"))

	assert.Contains(t, v.ErrMsg(), "no puede pasar a")
}

func TestView_CompletePendingRejected(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(key("d"))

	assert.Contains(t, v.ErrMsg(), "no puede pasar a")
}

func TestView_CancelPending(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(key("x"))

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.StatusChanged)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, domain.StatusCancelled, msg.Appointment.Status)
}

func TestView_EscClosesSession(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(key("esc"))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.SessionClosed{}, cmd())
}

func TestView_StatusChangedError(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(messages.StatusChanged{Err: domain.ErrNotFound})

	assert.NotEmpty(t, v.ErrMsg())
}
