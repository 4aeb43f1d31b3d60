// Package staff provides the staff panel: appointment management,
// history and profile.
package staff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/keymap"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/messages"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/styles"
	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
)

// Tab selects the active panel section.
type Tab int

const (
	// TabManage lists open appointments with the gated actions.
	TabManage Tab = iota
	// TabHistory lists terminal appointments.
	TabHistory
	// TabProfile shows and edits the profile.
	TabProfile
)

var tabLabels = []string{"Gestionar Citas", "Historial", "Perfil"}

// View is the staff panel.
type View struct {
	styles       *styles.Styles
	appointments driving.AppointmentService
	accounts     driving.AccountService
	dateService  *dates.Service

	user domain.User
	tab  Tab

	records  []domain.Appointment
	selected int

	profileInputs []textinput.Model
	profileFocus  int
	profileSaved  bool

	errMsg string
	okMsg  string
	width  int
	height int
}

var profileLabels = []string{"Nombre", "Email", "Teléfono"}

// NewView creates a new staff panel view.
func NewView(s *styles.Styles, appointments driving.AppointmentService, accounts driving.AccountService, dateService *dates.Service) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	inputs := make([]textinput.Model, len(profileLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}

	return &View{
		styles:        s,
		appointments:  appointments,
		accounts:      accounts,
		dateService:   dateService,
		profileInputs: inputs,
		width:         80,
		height:        24,
	}
}

// SetUser installs the logged-in staff member and reloads panel state.
func (v *View) SetUser(user domain.User) {
	v.user = user
	v.tab = TabManage
	v.selected = 0
	v.errMsg = ""
	v.okMsg = ""
	v.loadProfile()
	v.Refresh()
}

func (v *View) loadProfile() {
	values := []string{v.user.Name, v.user.Email, v.user.Phone}
	for i := range v.profileInputs {
		v.profileInputs[i].SetValue(values[i])
		v.profileInputs[i].Blur()
	}
	v.profileFocus = 0
	v.profileSaved = false
}

// Refresh reloads every appointment, sorted.
func (v *View) Refresh() {
	v.records = dates.SortAppointments(v.appointments.All())
}

// open returns the non-terminal appointments, the manage tab's slice.
func (v *View) open() []domain.Appointment {
	open := make([]domain.Appointment, 0, len(v.records))
	for _, a := range v.records {
		if !a.Status.IsTerminal() {
			open = append(open, a)
		}
	}
	return open
}

// closed returns the terminal appointments, the history tab's slice.
func (v *View) closed() []domain.Appointment {
	closed := make([]domain.Appointment, 0, len(v.records))
	for _, a := range v.records {
		if a.Status.IsTerminal() {
			closed = append(closed, a)
		}
	}
	return closed
}

// Init initialises the staff view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the staff panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.StatusChanged:
		if msg.Err != nil {
			v.errMsg = userErrorText(msg.Err)
			return v, nil
		}
		v.errMsg = ""
		v.okMsg = fmt.Sprintf("Cita %s: %s", msg.Appointment.ID, msg.Appointment.Status.Label())
		v.Refresh()
		return v, nil

	case messages.ProfileSaved:
		if msg.Err != nil {
			v.errMsg = userErrorText(msg.Err)
			return v, nil
		}
		v.errMsg = ""
		v.user = *msg.User
		v.profileSaved = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if key == "tab" {
		v.tab = (v.tab + 1) % Tab(len(tabLabels))
		v.selected = 0
		v.errMsg = ""
		v.okMsg = ""
		if v.tab != TabProfile {
			v.Refresh()
		}
		return v, nil
	}
	if key == "esc" {
		return v, func() tea.Msg { return messages.SessionClosed{} }
	}
	if v.tab != TabProfile && (key == "q" || key == "ctrl+c") {
		return v, tea.Quit
	}

	switch v.tab {
	case TabManage:
		return v.handleManageKey(key)
	case TabHistory:
		return v.handleListNav(key, len(v.closed()))
	case TabProfile:
		return v.handleProfileKey(msg)
	}
	return v, nil
}

func (v *View) handleListNav(key string, count int) (*View, tea.Cmd) {
	switch key {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < count-1 {
			v.selected++
		}
	}
	return v, nil
}

func (v *View) handleManageKey(key string) (*View, tea.Cmd) {
	open := v.open()
	keys := keymap.DefaultKeyMap()

	switch {
	case keymap.Matches(key, keys.Up), keymap.Matches(key, keys.Down):
		return v.handleListNav(key, len(open))
	case keymap.Matches(key, keys.Confirm):
		return v, v.changeStatus(open, domain.StatusConfirmed)
	case keymap.Matches(key, keys.Cancel):
		return v, v.changeStatus(open, domain.StatusCancelled)
	case keymap.Matches(key, keys.Complete):
		return v, v.changeStatus(open, domain.StatusCompleted)
	}
	return v, nil
}

// changeStatus requests a transition for the selected appointment. The
// action is offered only when the state machine defines it.
func (v *View) changeStatus(open []domain.Appointment, next domain.Status) tea.Cmd {
	if v.selected >= len(open) {
		return nil
	}
	appt := open[v.selected]
	if !appt.Status.CanTransition(next) {
		v.errMsg = fmt.Sprintf("La cita está %s y no puede pasar a %s", appt.Status.Label(), next.Label())
		return nil
	}
	id := appt.ID
	return func() tea.Msg {
		updated, err := v.appointments.ChangeStatus(id, next)
		return messages.StatusChanged{Appointment: updated, Err: err}
	}
}

func (v *View) handleProfileKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		v.profileInputs[v.profileFocus].Blur()
		v.profileFocus = (v.profileFocus - 1 + len(v.profileInputs)) % len(v.profileInputs)
		return v, v.profileInputs[v.profileFocus].Focus()
	case "down":
		v.profileInputs[v.profileFocus].Blur()
		v.profileFocus = (v.profileFocus + 1) % len(v.profileInputs)
		return v, v.profileInputs[v.profileFocus].Focus()
	case "enter":
		return v, v.submitProfile()
	}

	var cmd tea.Cmd
	v.profileInputs[v.profileFocus], cmd = v.profileInputs[v.profileFocus].Update(msg)
	return v, cmd
}

func (v *View) submitProfile() tea.Cmd {
	patch := domain.ProfilePatch{
		Name:  strings.TrimSpace(v.profileInputs[0].Value()),
		Email: strings.TrimSpace(v.profileInputs[1].Value()),
		Phone: strings.TrimSpace(v.profileInputs[2].Value()),
		Major: v.user.Major,
		Term:  v.user.Term,
	}
	return func() tea.Msg {
		user, err := v.accounts.UpdateProfile(patch)
		return messages.ProfileSaved{User: user, Err: err}
	}
}

func userErrorText(err error) string {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	return err.Error()
}

// View renders the staff panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Bienestar Universitario · Funcionario"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.user.Name))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	switch v.tab {
	case TabManage:
		b.WriteString(v.viewManage())
	case TabHistory:
		b.WriteString(v.viewHistory())
	case TabProfile:
		b.WriteString(v.viewProfile())
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
	}
	if v.okMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.okMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] cambiar pestaña  [esc] cerrar sesión"))
	return b.String()
}

func (v *View) renderTabs() string {
	parts := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if Tab(i) == v.tab {
			parts[i] = v.styles.Selected.Render(" " + label + " ")
		} else {
			parts[i] = v.styles.Muted.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) viewManage() string {
	open := v.open()
	if v.selected >= len(open) {
		v.selected = 0
	}

	pending, confirmed := 0, 0
	for _, a := range open {
		switch a.Status {
		case domain.StatusPending:
			pending++
		case domain.StatusConfirmed:
			confirmed++
		}
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Pendientes: %d   Confirmadas: %d", pending, confirmed)))
	b.WriteString("\n\n")

	if len(open) == 0 {
		b.WriteString(v.styles.Muted.Render("No hay citas abiertas."))
		return b.String()
	}

	for i, a := range open {
		b.WriteString(v.renderAppointment(a, i == v.selected))
		if i == v.selected {
			b.WriteString(v.styles.Help.Render("    " + v.actionHints(a.Status) + "\n"))
		}
	}
	return b.String()
}

// actionHints lists the actions the state machine defines for a status.
func (v *View) actionHints(status domain.Status) string {
	var hints []string
	for _, next := range status.NextStatuses() {
		switch next {
		case domain.StatusConfirmed:
			hints = append(hints, "[c] confirmar")
		case domain.StatusCancelled:
			hints = append(hints, "[x] cancelar")
		case domain.StatusCompleted:
			hints = append(hints, "[d] completar")
		}
	}
	return strings.Join(hints, "  ")
}

func (v *View) viewHistory() string {
	closed := v.closed()
	if v.selected >= len(closed) {
		v.selected = 0
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Citas finalizadas"))
	b.WriteString("\n\n")

	if len(closed) == 0 {
		b.WriteString(v.styles.Muted.Render("No hay citas finalizadas."))
		return b.String()
	}
	for i, a := range closed {
		b.WriteString(v.renderAppointment(a, i == v.selected))
	}
	return b.String()
}

func (v *View) renderAppointment(a domain.Appointment, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	line1 := fmt.Sprintf("%s%s  %s %s  %s\n", cursor, v.styles.StatusBadge(a.Status),
		dates.FormatDate(a.Date), dates.FormatTime(a.Time), a.Kind.Label())
	line2 := fmt.Sprintf("    %s · %s · %s\n", a.StudentName, a.Doctor, v.dateService.TimeUntil(a.Date, a.Time))
	out := line1 + v.styles.Muted.Render(line2)
	if a.Notes != "" {
		out += v.styles.Muted.Render(fmt.Sprintf("    %s\n", a.Notes))
	}
	return out
}

func (v *View) viewProfile() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Mi Perfil"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Cédula: %s (no editable)", v.user.ID)))
	b.WriteString("\n\n")

	for i, label := range profileLabels {
		rendered := v.styles.Muted.Render(label)
		if i == v.profileFocus {
			rendered = v.styles.Subtitle.Render(label)
		}
		b.WriteString(rendered)
		b.WriteString("\n")
		b.WriteString(v.profileInputs[i].View())
		b.WriteString("\n")
	}

	if v.profileSaved {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render("Perfil actualizado"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] campo  [enter] guardar"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// CurrentTab returns the active tab (for testing).
func (v *View) CurrentTab() Tab {
	return v.tab
}

// ErrMsg returns the current error message (for testing).
func (v *View) ErrMsg() string {
	return v.errMsg
}
