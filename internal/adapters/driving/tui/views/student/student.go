// Package student provides the student panel: dashboard, appointment
// request wizard, history and profile.
package student

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
	// TabDashboard shows the upcoming appointments.
	TabDashboard Tab = iota
	// TabRequest is the appointment request wizard.
	TabRequest
	// TabHistory lists every appointment with a period filter.
	TabHistory
	// TabProfile shows and edits the profile.
	TabProfile
)

var tabLabels = []string{"Panel", "Solicitar Cita", "Historial", "Perfil"}

// Request wizard steps.
const (
	stepKind = iota
	stepDate
	stepTime
	stepNotes
)

// periods cycled by the history filter.
var periods = []dates.Period{
	dates.PeriodAll, dates.PeriodToday, dates.PeriodWeek,
	dates.PeriodFuture, dates.PeriodPast,
}

// View is the student panel.
type View struct {
	styles       *styles.Styles
	appointments driving.AppointmentService
	directory    driving.DirectoryService
	accounts     driving.AccountService
	dateService  *dates.Service

	user domain.User
	tab  Tab

	// Dashboard and history state.
	records    []domain.Appointment
	periodIdx  int
	historyIdx int

	// Request wizard state.
	daysAhead int
	step      int
	kindIdx   int
	dateIdx   int
	timeIdx   int
	dateOpts  []dates.DateOption
	timeSlots []dates.TimeSlot
	notes     textinput.Model
	requested *domain.Appointment

	// Profile form state.
	profileInputs []textinput.Model
	profileFocus  int
	profileSaved  bool

	errMsg string
	width  int
	height int
}

// profile form field order: name, email, phone, major, term.
var profileLabels = []string{"Nombre", "Email", "Teléfono", "Carrera", "Semestre"}

// NewView creates a new student panel view.
func NewView(s *styles.Styles, appointments driving.AppointmentService, directory driving.DirectoryService, accounts driving.AccountService, dateService *dates.Service) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	notes := textinput.New()
	notes.Placeholder = "Observaciones (opcional)"
	notes.CharLimit = 256
	notes.Width = 50

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
		directory:     directory,
		accounts:      accounts,
		dateService:   dateService,
		notes:         notes,
		profileInputs: inputs,
		timeSlots:     dates.TimeSlots(),
		width:         80,
		height:        24,
	}
}

// SetDaysAhead overrides how many dates the request picker offers.
func (v *View) SetDaysAhead(n int) {
	v.daysAhead = n
}

// SetUser installs the logged-in student and reloads panel state.
func (v *View) SetUser(user domain.User) {
	v.user = user
	v.tab = TabDashboard
	v.errMsg = ""
	v.requested = nil
	v.step = stepKind
	v.kindIdx, v.dateIdx, v.timeIdx = 0, 0, 0
	v.notes.Reset()
	v.dateOpts = v.dateService.AvailableDates(v.daysAhead)
	v.loadProfile()
	v.Refresh()
}

// loadProfile fills the profile inputs from the current user.
func (v *View) loadProfile() {
	values := []string{v.user.Name, v.user.Email, v.user.Phone, v.user.Major, v.user.Term}
	for i := range v.profileInputs {
		v.profileInputs[i].SetValue(values[i])
		v.profileInputs[i].Blur()
	}
	v.profileFocus = 0
	v.profileSaved = false
}

// Refresh reloads the student's appointments, sorted.
func (v *View) Refresh() {
	v.records = dates.SortAppointments(v.appointments.ForStudent(v.user.ID))
}

// Init initialises the student view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the student panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.AppointmentCreated:
		if msg.Err != nil {
			v.errMsg = userErrorText(msg.Err)
			return v, nil
		}
		v.errMsg = ""
		v.requested = msg.Appointment
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

	// Tab switching and logout work from every section except while
	// typing notes or profile fields; those capture printable keys.
	typing := (v.tab == TabRequest && v.step == stepNotes) || v.tab == TabProfile

	if key == "tab" {
		v.tab = (v.tab + 1) % Tab(len(tabLabels))
		v.errMsg = ""
		if v.tab == TabRequest {
			v.step = stepKind
			v.requested = nil
		}
		if v.tab == TabDashboard || v.tab == TabHistory {
			v.Refresh()
		}
		return v, nil
	}
	if key == "esc" {
		return v, func() tea.Msg { return messages.SessionClosed{} }
	}
	if !typing && (key == "q" || key == "ctrl+c") {
		return v, tea.Quit
	}

	switch v.tab {
	case TabDashboard:
		return v, nil
	case TabRequest:
		return v.handleRequestKey(msg)
	case TabHistory:
		return v.handleHistoryKey(key)
	case TabProfile:
		return v.handleProfileKey(msg)
	}
	return v, nil
}

func (v *View) handleHistoryKey(key string) (*View, tea.Cmd) {
	keys := keymap.DefaultKeyMap()
	switch {
	case keymap.Matches(key, keys.Filter):
		v.periodIdx = (v.periodIdx + 1) % len(periods)
	case keymap.Matches(key, keys.Up):
		if v.historyIdx > 0 {
			v.historyIdx--
		}
	case keymap.Matches(key, keys.Down):
		if v.historyIdx < len(v.filteredHistory())-1 {
			v.historyIdx++
		}
	}
	return v, nil
}

func (v *View) filteredHistory() []domain.Appointment {
	return v.dateService.FilterByPeriod(v.records, periods[v.periodIdx])
}

//nolint:gocognit // wizard step handling is a flat key dispatch
func (v *View) handleRequestKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.step == stepNotes {
		switch key {
		case "enter":
			return v, v.submitRequest()
		default:
			var cmd tea.Cmd
			v.notes, cmd = v.notes.Update(msg)
			return v, cmd
		}
	}

	options := 0
	idx := &v.kindIdx
	switch v.step {
	case stepKind:
		options = len(domain.Kinds())
		idx = &v.kindIdx
	case stepDate:
		options = len(v.dateOpts)
		idx = &v.dateIdx
	case stepTime:
		options = len(v.timeSlots)
		idx = &v.timeIdx
	}

	switch key {
	case "up", "k":
		if *idx > 0 {
			*idx--
		}
	case "down", "j":
		if *idx < options-1 {
			*idx++
		}
	case "enter":
		v.step++
		if v.step == stepNotes {
			return v, v.notes.Focus()
		}
	case "backspace":
		if v.step > stepKind {
			v.step--
		}
	}
	return v, nil
}

// submitRequest runs the appointment request against the service.
func (v *View) submitRequest() tea.Cmd {
	form := domain.AppointmentForm{
		Kind:  string(domain.Kinds()[v.kindIdx]),
		Date:  v.dateOpts[v.dateIdx].Value,
		Time:  v.timeSlots[v.timeIdx].Value,
		Notes: strings.TrimSpace(v.notes.Value()),
	}
	user := v.user
	return func() tea.Msg {
		appt, err := v.appointments.Request(user, form)
		return messages.AppointmentCreated{Appointment: appt, Err: err}
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

// submitProfile runs the profile update against the account service.
func (v *View) submitProfile() tea.Cmd {
	patch := domain.ProfilePatch{
		Name:  strings.TrimSpace(v.profileInputs[0].Value()),
		Email: strings.TrimSpace(v.profileInputs[1].Value()),
		Phone: strings.TrimSpace(v.profileInputs[2].Value()),
		Major: strings.TrimSpace(v.profileInputs[3].Value()),
		Term:  strings.TrimSpace(v.profileInputs[4].Value()),
	}
	return func() tea.Msg {
		user, err := v.accounts.UpdateProfile(patch)
		return messages.ProfileSaved{User: user, Err: err}
	}
}

// userErrorText maps service failures to user-facing Spanish text.
func userErrorText(err error) string {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	return err.Error()
}

// View renders the student panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Bienestar Universitario"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.user.Name))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	switch v.tab {
	case TabDashboard:
		b.WriteString(v.viewDashboard())
	case TabRequest:
		b.WriteString(v.viewRequest())
	case TabHistory:
		b.WriteString(v.viewHistory())
	case TabProfile:
		b.WriteString(v.viewProfile())
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
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

func (v *View) viewDashboard() string {
	upcoming := v.dateService.FilterByPeriod(v.records, dates.PeriodFuture)
	if len(upcoming) == 0 {
		return v.styles.Muted.Render("No tiene citas próximas. Use 'Solicitar Cita' para agendar una.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Próximas citas"))
	b.WriteString("\n\n")
	for _, a := range upcoming {
		b.WriteString(v.renderAppointment(a, false))
	}
	return b.String()
}

func (v *View) viewHistory() string {
	filtered := v.filteredHistory()
	if v.historyIdx >= len(filtered) {
		v.historyIdx = 0
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Historial: %s", periods[v.periodIdx])))
	b.WriteString(v.styles.Help.Render("  [f] cambiar filtro"))
	b.WriteString("\n\n")

	if len(filtered) == 0 {
		b.WriteString(v.styles.Muted.Render("No hay citas en este período."))
		return b.String()
	}
	for i, a := range filtered {
		b.WriteString(v.renderAppointment(a, i == v.historyIdx))
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
	line2 := fmt.Sprintf("    %s · %s\n", v.dateService.RelativeLabel(a.Date), a.Doctor)
	out := line1 + v.styles.Muted.Render(line2)
	if a.Notes != "" {
		out += v.styles.Muted.Render(fmt.Sprintf("    %s\n", a.Notes))
	}
	return out
}

//nolint:gocognit // one rendering branch per wizard step
func (v *View) viewRequest() string {
	var b strings.Builder

	if v.requested != nil {
		b.WriteString(v.styles.Success.Render("Cita solicitada"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s con %s\n", v.requested.Kind.Label(), v.requested.Doctor))
		b.WriteString(fmt.Sprintf("  %s\n", dates.FormatDateTime(v.requested.Date, v.requested.Time)))
		b.WriteString(v.styles.Muted.Render("  Estado: Pendiente de confirmación\n"))
		return b.String()
	}

	switch v.step {
	case stepKind:
		b.WriteString(v.styles.Subtitle.Render("Tipo de cita"))
		b.WriteString("\n\n")
		for i, k := range domain.Kinds() {
			line := fmt.Sprintf("%s (%s)", k.Label(), v.directory.DoctorFor(k))
			b.WriteString(v.renderOption(line, i == v.kindIdx))
		}
	case stepDate:
		b.WriteString(v.styles.Subtitle.Render("Fecha"))
		b.WriteString("\n\n")
		// Show a window of options around the cursor.
		start := v.dateIdx - 4
		if start < 0 {
			start = 0
		}
		end := start + 9
		if end > len(v.dateOpts) {
			end = len(v.dateOpts)
		}
		for i := start; i < end; i++ {
			b.WriteString(v.renderOption(v.dateOpts[i].Label, i == v.dateIdx))
		}
	case stepTime:
		b.WriteString(v.styles.Subtitle.Render("Horario"))
		b.WriteString("\n\n")
		for i, slot := range v.timeSlots {
			b.WriteString(v.renderOption(slot.Label, i == v.timeIdx))
		}
	case stepNotes:
		b.WriteString(v.styles.Subtitle.Render("Observaciones"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.InputField.Render(v.notes.View()))
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] solicitar cita"))
	}

	if v.step != stepNotes {
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[j/k] mover  [enter] continuar  [backspace] paso anterior"))
	}
	return b.String()
}

func (v *View) renderOption(label string, selected bool) string {
	if selected {
		return "> " + v.styles.Selected.Render(label) + "\n"
	}
	return "  " + v.styles.Normal.Render(label) + "\n"
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
