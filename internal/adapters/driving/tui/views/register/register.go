// Package register provides the registration form view.
package register

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/messages"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/styles"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
)

// Field indexes into the form inputs.
const (
	fieldID = iota
	fieldName
	fieldEmail
	fieldPhone
	fieldMajor
	fieldTerm
	fieldPassword
	fieldConfirm
	fieldCount
)

// View is the registration form. The role is toggled with left/right;
// student-only fields are skipped for staff accounts.
type View struct {
	styles   *styles.Styles
	accounts driving.AccountService

	inputs  []textinput.Model
	labels  []string
	role    domain.Role
	focus   int
	errMsg  string
	okMsg   string
	width   int
	height  int
}

// NewView creates a new registration view.
func NewView(s *styles.Styles, accounts driving.AccountService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	labels := []string{
		"Cédula (10 dígitos)",
		"Nombre completo",
		"Email (@gmail.com)",
		"Teléfono (10 dígitos)",
		"Carrera",
		"Semestre",
		"Contraseña (mínimo 6)",
		"Confirmar contraseña",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldID].CharLimit = 10
	inputs[fieldPhone].CharLimit = 10
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldConfirm].EchoMode = textinput.EchoPassword
	inputs[fieldConfirm].EchoCharacter = '•'
	inputs[fieldID].Focus()

	return &View{
		styles:   s,
		accounts: accounts,
		inputs:   inputs,
		labels:   labels,
		role:     domain.RoleStudent,
		width:    80,
		height:   24,
	}
}

// Init initialises the registration view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form.
func (v *View) Reset() {
	for i := range v.inputs {
		v.inputs[i].Reset()
		v.inputs[i].Blur()
	}
	v.role = domain.RoleStudent
	v.focus = fieldID
	v.errMsg = ""
	v.okMsg = ""
	v.inputs[fieldID].Focus()
}

// skipped reports whether a field does not apply to the current role.
func (v *View) skipped(field int) bool {
	if v.role == domain.RoleStaff {
		return field == fieldMajor || field == fieldTerm
	}
	return false
}

// moveFocus advances focus by delta, skipping inapplicable fields.
func (v *View) moveFocus(delta int) tea.Cmd {
	v.inputs[v.focus].Blur()
	for {
		v.focus = (v.focus + delta + fieldCount) % fieldCount
		if !v.skipped(v.focus) {
			break
		}
	}
	return v.inputs[v.focus].Focus()
}

// Update handles messages for the registration view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.RegistrationCompleted:
		if msg.Err != nil {
			v.errMsg = registrationErrorText(msg.Err)
			v.okMsg = ""
			return v, nil
		}
		v.errMsg = ""
		v.okMsg = "Cuenta creada. Vuelva e inicie sesión."
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewWelcome}
			}

		case "tab", "down":
			return v, v.moveFocus(1)

		case "shift+tab", "up":
			return v, v.moveFocus(-1)

		case "left", "right":
			if v.role == domain.RoleStudent {
				v.role = domain.RoleStaff
			} else {
				v.role = domain.RoleStudent
			}
			if v.skipped(v.focus) {
				return v, v.moveFocus(1)
			}
			return v, nil

		case "enter":
			if v.focus == fieldConfirm {
				return v, v.submit()
			}
			return v, v.moveFocus(1)
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

// submit runs the registration against the account service.
func (v *View) submit() tea.Cmd {
	form := domain.RegistrationForm{
		ID:              strings.TrimSpace(v.inputs[fieldID].Value()),
		Name:            strings.TrimSpace(v.inputs[fieldName].Value()),
		Email:           strings.TrimSpace(v.inputs[fieldEmail].Value()),
		Phone:           strings.TrimSpace(v.inputs[fieldPhone].Value()),
		Major:           strings.TrimSpace(v.inputs[fieldMajor].Value()),
		Term:            strings.TrimSpace(v.inputs[fieldTerm].Value()),
		Password:        v.inputs[fieldPassword].Value(),
		ConfirmPassword: v.inputs[fieldConfirm].Value(),
		Role:            string(v.role),
	}
	return func() tea.Msg {
		user, err := v.accounts.Register(form)
		return messages.RegistrationCompleted{User: user, Err: err}
	}
}

// registrationErrorText maps failures to user-facing Spanish text.
func registrationErrorText(err error) string {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	return err.Error()
}

// View renders the registration form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Registro"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Tipo de cuenta: "))
	if v.role == domain.RoleStudent {
		b.WriteString(v.styles.Selected.Render(" Estudiante "))
		b.WriteString(v.styles.Muted.Render("  Funcionario "))
	} else {
		b.WriteString(v.styles.Muted.Render(" Estudiante  "))
		b.WriteString(v.styles.Selected.Render(" Funcionario "))
	}
	b.WriteString(v.styles.Help.Render("  (←/→ cambia)"))
	b.WriteString("\n\n")

	for i := range v.inputs {
		if v.skipped(i) {
			continue
		}
		label := v.styles.Muted.Render(v.labels[i])
		if i == v.focus {
			label = v.styles.Subtitle.Render(v.labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}
	if v.okMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.okMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] siguiente  [enter] enviar  [esc] volver"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Role returns the selected role (for testing).
func (v *View) Role() domain.Role {
	return v.role
}

// ErrMsg returns the current error message (for testing).
func (v *View) ErrMsg() string {
	return v.errMsg
}
