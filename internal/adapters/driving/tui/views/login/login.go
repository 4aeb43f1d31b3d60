// Package login provides the login form view.
package login

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

// View is the login form: email and password inputs.
type View struct {
	styles   *styles.Styles
	accounts driving.AccountService

	email    textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
	width    int
	height   int
}

// NewView creates a new login view.
func NewView(s *styles.Styles, accounts driving.AccountService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	email := textinput.New()
	email.Placeholder = "correo@gmail.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &View{
		styles:   s,
		accounts: accounts,
		email:    email,
		password: password,
		width:    80,
		height:   24,
	}
}

// Init initialises the login view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form and the error message.
func (v *View) Reset() {
	v.email.Reset()
	v.password.Reset()
	v.errMsg = ""
	v.focus = 0
	v.email.Focus()
	v.password.Blur()
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.LoginCompleted:
		if msg.Err != nil {
			v.errMsg = loginErrorText(msg.Err)
			return v, nil
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewWelcome}
			}

		case "tab", "shift+tab", "up", "down":
			v.focus = (v.focus + 1) % 2
			if v.focus == 0 {
				v.password.Blur()
				return v, v.email.Focus()
			}
			v.email.Blur()
			return v, v.password.Focus()

		case "enter":
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

// submit runs the login against the account service.
func (v *View) submit() tea.Cmd {
	form := domain.LoginForm{
		Email:    strings.TrimSpace(v.email.Value()),
		Password: v.password.Value(),
	}
	return func() tea.Msg {
		user, err := v.accounts.Login(form)
		return messages.LoginCompleted{User: user, Err: err}
	}
}

// loginErrorText maps login failures to the user-facing Spanish text.
func loginErrorText(err error) string {
	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Message
	case errors.Is(err, domain.ErrUserNotFound):
		return "Usuario no encontrado"
	case errors.Is(err, domain.ErrWrongPassword):
		return "Contraseña incorrecta"
	default:
		return err.Error()
	}
}

// View renders the login form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Iniciar Sesión"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Email"))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.email.View()))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Contraseña"))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.password.View()))
	b.WriteString("\n")

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] cambiar campo  [enter] entrar  [esc] volver"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// ErrMsg returns the current error message (for testing).
func (v *View) ErrMsg() string {
	return v.errMsg
}
