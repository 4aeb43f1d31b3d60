package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/messages"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/styles"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/views/login"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/views/register"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/views/staff"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/views/student"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/views/welcome"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// welcomeView is the landing screen.
	welcomeView *welcome.View

	// loginView is the login form.
	loginView *login.View

	// registerView is the registration form.
	registerView *register.View

	// studentView is the student panel.
	studentView *student.View

	// staffView is the staff panel.
	staffView *staff.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// user is the logged-in user, nil outside a session.
	user *domain.User

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. A session
// persisted from an earlier run reopens directly on the matching panel.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:        ports,
		styles:       s,
		welcomeView:  welcome.NewView(s, ports.Maintenance),
		loginView:    login.NewView(s, ports.Accounts),
		registerView: register.NewView(s, ports.Accounts),
		studentView:  student.NewView(s, ports.Appointments, ports.Directory, ports.Accounts, ports.Dates),
		staffView:    staff.NewView(s, ports.Appointments, ports.Accounts, ports.Dates),
		currentView:  messages.ViewWelcome,
	}
	a.studentView.SetDaysAhead(ports.DaysAhead)

	if user := ports.Accounts.CurrentUser(); user != nil {
		a.openSession(*user)
	}
	return a, nil
}

// openSession routes a logged-in user to the panel for their role.
func (a *App) openSession(user domain.User) {
	a.user = &user
	if user.Role == domain.RoleStaff {
		a.staffView.SetUser(user)
		a.currentView = messages.ViewStaff
		return
	}
	a.studentView.SetUser(user)
	a.currentView = messages.ViewStudent
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Bienestar Universitario"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.welcomeView.SetDimensions(msg.Width, msg.Height)
		a.loginView.SetDimensions(msg.Width, msg.Height)
		a.registerView.SetDimensions(msg.Width, msg.Height)
		a.studentView.SetDimensions(msg.Width, msg.Height)
		a.staffView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewLogin:
			a.loginView.Reset()
			return a, a.loginView.Init()
		case messages.ViewRegister:
			a.registerView.Reset()
			return a, a.registerView.Init()
		case messages.ViewWelcome, messages.ViewStudent, messages.ViewStaff:
			// No form state to reset
		}
		return a, nil

	case messages.LoginCompleted:
		if msg.Err != nil {
			a.err = msg.Err
			a.loginView, cmd = a.loginView.Update(msg)
			return a, cmd
		}
		a.err = nil
		a.openSession(*msg.User)
		return a, nil

	case messages.SessionClosed:
		// Closing the panel logs the user out.
		if err := a.ports.Accounts.Logout(); err != nil {
			a.err = err
		}
		a.user = nil
		a.currentView = messages.ViewWelcome
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewWelcome:
		a.welcomeView, cmd = a.welcomeView.Update(msg)
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewRegister:
		a.registerView, cmd = a.registerView.Update(msg)
	case messages.ViewStudent:
		a.studentView, cmd = a.studentView.Update(msg)
	case messages.ViewStaff:
		a.staffView, cmd = a.staffView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Iniciando..."
	}

	switch a.currentView {
	case messages.ViewWelcome:
		return a.welcomeView.View()
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewRegister:
		return a.registerView.View()
	case messages.ViewStudent:
		return a.studentView.View()
	case messages.ViewStaff:
		return a.staffView.View()
	default:
		return a.welcomeView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// User returns the logged-in user, or nil.
func (a *App) User() *domain.User {
	return a.user
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
