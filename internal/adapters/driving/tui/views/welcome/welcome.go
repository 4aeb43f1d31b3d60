// Package welcome provides the landing view with the service statistics.
package welcome

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/messages"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui/styles"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View is the welcome screen: title, statistics and the entry menu.
type View struct {
	styles      *styles.Styles
	maintenance driving.MaintenanceService
	stats       domain.Stats
	items       []Item
	selected    int
	width       int
	height      int
	ready       bool
}

// NewView creates a new welcome view.
func NewView(s *styles.Styles, maintenance driving.MaintenanceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:      s,
		maintenance: maintenance,
		items: []Item{
			{Label: "Iniciar Sesión", View: messages.ViewLogin},
			{Label: "Registrarse", View: messages.ViewRegister},
			{Label: "Salir", Quit: true},
		},
		width:  80,
		height: 24,
	}
	if maintenance != nil {
		v.stats = maintenance.Stats()
	}
	return v
}

// Init initialises the welcome view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the welcome view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the welcome screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Bienestar Universitario"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sistema de citas de bienestar estudiantil"))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("%d+ estudiantes atendidos", v.stats.TotalStudents),
		fmt.Sprintf("Disponibilidad %s", v.stats.Availability),
		fmt.Sprintf("%s de satisfacción", v.stats.Satisfaction),
		fmt.Sprintf("%d+ citas completadas", v.stats.CompletedVisits),
	}
	for _, line := range stats {
		b.WriteString("  ")
		b.WriteString(v.styles.Subtitle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("Cuentas demo (contraseña 123456): juan.estudiante@gmail.com · nohegarcia@gmail.com"))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] navegar  [enter] seleccionar  [q] salir"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
