package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface, the full experience of
the original application: welcome screen, login, registration and the
student and staff panels.

Controls:
  ↑/k, ↓/j - Navigate
  Tab      - Next field
  Enter    - Select / Submit
  Esc      - Back
  q        - Quit (outside forms)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a crashed view leaves a stack trace, not a
	// broken terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Accounts:     accountService,
		Appointments: appointmentService,
		Directory:    directoryService,
		Maintenance:  maintenanceService,
		Dates:        dateService,
		Images:       imageLoader,
		DaysAhead:    daysAhead,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
