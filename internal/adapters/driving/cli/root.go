// Package cli implements the cobra command surface: account flows,
// appointment lifecycle, directory management and the TUI launcher.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driven"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands operate on, injected by the composition root.
var (
	accountService     driving.AccountService
	appointmentService driving.AppointmentService
	directoryService   driving.DirectoryService
	maintenanceService driving.MaintenanceService
	dateService        *dates.Service
	imageLoader        driven.ImageLoader
	daysAhead          int
)

// Services bundles everything the commands need.
type Services struct {
	Accounts     driving.AccountService
	Appointments driving.AppointmentService
	Directory    driving.DirectoryService
	Maintenance  driving.MaintenanceService
	Dates        *dates.Service
	Images       driven.ImageLoader

	// DaysAhead overrides how many dates the pickers offer.
	// Non-positive uses the default.
	DaysAhead int
}

// SetServices injects the application services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	accountService = s.Accounts
	appointmentService = s.Appointments
	directoryService = s.Directory
	maintenanceService = s.Maintenance
	dateService = s.Dates
	imageLoader = s.Images
	daysAhead = s.DaysAhead
}

// bootstrap wires the services once persistent flags are parsed. The
// composition root installs it; tests inject services directly instead.
var bootstrap func(dataDir string, verbose bool) (*Services, error)

// SetBootstrap installs the service initialiser run before any command.
func SetBootstrap(fn func(dataDir string, verbose bool) (*Services, error)) {
	bootstrap = fn
}

var (
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bienestar",
	Short: "University wellness appointment booking",
	Long: `Bienestar Universitario: book and manage wellness appointments from
the terminal.

Students register, log in and request medical, psychology or lab
appointments; wellness staff confirm, cancel or complete them. All data
lives in a local database, no server involved.

Run 'bienestar tui' for the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if accountService != nil || bootstrap == nil {
			return nil
		}
		services, err := bootstrap(flagDataDir, flagVerbose)
		if err != nil {
			return err
		}
		SetServices(services)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for the database (default ~/.bienestar/data)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log every operation to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// errNotConfigured is returned when a command runs without injection.
var errNotConfigured = errors.New("services not configured")
