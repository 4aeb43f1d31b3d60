// Package tui provides the interactive terminal interface for bienestar.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driven"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
)

// Ports aggregates the services required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Accounts handles registration, login and profile flows.
	Accounts driving.AccountService

	// Appointments drives the appointment lifecycle.
	Appointments driving.AppointmentService

	// Directory resolves the doctor assigned to each specialty.
	Directory driving.DirectoryService

	// Maintenance exposes the welcome statistics and the demo reset.
	Maintenance driving.MaintenanceService

	// Dates formats, filters and sorts appointment dates.
	Dates *dates.Service

	// Images loads profile photos. Optional; the profile form hides the
	// photo field without it.
	Images driven.ImageLoader

	// DaysAhead overrides how many dates the request picker offers.
	// Non-positive uses the default.
	DaysAhead int
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Accounts == nil {
		return ErrMissingAccountService
	}
	if p.Appointments == nil {
		return ErrMissingAppointmentService
	}
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	if p.Maintenance == nil {
		return ErrMissingMaintenanceService
	}
	if p.Dates == nil {
		return ErrMissingDateService
	}
	return nil
}
