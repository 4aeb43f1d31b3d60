package tui

import "errors"

// ErrMissingAccountService is returned when the account service is not provided.
var ErrMissingAccountService = errors.New("tui: account service is required")

// ErrMissingAppointmentService is returned when the appointment service is not provided.
var ErrMissingAppointmentService = errors.New("tui: appointment service is required")

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("tui: directory service is required")

// ErrMissingMaintenanceService is returned when the maintenance service is not provided.
var ErrMissingMaintenanceService = errors.New("tui: maintenance service is required")

// ErrMissingDateService is returned when the date service is not provided.
var ErrMissingDateService = errors.New("tui: date service is required")
