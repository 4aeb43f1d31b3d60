package services

import (
	"github.com/google/uuid"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driving"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
	"github.com/uniwell-labs/bienestar-cli/internal/logger"
)

// Ensure the services implement their interfaces.
var (
	_ driving.AppointmentService = (*AppointmentService)(nil)
	_ driving.DirectoryService   = (*DirectoryService)(nil)
	_ driving.MaintenanceService = (*MaintenanceService)(nil)
)

// AppointmentService implements the appointment lifecycle over the
// repository.
type AppointmentService struct {
	repo     *Repository
	validate *validation.Service
	newID    func() string
}

// NewAppointmentService creates an appointment service.
func NewAppointmentService(repo *Repository, validate *validation.Service) *AppointmentService {
	return &AppointmentService{
		repo:     repo,
		validate: validate,
		newID:    newAppointmentID,
	}
}

// newAppointmentID mints a unique, time-ordered token.
func newAppointmentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion only; a random id still satisfies
		// uniqueness, just not ordering.
		return uuid.NewString()
	}
	return id.String()
}

// Request validates the form and creates a pending appointment for the
// student. The student's name and the directory's doctor for the kind
// are snapshotted onto the record; no state is mutated on validation
// failure.
func (s *AppointmentService) Request(student domain.User, form domain.AppointmentForm) (*domain.Appointment, error) {
	if err := s.validate.CheckAppointment(form); err != nil {
		return nil, err
	}

	appt := domain.Appointment{
		ID:          s.newID(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Kind:        domain.Kind(form.Kind),
		Date:        form.Date,
		Time:        form.Time,
		Doctor:      s.repo.DoctorFor(domain.Kind(form.Kind)),
		Status:      domain.StatusPending,
		Notes:       form.Notes,
	}
	if err := s.repo.AddAppointment(appt); err != nil {
		return nil, err
	}
	logger.Info("appointment %s requested: %s %s %s", appt.ID, appt.Kind, appt.Date, appt.Time)
	return &appt, nil
}

// ChangeStatus rewrites only the status of the appointment with the
// given id. The write is permissive: any status value can replace any
// current one. Interfaces gate which transitions they offer via
// Status.CanTransition.
func (s *AppointmentService) ChangeStatus(id string, status domain.Status) (*domain.Appointment, error) {
	appt, err := s.repo.UpdateAppointmentStatus(id, status)
	if err != nil {
		return nil, err
	}
	logger.Info("appointment %s is now %s", id, status)
	return appt, nil
}

// Get returns the appointment with the given id.
func (s *AppointmentService) Get(id string) (*domain.Appointment, error) {
	appt := s.repo.FindAppointment(id)
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	return appt, nil
}

// ForStudent returns one student's appointments in creation order.
func (s *AppointmentService) ForStudent(studentID string) []domain.Appointment {
	return s.repo.AppointmentsForStudent(studentID)
}

// All returns every appointment in creation order.
func (s *AppointmentService) All() []domain.Appointment {
	return s.repo.Appointments()
}

// DirectoryService exposes the specialty directory.
type DirectoryService struct {
	repo *Repository
}

// NewDirectoryService creates a directory service.
func NewDirectoryService(repo *Repository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

// Directory returns a copy of the current mapping.
func (s *DirectoryService) Directory() domain.Directory {
	return s.repo.Directory()
}

// DoctorFor resolves the doctor for a kind.
func (s *DirectoryService) DoctorFor(kind domain.Kind) string {
	return s.repo.DoctorFor(kind)
}

// Assign sets the doctor for a specialty.
func (s *DirectoryService) Assign(kind domain.Kind, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	s.repo.AssignDoctor(kind, name)
	return nil
}

// MaintenanceService exposes demo-data reset and the welcome figures.
type MaintenanceService struct {
	repo *Repository
}

// NewMaintenanceService creates a maintenance service.
func NewMaintenanceService(repo *Repository) *MaintenanceService {
	return &MaintenanceService{repo: repo}
}

// Reset wipes and reseeds the stored dataset.
func (s *MaintenanceService) Reset() error {
	return s.repo.Reset()
}

// Stats returns the welcome-screen figures.
func (s *MaintenanceService) Stats() domain.Stats {
	return s.repo.Stats()
}
