package driving

import "github.com/uniwell-labs/bienestar-cli/internal/core/domain"

// AppointmentService drives the appointment lifecycle.
type AppointmentService interface {
	// Request validates the form and creates a pending appointment for
	// the student, snapshotting their name and the assigned doctor.
	Request(student domain.User, form domain.AppointmentForm) (*domain.Appointment, error)

	// ChangeStatus rewrites the status of the appointment with the
	// given id. Any status value can be written to any current state;
	// interfaces gate on Status.CanTransition instead.
	ChangeStatus(id string, status domain.Status) (*domain.Appointment, error)

	// Get returns the appointment with the given id.
	Get(id string) (*domain.Appointment, error)

	// ForStudent returns the appointments of one student, in creation
	// order.
	ForStudent(studentID string) []domain.Appointment

	// All returns every appointment, in creation order.
	All() []domain.Appointment
}

// DirectoryService manages the specialty-to-doctor directory.
type DirectoryService interface {
	// Directory returns a copy of the current mapping.
	Directory() domain.Directory

	// DoctorFor resolves the doctor for a kind, falling back to the
	// unassigned sentinel.
	DoctorFor(kind domain.Kind) string

	// Assign sets the doctor for a specialty. Existing appointments
	// keep their snapshots.
	Assign(kind domain.Kind, name string) error
}

// MaintenanceService exposes the demo-data operations.
type MaintenanceService interface {
	// Reset wipes the stored dataset and reseeds the demo fixture.
	Reset() error

	// Stats returns the fixed figures shown on the welcome screen.
	Stats() domain.Stats
}
