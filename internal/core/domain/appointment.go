package domain

// Kind is the specialty an appointment is booked under. It determines the
// assigned doctor at creation time via the specialty directory.
type Kind string

const (
	// KindGeneralMedicine is a general medical consultation.
	KindGeneralMedicine Kind = "medicina-general"
	// KindBloodTests is a laboratory blood-work appointment.
	KindBloodTests Kind = "examenes-sangre"
	// KindPsychology is a psychological counselling session.
	KindPsychology Kind = "psicologia"
)

// Kinds lists every appointment kind in display order.
func Kinds() []Kind {
	return []Kind{KindGeneralMedicine, KindBloodTests, KindPsychology}
}

// IsValid reports whether the kind is one of the known values.
func (k Kind) IsValid() bool {
	switch k {
	case KindGeneralMedicine, KindBloodTests, KindPsychology:
		return true
	}
	return false
}

// Label returns the display name for the kind. Unknown kinds fall back to
// the raw value so stored data is never rendered as an empty string.
func (k Kind) Label() string {
	switch k {
	case KindGeneralMedicine:
		return "Medicina General"
	case KindBloodTests:
		return "Exámenes de Sangre"
	case KindPsychology:
		return "Psicología"
	}
	return string(k)
}

// Status is the lifecycle state of an appointment.
type Status string

const (
	// StatusPending is the initial state of every new appointment.
	StatusPending Status = "pendiente"
	// StatusConfirmed means staff accepted the requested slot.
	StatusConfirmed Status = "confirmada"
	// StatusCancelled is terminal; set by staff from pending or confirmed.
	StatusCancelled Status = "cancelada"
	// StatusCompleted is terminal; set by staff after a confirmed visit.
	StatusCompleted Status = "completada"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Label returns the capitalised display name for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusConfirmed:
		return "Confirmada"
	case StatusCancelled:
		return "Cancelada"
	case StatusCompleted:
		return "Completada"
	}
	return string(s)
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransition reports whether the state machine defines a transition
// from s to next: pending may become confirmed or cancelled, confirmed
// may become completed or cancelled, terminals admit nothing.
//
// The appointment service itself does not enforce this table; interfaces
// use it to decide which actions to offer, so undefined transitions are
// unreachable through normal use rather than rejected.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// NextStatuses returns the transitions defined out of s, in the order the
// staff interface offers them.
func (s Status) NextStatuses() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusConfirmed, StatusCancelled}
	case StatusConfirmed:
		return []Status{StatusCompleted, StatusCancelled}
	}
	return nil
}

// Appointment is a booked wellness visit.
//
// StudentName and Doctor are snapshots taken at creation time: renaming a
// student or reassigning a specialty later must not rewrite history. Only
// Status changes after creation.
type Appointment struct {
	// ID is a unique, time-ordered token.
	ID string `json:"id"`

	// StudentID is the ten-digit ID of the requesting student.
	StudentID string `json:"estudianteCedula"`

	// StudentName is the student's name at creation time.
	StudentName string `json:"estudianteNombre"`

	// Kind is the requested specialty.
	Kind Kind `json:"tipo"`

	// Date is the calendar day in ISO form (yyyy-MM-dd).
	Date string `json:"fecha"`

	// Time is the slot in 24-hour HH:mm form.
	Time string `json:"hora"`

	// Doctor is the assigned doctor's name at creation time.
	Doctor string `json:"doctor"`

	// Status is the lifecycle state.
	Status Status `json:"estado"`

	// Notes carries free-form observations entered with the request.
	Notes string `json:"observaciones,omitempty"`
}

// AppointmentForm carries the fields entered when requesting a visit.
type AppointmentForm struct {
	Kind  string
	Date  string
	Time  string
	Notes string
}
