package domain

import "time"

// Demo accounts seeded on first run. These are a deliberate test/demo
// fixture the welcome screen advertises, not production data.
var (
	// SeedStudent is the demo student account.
	SeedStudent = User{
		ID:       "1313463208",
		Name:     "Juan Pérez Estudiante",
		Email:    "juan.estudiante@gmail.com",
		Role:     RoleStudent,
		Phone:    "3001234567",
		Major:    "Ingeniería de Sistemas",
		Term:     "8",
		Password: "123456",
		Photo:    PlaceholderPhoto,
	}

	// SeedStaff is the demo staff account.
	SeedStaff = User{
		ID:       "1234567890",
		Name:     "Dra. Nohe García",
		Email:    "nohegarcia@gmail.com",
		Role:     RoleStaff,
		Phone:    "3009876543",
		Password: "123456",
		Photo:    PlaceholderPhoto,
	}
)

// LegacyStaffEmail is the staff address used by older stored datasets.
// Startup rewrites it (and the display name) to the current SeedStaff
// values; the rewrite is a no-op once applied.
const LegacyStaffEmail = "maria.funcionario@gmail.com"

// SeedUsers returns the two demo accounts in registration order.
func SeedUsers() []User {
	return []User{SeedStudent, SeedStaff}
}

// SeedAppointments returns the three demo appointments with dates
// recomputed relative to now: one confirmed three days out, one pending
// tomorrow, one completed yesterday.
func SeedAppointments(now time.Time) []Appointment {
	directory := DefaultDirectory()
	const iso = "2006-01-02"
	return []Appointment{
		{
			ID:          "1",
			StudentID:   SeedStudent.ID,
			StudentName: SeedStudent.Name,
			Kind:        KindGeneralMedicine,
			Date:        now.AddDate(0, 0, 3).Format(iso),
			Time:        "10:00",
			Doctor:      directory.Doctor(KindGeneralMedicine),
			Status:      StatusConfirmed,
			Notes:       "Control rutinario",
		},
		{
			ID:          "2",
			StudentID:   SeedStudent.ID,
			StudentName: SeedStudent.Name,
			Kind:        KindPsychology,
			Date:        now.AddDate(0, 0, 1).Format(iso),
			Time:        "14:00",
			Doctor:      directory.Doctor(KindPsychology),
			Status:      StatusPending,
			Notes:       "Primera consulta",
		},
		{
			ID:          "3",
			StudentID:   SeedStudent.ID,
			StudentName: SeedStudent.Name,
			Kind:        KindBloodTests,
			Date:        now.AddDate(0, 0, -1).Format(iso),
			Time:        "08:00",
			Doctor:      directory.Doctor(KindBloodTests),
			Status:      StatusCompleted,
			Notes:       "Exámenes de rutina completados",
		},
	}
}

// Stats are the fixed figures shown on the welcome screen.
type Stats struct {
	TotalStudents     int
	Availability      string
	Satisfaction      string
	CompletedVisits   int
	AvailableSpecials int
}

// WelcomeStats returns the figures the welcome screen displays.
func WelcomeStats() Stats {
	return Stats{
		TotalStudents:     500,
		Availability:      "24/7",
		Satisfaction:      "98%",
		CompletedVisits:   1250,
		AvailableSpecials: len(DefaultDirectory()),
	}
}
