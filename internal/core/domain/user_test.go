package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeParse(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{name: "estudiante is valid", role: RoleStudent, expected: true},
		{name: "funcionario is valid", role: RoleStaff, expected: true},
		{name: "empty string is invalid", role: Role(""), expected: false},
		{name: "english value is invalid", role: Role("student"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.IsValid())
		})
	}
}

// TestUser_JSONRoundTrip checks deep-equality after a marshal/unmarshal
// cycle and that the wire format keeps the stored-dataset field names.
func TestUser_JSONRoundTrip(t *testing.T) {
	original := SeedStudent

	data, err := json.Marshal(original)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"cedula":"1313463208"`)
	assert.Contains(t, string(data), `"tipo":"estudiante"`)
	assert.Contains(t, string(data), `"carrera"`)

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestRegistrationForm_User(t *testing.T) {
	form := RegistrationForm{
		ID:              "0987654321",
		Name:            "Ana Torres",
		Email:           "ana.torres@gmail.com",
		Password:        "secreto",
		ConfirmPassword: "secreto",
		Role:            "estudiante",
		Major:           "Medicina",
		Term:            "3",
	}

	u := form.User()
	assert.Equal(t, "0987654321", u.ID)
	assert.Equal(t, RoleStudent, u.Role)
	assert.Equal(t, PlaceholderPhoto, u.Photo)
	assert.Equal(t, "secreto", u.Password)
}

func TestProfilePatch_Apply(t *testing.T) {
	patch := ProfilePatch{
		Name:  "Juan P. Estudiante",
		Email: "juan.estudiante@gmail.com",
		Phone: "3110000000",
		Major: "Ingeniería de Sistemas",
		Term:  "9",
	}

	updated := patch.Apply(SeedStudent)

	assert.Equal(t, SeedStudent.ID, updated.ID, "id is immutable")
	assert.Equal(t, SeedStudent.Password, updated.Password, "password untouched")
	assert.Equal(t, "Juan P. Estudiante", updated.Name)
	assert.Equal(t, "9", updated.Term)
	assert.Equal(t, SeedStudent.Photo, updated.Photo, "empty patch photo keeps existing")

	patch.Photo = "data:image/png;base64,AAAA"
	updated = patch.Apply(SeedStudent)
	assert.Equal(t, "data:image/png;base64,AAAA", updated.Photo)
}

func TestFieldError_MatchesInvalidInput(t *testing.T) {
	var err error = NewFieldError("email", "Debe usar un correo de Gmail (@gmail.com)")

	assert.True(t, errors.Is(err, ErrInvalidInput))

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "email", fieldErr.Field)
}

func TestSeedAppointments_RelativeDates(t *testing.T) {
	now, err := timeParse("2026-09-01")
	require.NoError(t, err)

	appts := SeedAppointments(now)
	require.Len(t, appts, 3)

	assert.Equal(t, "2026-09-04", appts[0].Date)
	assert.Equal(t, StatusConfirmed, appts[0].Status)
	assert.Equal(t, "2026-09-02", appts[1].Date)
	assert.Equal(t, StatusPending, appts[1].Status)
	assert.Equal(t, "2026-08-31", appts[2].Date)
	assert.Equal(t, StatusCompleted, appts[2].Status)

	for _, a := range appts {
		assert.Equal(t, SeedStudent.ID, a.StudentID)
		assert.Equal(t, SeedStudent.Name, a.StudentName)
	}
}

func TestDirectory_Doctor(t *testing.T) {
	d := DefaultDirectory()

	assert.Equal(t, "Dra. Nohe García", d.Doctor(KindGeneralMedicine))
	assert.Equal(t, "Dr. Carlos López", d.Doctor(KindBloodTests))
	assert.Equal(t, "Dra. Ana Rodríguez", d.Doctor(KindPsychology))
	assert.Equal(t, UnassignedDoctor, d.Doctor(Kind("odontologia")))

	d.Assign(KindPsychology, "Dr. Nuevo")
	assert.Equal(t, "Dr. Nuevo", d.Doctor(KindPsychology))
}
