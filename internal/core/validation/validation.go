// Package validation implements the input checks for registration,
// login, profile updates and appointment requests.
//
// Predicates are pure; each Check* method runs its checks in a fixed
// order and reports only the first failure as a domain.FieldError with
// the user-facing Spanish message. A nil result means the input passed.
package validation

import (
	"regexp"
	"strings"

	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var (
	idPattern = regexp.MustCompile(`^\d{10}$`)

	// Only @gmail.com addresses are accepted, with a case-sensitive
	// domain. A product rule, not a general email-syntax check.
	emailPattern = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)
)

// MaxImageBytes is the upload limit for profile photos (2 MiB).
const MaxImageBytes = 2 * 1024 * 1024

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Service validates user input. Date checks delegate to the date
// service so "today or later" is evaluated against the same clock the
// rest of the application uses.
type Service struct {
	dates *dates.Service
}

// New creates a validation service backed by the given date service.
func New(dateService *dates.Service) *Service {
	return &Service{dates: dateService}
}

// ValidID reports whether id is exactly ten decimal digits.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ValidEmail reports whether email is a Gmail address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone is absent or exactly ten digits.
// Phone numbers are optional.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return idPattern.MatchString(phone)
}

// ValidBusinessHours reports whether a HH:mm slot falls inside working
// hours: 08:00-12:00 or 14:00-17:00, both inclusive.
func ValidBusinessHours(hhmm string) bool {
	if hhmm == "" {
		return false
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return false
	}
	hours, minutes, ok := parseClock(parts[0], parts[1])
	if !ok {
		return false
	}
	total := hours*60 + minutes
	return (total >= 8*60 && total <= 12*60) || (total >= 14*60 && total <= 17*60)
}

func parseClock(h, m string) (int, int, bool) {
	hours, ok := atoi(h)
	if !ok {
		return 0, 0, false
	}
	minutes, ok := atoi(m)
	if !ok {
		return 0, 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}
	return hours, minutes, true
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// ImageSizeOK reports whether an upload fits the 2 MiB limit.
func ImageSizeOK(sizeBytes int64) bool {
	return sizeBytes <= MaxImageBytes
}

// ImageTypeOK reports whether a MIME type names an image.
func ImageTypeOK(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// CheckLogin validates the login form: both fields present and the
// email a Gmail address.
func (s *Service) CheckLogin(form domain.LoginForm) *domain.FieldError {
	if strings.TrimSpace(form.Email) == "" {
		return domain.NewFieldError("email", "Por favor ingrese su correo electrónico")
	}
	if strings.TrimSpace(form.Password) == "" {
		return domain.NewFieldError("password", "Por favor ingrese su contraseña")
	}
	if !ValidEmail(form.Email) {
		return domain.NewFieldError("email", "Debe usar un correo de Gmail (@gmail.com)")
	}
	return nil
}

// CheckRegistration validates a registration form against the existing
// user set. Checks run in a fixed order and stop at the first failure:
// required fields, field formats, password agreement and length, then
// uniqueness of ID and email.
func (s *Service) CheckRegistration(form domain.RegistrationForm, existing []domain.User) *domain.FieldError {
	if strings.TrimSpace(form.ID) == "" {
		return domain.NewFieldError("cedula", "Por favor ingrese su cédula")
	}
	if strings.TrimSpace(form.Name) == "" {
		return domain.NewFieldError("nombre", "Por favor ingrese su nombre completo")
	}
	if strings.TrimSpace(form.Email) == "" {
		return domain.NewFieldError("email", "Por favor ingrese su correo electrónico")
	}
	if strings.TrimSpace(form.Password) == "" {
		return domain.NewFieldError("password", "Por favor ingrese una contraseña")
	}
	if strings.TrimSpace(form.ConfirmPassword) == "" {
		return domain.NewFieldError("confirmPassword", "Por favor confirme su contraseña")
	}
	if strings.TrimSpace(form.Role) == "" {
		return domain.NewFieldError("tipo", "Por favor seleccione si es estudiante o funcionario")
	}
	if !ValidID(form.ID) {
		return domain.NewFieldError("cedula", "La cédula debe tener exactamente 10 dígitos numéricos")
	}
	if !ValidEmail(form.Email) {
		return domain.NewFieldError("email", "Debe usar un correo de Gmail (@gmail.com)")
	}
	if form.Password != form.ConfirmPassword {
		return domain.NewFieldError("password", "Las contraseñas no coinciden")
	}
	if len(form.Password) < MinPasswordLength {
		return domain.NewFieldError("password", "La contraseña debe tener al menos 6 caracteres")
	}
	for _, u := range existing {
		if u.ID == form.ID {
			return domain.NewFieldError("cedula", "Ya existe un usuario registrado con esta cédula")
		}
	}
	for _, u := range existing {
		if u.Email == form.Email {
			return domain.NewFieldError("email", "Ya existe un usuario registrado con este correo electrónico")
		}
	}
	return nil
}

// CheckAppointment validates an appointment request: kind, date and
// time present, the date parseable, and the date today or later.
func (s *Service) CheckAppointment(form domain.AppointmentForm) *domain.FieldError {
	if strings.TrimSpace(form.Kind) == "" {
		return domain.NewFieldError("tipo", "Por favor seleccione el tipo de cita")
	}
	if strings.TrimSpace(form.Date) == "" {
		return domain.NewFieldError("fecha", "Por favor seleccione una fecha")
	}
	if strings.TrimSpace(form.Time) == "" {
		return domain.NewFieldError("hora", "Por favor seleccione una hora")
	}
	if !dates.ValidDate(form.Date) {
		return domain.NewFieldError("fecha", "El formato de fecha no es válido")
	}
	if !s.dates.IsFutureDate(form.Date) {
		return domain.NewFieldError("fecha", "No puede solicitar citas para fechas pasadas")
	}
	return nil
}

// CheckProfile validates a self-service profile update: non-blank name
// and a Gmail address.
func (s *Service) CheckProfile(patch domain.ProfilePatch) *domain.FieldError {
	if strings.TrimSpace(patch.Name) == "" {
		return domain.NewFieldError("nombre", "El nombre no puede estar vacío")
	}
	if !ValidEmail(patch.Email) {
		return domain.NewFieldError("email", "Debe usar un correo de Gmail (@gmail.com)")
	}
	return nil
}
