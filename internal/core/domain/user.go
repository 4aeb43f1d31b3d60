package domain

// Role identifies the kind of account a user holds.
type Role string

const (
	// RoleStudent is a student account; students request appointments.
	RoleStudent Role = "estudiante"
	// RoleStaff is a wellness-staff account; staff manage appointments.
	RoleStaff Role = "funcionario"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff:
		return true
	}
	return false
}

// Label returns the display name for the role.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "Estudiante"
	case RoleStaff:
		return "Funcionario"
	}
	return string(r)
}

// PlaceholderPhoto is the photo reference used when a user has not
// uploaded a picture, or removed the one they had.
const PlaceholderPhoto = "/placeholder.svg?height=100&width=100"

// User is a registered account.
//
// ID is a national-ID-like string of exactly ten digits and never changes
// after registration. Passwords are stored and compared in plain text;
// that is the documented behaviour of this system, not an oversight to
// patch here.
type User struct {
	// ID is the unique ten-digit identity number.
	ID string `json:"cedula"`

	// Name is the full display name.
	Name string `json:"nombre"`

	// Email is the unique login address. Only @gmail.com addresses are
	// accepted, a business rule enforced by the validation service.
	Email string `json:"email"`

	// Role distinguishes students from staff.
	Role Role `json:"tipo"`

	// Phone is optional; when present it is exactly ten digits.
	Phone string `json:"telefono,omitempty"`

	// Major is the study programme. Students only.
	Major string `json:"carrera,omitempty"`

	// Term is the current semester. Students only.
	Term string `json:"semestre,omitempty"`

	// Password is the plain-text credential.
	Password string `json:"password"`

	// Photo is a base64 data URL of the profile picture, or the
	// placeholder reference.
	Photo string `json:"foto,omitempty"`
}

// LoginForm carries the credentials entered at the login screen.
type LoginForm struct {
	Email    string
	Password string
}

// RegistrationForm carries the fields entered at the registration screen.
type RegistrationForm struct {
	ID              string
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Phone           string
	Major           string
	Term            string
}

// User builds the account a valid registration form describes.
func (f RegistrationForm) User() User {
	return User{
		ID:       f.ID,
		Name:     f.Name,
		Email:    f.Email,
		Role:     Role(f.Role),
		Phone:    f.Phone,
		Major:    f.Major,
		Term:     f.Term,
		Password: f.Password,
		Photo:    PlaceholderPhoto,
	}
}

// ProfilePatch carries the self-service profile fields a user may change.
// The ID is fixed at registration and is not part of the patch.
type ProfilePatch struct {
	Name  string
	Email string
	Phone string
	Major string
	Term  string
	Photo string
}

// Apply returns a copy of u with the patch fields replacing the
// corresponding profile fields. Identity and credential are untouched.
func (p ProfilePatch) Apply(u User) User {
	u.Name = p.Name
	u.Email = p.Email
	u.Phone = p.Phone
	u.Major = p.Major
	u.Term = p.Term
	if p.Photo != "" {
		u.Photo = p.Photo
	}
	return u
}
