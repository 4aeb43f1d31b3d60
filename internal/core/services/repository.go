// Package services implements the core application services: the
// repository holding the authoritative in-memory state, account flows,
// and the appointment lifecycle.
package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driven"
	"github.com/uniwell-labs/bienestar-cli/internal/logger"
)

// Storage keys, shared with the original stored-dataset layout.
const (
	usersKey        = "bienestar_usuarios"
	appointmentsKey = "bienestar_citas"
	sessionKey      = "bienestar_sesion"
)

// Repository holds the authoritative in-memory user and appointment
// collections, the specialty directory and the active session, and
// writes every mutation straight through to the key-value store.
//
// There is exactly one logical actor per process, so the repository is
// not synchronised; services run to completion before the next
// operation starts.
type Repository struct {
	store driven.KVStore
	now   func() time.Time

	users        []domain.User
	appointments []domain.Appointment
	directory    domain.Directory
	session      *domain.User
}

// NewRepository creates a repository over the given store and loads or
// seeds its state. The clock drives the relative dates of the demo
// fixture.
func NewRepository(store driven.KVStore, now func() time.Time) (*Repository, error) {
	if now == nil {
		now = time.Now
	}
	r := &Repository{
		store:     store,
		now:       now,
		directory: domain.DefaultDirectory(),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// load restores persisted state, runs the one-time legacy migration and
// seeds the demo fixture when no complete dataset exists.
func (r *Repository) load() error {
	usersRaw, usersOK, err := r.store.Get(usersKey)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}
	apptsRaw, apptsOK, err := r.store.Get(appointmentsKey)
	if err != nil {
		return fmt.Errorf("loading appointments: %w", err)
	}

	if !usersOK || !apptsOK {
		logger.Info("no stored dataset, seeding demo data")
		return r.seed()
	}

	if err := json.Unmarshal([]byte(usersRaw), &r.users); err != nil {
		return fmt.Errorf("decoding users: %w", err)
	}
	if err := json.Unmarshal([]byte(apptsRaw), &r.appointments); err != nil {
		return fmt.Errorf("decoding appointments: %w", err)
	}

	if err := r.migrateLegacyStaff(); err != nil {
		return err
	}
	return r.restoreSession()
}

// migrateLegacyStaff rewrites the staff account stored under the old
// email to the current canonical email and name. Idempotent: a no-op
// once no user carries the legacy address.
func (r *Repository) migrateLegacyStaff() error {
	migrated := false
	for i := range r.users {
		if r.users[i].Role == domain.RoleStaff && r.users[i].Email == domain.LegacyStaffEmail {
			r.users[i].Email = domain.SeedStaff.Email
			r.users[i].Name = domain.SeedStaff.Name
			migrated = true
		}
	}
	if !migrated {
		return nil
	}
	logger.Info("migrated legacy staff account to %s", domain.SeedStaff.Email)
	return r.persistUsers()
}

// restoreSession revives a persisted session if its user still exists
// in the current user set; a stale session is removed.
func (r *Repository) restoreSession() error {
	raw, ok, err := r.store.Get(sessionKey)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return nil
	}

	var stored domain.User
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("discarding unreadable session: %v", err)
		return r.store.Remove(sessionKey)
	}

	// The user set is authoritative; the session only names who is
	// logged in.
	current := r.FindUserByID(stored.ID)
	if current == nil {
		return r.store.Remove(sessionKey)
	}
	r.session = current
	return nil
}

// seed writes the demo fixture: two users and three appointments with
// dates recomputed from now.
func (r *Repository) seed() error {
	r.users = domain.SeedUsers()
	r.appointments = domain.SeedAppointments(r.now())
	if err := r.persistUsers(); err != nil {
		return err
	}
	return r.persistAppointments()
}

func (r *Repository) persistUsers() error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}
	if err := r.store.Set(usersKey, string(data)); err != nil {
		return fmt.Errorf("persisting users: %w", err)
	}
	return nil
}

func (r *Repository) persistAppointments() error {
	data, err := json.Marshal(r.appointments)
	if err != nil {
		return fmt.Errorf("encoding appointments: %w", err)
	}
	if err := r.store.Set(appointmentsKey, string(data)); err != nil {
		return fmt.Errorf("persisting appointments: %w", err)
	}
	return nil
}

// Users returns a copy of the user set in registration order.
func (r *Repository) Users() []domain.User {
	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users
}

// FindUserByEmail returns the user with the given email, or nil.
func (r *Repository) FindUserByEmail(email string) *domain.User {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// FindUserByID returns the user with the given ID, or nil.
func (r *Repository) FindUserByID(id string) *domain.User {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// AddUser appends a user and writes the set through.
func (r *Repository) AddUser(user domain.User) error {
	r.users = append(r.users, user)
	return r.persistUsers()
}

// UpdateUser replaces the stored user with the same ID and writes the
// set through.
func (r *Repository) UpdateUser(user domain.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = user
			return r.persistUsers()
		}
	}
	return domain.ErrNotFound
}

// Appointments returns a copy of every appointment in creation order.
func (r *Repository) Appointments() []domain.Appointment {
	appts := make([]domain.Appointment, len(r.appointments))
	copy(appts, r.appointments)
	return appts
}

// AppointmentsForStudent returns the appointments of one student in
// creation order.
func (r *Repository) AppointmentsForStudent(studentID string) []domain.Appointment {
	var appts []domain.Appointment
	for _, a := range r.appointments {
		if a.StudentID == studentID {
			appts = append(appts, a)
		}
	}
	return appts
}

// FindAppointment returns the appointment with the given id, or nil.
func (r *Repository) FindAppointment(id string) *domain.Appointment {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			a := r.appointments[i]
			return &a
		}
	}
	return nil
}

// AddAppointment appends an appointment and writes the set through.
func (r *Repository) AddAppointment(appt domain.Appointment) error {
	r.appointments = append(r.appointments, appt)
	return r.persistAppointments()
}

// UpdateAppointmentStatus rewrites only the status of the appointment
// with the given id and writes the set through.
func (r *Repository) UpdateAppointmentStatus(id string, status domain.Status) (*domain.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = status
			if err := r.persistAppointments(); err != nil {
				return nil, err
			}
			a := r.appointments[i]
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Directory returns a copy of the specialty directory.
func (r *Repository) Directory() domain.Directory {
	directory := make(domain.Directory, len(r.directory))
	for kind, name := range r.directory {
		directory[kind] = name
	}
	return directory
}

// DoctorFor resolves the doctor currently assigned to a kind.
func (r *Repository) DoctorFor(kind domain.Kind) string {
	return r.directory.Doctor(kind)
}

// AssignDoctor sets the doctor for a specialty. The directory is
// consulted at creation time only, so existing appointments keep their
// snapshots.
func (r *Repository) AssignDoctor(kind domain.Kind, name string) {
	r.directory.Assign(kind, name)
}

// Session returns the active user, or nil.
func (r *Repository) Session() *domain.User {
	if r.session == nil {
		return nil
	}
	u := *r.session
	return &u
}

// SetSession records the active user and writes it through.
func (r *Repository) SetSession(user domain.User) error {
	r.session = &user
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := r.store.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

// ClearSession drops the active user and its persisted record.
func (r *Repository) ClearSession() error {
	r.session = nil
	return r.store.Remove(sessionKey)
}

// Reset wipes the stored dataset, clears the session and reseeds the
// demo fixture with dates recomputed from now.
func (r *Repository) Reset() error {
	for _, key := range []string{usersKey, appointmentsKey, sessionKey} {
		if err := r.store.Remove(key); err != nil {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}
	r.session = nil
	r.directory = domain.DefaultDirectory()
	return r.seed()
}

// Stats returns the fixed welcome-screen figures.
func (r *Repository) Stats() domain.Stats {
	return domain.WelcomeStats()
}
