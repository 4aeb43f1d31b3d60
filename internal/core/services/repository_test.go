package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/storage/memory"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

// fixedNow pins the clock to a Tuesday morning.
var fixedNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func testClock() time.Time { return fixedNow }

func newTestRepository(t *testing.T) (*Repository, *memory.KVStore) {
	t.Helper()
	store := memory.NewKVStore()
	repo, err := NewRepository(store, testClock)
	require.NoError(t, err)
	return repo, store
}

func TestNewRepositorySeedsEmptyStore(t *testing.T) {
	repo, store := newTestRepository(t)

	users := repo.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "juan.estudiante@gmail.com", users[0].Email)
	assert.Equal(t, "nohegarcia@gmail.com", users[1].Email)

	appts := repo.Appointments()
	require.Len(t, appts, 3)
	assert.Equal(t, "2026-09-04", appts[0].Date)
	assert.Equal(t, domain.StatusConfirmed, appts[0].Status)
	assert.Equal(t, "2026-09-02", appts[1].Date)
	assert.Equal(t, domain.StatusPending, appts[1].Status)
	assert.Equal(t, "2026-08-31", appts[2].Date)
	assert.Equal(t, domain.StatusCompleted, appts[2].Status)

	// The seed is written through immediately.
	raw, ok, err := store.Get("bienestar_usuarios")
	require.NoError(t, err)
	require.True(t, ok)
	var stored []domain.User
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 2)
}

func TestNewRepositoryLoadsExistingData(t *testing.T) {
	repo, store := newTestRepository(t)

	extra := domain.User{ID: "0987654321", Name: "Otra Persona", Email: "otra@gmail.com", Role: domain.RoleStudent}
	require.NoError(t, repo.AddUser(extra))

	// A second repository over the same store sees the saved set, not a
	// fresh seed.
	reloaded, err := NewRepository(store, testClock)
	require.NoError(t, err)
	assert.Len(t, reloaded.Users(), 3)
	require.NotNil(t, reloaded.FindUserByEmail("otra@gmail.com"))
}

func TestRepositoryMigratesLegacyStaffEmail(t *testing.T) {
	store := memory.NewKVStore()

	legacy := domain.SeedStaff
	legacy.Email = domain.LegacyStaffEmail
	legacy.Name = "María Funcionaria"
	users, err := json.Marshal([]domain.User{domain.SeedStudent, legacy})
	require.NoError(t, err)
	require.NoError(t, store.Set("bienestar_usuarios", string(users)))
	require.NoError(t, store.Set("bienestar_citas", "[]"))

	repo, err := NewRepository(store, testClock)
	require.NoError(t, err)

	staff := repo.FindUserByID(domain.SeedStaff.ID)
	require.NotNil(t, staff)
	assert.Equal(t, domain.SeedStaff.Email, staff.Email)
	assert.Equal(t, domain.SeedStaff.Name, staff.Name)

	// The rewrite is persisted, so a reload does not migrate again.
	raw, _, err := store.Get("bienestar_usuarios")
	require.NoError(t, err)
	assert.NotContains(t, raw, domain.LegacyStaffEmail)

	// Migration keeps existing appointments instead of reseeding.
	assert.Empty(t, repo.Appointments())
}

func TestRepositoryRestoresSession(t *testing.T) {
	repo, store := newTestRepository(t)
	require.NoError(t, repo.SetSession(domain.SeedStudent))

	reloaded, err := NewRepository(store, testClock)
	require.NoError(t, err)
	session := reloaded.Session()
	require.NotNil(t, session)
	assert.Equal(t, domain.SeedStudent.ID, session.ID)
}

func TestRepositoryDropsStaleSession(t *testing.T) {
	repo, store := newTestRepository(t)

	ghost := domain.User{ID: "5555555555", Email: "ghost@gmail.com", Role: domain.RoleStudent}
	require.NoError(t, repo.SetSession(ghost))

	reloaded, err := NewRepository(store, testClock)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Session())

	_, ok, err := store.Get("bienestar_sesion")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositoryDropsUnreadableSession(t *testing.T) {
	_, store := newTestRepository(t)
	require.NoError(t, store.Set("bienestar_sesion", "{not json"))

	reloaded, err := NewRepository(store, testClock)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Session())
}

func TestUpdateUserWritesThrough(t *testing.T) {
	repo, store := newTestRepository(t)

	updated := domain.SeedStudent
	updated.Phone = "3110000000"
	require.NoError(t, repo.UpdateUser(updated))

	raw, _, err := store.Get("bienestar_usuarios")
	require.NoError(t, err)
	assert.Contains(t, raw, "3110000000")
}

func TestUpdateUserUnknownID(t *testing.T) {
	repo, _ := newTestRepository(t)
	assert.ErrorIs(t, repo.UpdateUser(domain.User{ID: "0000000000"}), domain.ErrNotFound)
}

func TestUpdateAppointmentStatusTouchesOnlyStatus(t *testing.T) {
	repo, _ := newTestRepository(t)

	before := repo.FindAppointment("2")
	require.NotNil(t, before)

	after, err := repo.UpdateAppointmentStatus("2", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, after.Status)

	expected := *before
	expected.Status = domain.StatusConfirmed
	assert.Equal(t, expected, *after)
}

func TestAppointmentsForStudent(t *testing.T) {
	repo, _ := newTestRepository(t)

	assert.Len(t, repo.AppointmentsForStudent(domain.SeedStudent.ID), 3)
	assert.Empty(t, repo.AppointmentsForStudent("0000000000"))
}

func TestAssignDoctorIsInMemoryOnly(t *testing.T) {
	repo, store := newTestRepository(t)

	repo.AssignDoctor(domain.KindPsychology, "Dr. Nuevo")
	assert.Equal(t, "Dr. Nuevo", repo.DoctorFor(domain.KindPsychology))

	// Snapshots on existing appointments are untouched.
	appt := repo.FindAppointment("2")
	require.NotNil(t, appt)
	assert.NotEqual(t, "Dr. Nuevo", appt.Doctor)

	// The directory does not survive a reload.
	reloaded, err := NewRepository(store, testClock)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDirectory()[domain.KindPsychology], reloaded.DoctorFor(domain.KindPsychology))
}

func TestResetReseedsEverything(t *testing.T) {
	repo, store := newTestRepository(t)

	require.NoError(t, repo.AddUser(domain.User{ID: "1112223334", Email: "temp@gmail.com", Role: domain.RoleStudent}))
	require.NoError(t, repo.SetSession(domain.SeedStudent))
	repo.AssignDoctor(domain.KindGeneralMedicine, "Dr. Temporal")

	require.NoError(t, repo.Reset())

	assert.Len(t, repo.Users(), 2)
	assert.Len(t, repo.Appointments(), 3)
	assert.Nil(t, repo.Session())
	assert.Equal(t, domain.DefaultDirectory()[domain.KindGeneralMedicine], repo.DoctorFor(domain.KindGeneralMedicine))

	_, ok, err := store.Get("bienestar_sesion")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	repo, _ := newTestRepository(t)

	stats := repo.Stats()
	assert.Equal(t, 500, stats.TotalStudents)
	assert.Equal(t, "24/7", stats.Availability)
	assert.Equal(t, "98%", stats.Satisfaction)
	assert.Equal(t, 1250, stats.CompletedVisits)
	assert.Equal(t, 3, stats.AvailableSpecials)
}
