package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/media"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/storage/memory"
	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/services"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
)

// testNow pins the clock to a Tuesday morning.
var testNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

// setupServices wires real services over an in-memory store and injects
// them into the command tree.
func setupServices(t *testing.T) *services.Repository {
	t.Helper()

	repo, err := services.NewRepository(memory.NewKVStore(), func() time.Time { return testNow })
	require.NoError(t, err)

	dateService := dates.NewWithClock(func() time.Time { return testNow })
	validate := validation.New(dateService)

	SetServices(&Services{
		Accounts:     services.NewAccountService(repo, validate),
		Appointments: services.NewAppointmentService(repo, validate),
		Directory:    services.NewDirectoryService(repo),
		Maintenance:  services.NewMaintenanceService(repo),
		Dates:        dateService,
		Images:       media.NewLoader(),
	})
	t.Cleanup(func() { SetServices(&Services{}) })
	return repo
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
