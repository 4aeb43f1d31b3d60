// Command bienestar is the university wellness appointment booking
// application: a cobra CLI plus an interactive TUI, backed by a local
// SQLite database.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/config/file"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/media"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driven/storage/sqlite"
	"github.com/uniwell-labs/bienestar-cli/internal/adapters/driving/cli"
	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/services"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
	"github.com/uniwell-labs/bienestar-cli/internal/logger"
)

func main() {
	// .env overrides are optional.
	_ = godotenv.Load()

	cli.SetBootstrap(buildServices)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the adapters and core services. Precedence for
// the data directory: --data-dir flag, BIENESTAR_DATA_DIR, config file,
// then the built-in default.
func buildServices(dataDir string, verbose bool) (*cli.Services, error) {
	config, err := file.NewConfigStore(os.Getenv("BIENESTAR_CONFIG_DIR"))
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	if verbose || os.Getenv("BIENESTAR_VERBOSE") != "" || config.GetBool("verbose") {
		logger.SetVerbose(true)
	}

	if dataDir == "" {
		dataDir = os.Getenv("BIENESTAR_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = config.GetString("data_dir")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("database at %s", store.Path())

	repo, err := services.NewRepository(store, nil)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}

	dateService := dates.New()
	validate := validation.New(dateService)

	return &cli.Services{
		Accounts:     services.NewAccountService(repo, validate),
		Appointments: services.NewAppointmentService(repo, validate),
		Directory:    services.NewDirectoryService(repo),
		Maintenance:  services.NewMaintenanceService(repo),
		Dates:        dateService,
		Images:       media.NewLoader(),
		DaysAhead:    config.GetInt("days_ahead"),
	}, nil
}
