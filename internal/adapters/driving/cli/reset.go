package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all data and reseed the demo accounts",
	Long: `Delete every stored user, appointment and session, then reseed the
demo dataset. This cannot be undone.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if maintenanceService == nil {
		return errNotConfigured
	}

	if !resetYes {
		cmd.Print("Esto borra todos los datos. ¿Continuar? [y/N]: ")
		answer := readLine(bufio.NewReader(os.Stdin))
		if answer != "y" && answer != "Y" {
			cmd.Println("Cancelado.")
			return nil
		}
	}

	if err := maintenanceService.Reset(); err != nil {
		return err
	}
	cmd.Println("Datos reiniciados con las cuentas de demostración.")
	return nil
}
