package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Show the specialty directory",
	RunE:  runDoctorsList,
}

var doctorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the doctor assigned to each specialty",
	RunE:  runDoctorsList,
}

var doctorsSetCmd = &cobra.Command{
	Use:   "set <specialty> <name>",
	Short: "Assign a doctor to a specialty (staff)",
	Long: `Assign a doctor to a specialty. The directory is consulted when an
appointment is created; existing appointments keep the doctor they were
booked with. The assignment lasts for this run only.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDoctorsSet,
}

func init() {
	doctorsCmd.AddCommand(doctorsListCmd)
	doctorsCmd.AddCommand(doctorsSetCmd)
	rootCmd.AddCommand(doctorsCmd)
}

func runDoctorsList(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errNotConfigured
	}

	for _, kind := range domain.Kinds() {
		cmd.Printf("%-20s %s\n", kind.Label(), directoryService.DoctorFor(kind))
	}
	return nil
}

func runDoctorsSet(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errNotConfigured
	}
	if _, err := requireRole(domain.RoleStaff); err != nil {
		return err
	}

	kind := domain.Kind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("especialidad desconocida: %s", args[0])
	}

	name := args[1]
	for _, extra := range args[2:] {
		name += " " + extra
	}

	if err := directoryService.Assign(kind, name); err != nil {
		return err
	}
	cmd.Printf("%s: %s\n", kind.Label(), name)
	return nil
}
