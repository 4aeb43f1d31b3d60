package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/dates"
	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var (
	apptPeriod string
	apptKind   string
	apptDate   string
	apptTime   string
	apptNotes  string
)

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"citas"},
	Short:   "Manage wellness appointments",
	Long: `List, request and manage appointments.

Students see their own appointments and can request new ones. Staff see
every appointment and can confirm, cancel or complete them.`,
	RunE: runAppointmentsList,
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	RunE:  runAppointmentsList,
}

var appointmentsRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request a new appointment (students)",
	Long: `Request an appointment. Missing details are asked interactively:
specialty, an available date (weekdays from tomorrow) and a time slot
within attention hours.`,
	RunE: runAppointmentsRequest,
}

var appointmentsConfirmCmd = &cobra.Command{
	Use:   "confirm <id>",
	Short: "Confirm a pending appointment (staff)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, args[0], domain.StatusConfirmed)
	},
}

var appointmentsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a pending or confirmed appointment (staff)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, args[0], domain.StatusCancelled)
	},
}

var appointmentsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a confirmed appointment as completed (staff)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, args[0], domain.StatusCompleted)
	},
}

func init() {
	appointmentsListCmd.Flags().StringVar(&apptPeriod, "period", "todas", "filter: todas, hoy, semana, futuras, pasadas")
	appointmentsRequestCmd.Flags().StringVar(&apptKind, "kind", "", "specialty: medicina-general, examenes-sangre, psicologia")
	appointmentsRequestCmd.Flags().StringVar(&apptDate, "date", "", "date (yyyy-MM-dd)")
	appointmentsRequestCmd.Flags().StringVar(&apptTime, "time", "", "time slot (HH:mm)")
	appointmentsRequestCmd.Flags().StringVar(&apptNotes, "notes", "", "observations for the doctor")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsRequestCmd)
	appointmentsCmd.AddCommand(appointmentsConfirmCmd)
	appointmentsCmd.AddCommand(appointmentsCancelCmd)
	appointmentsCmd.AddCommand(appointmentsCompleteCmd)
	rootCmd.AddCommand(appointmentsCmd)
}

func runAppointmentsList(cmd *cobra.Command, _ []string) error {
	if appointmentService == nil {
		return errNotConfigured
	}
	user, err := requireUser()
	if err != nil {
		return err
	}

	var appts []domain.Appointment
	if user.Role == domain.RoleStaff {
		appts = appointmentService.All()
	} else {
		appts = appointmentService.ForStudent(user.ID)
	}

	appts = dateService.FilterByPeriod(appts, dates.Period(apptPeriod))
	appts = dates.SortAppointments(appts)

	if len(appts) == 0 {
		cmd.Println("No hay citas para mostrar.")
		return nil
	}

	for _, a := range appts {
		cmd.Printf("%s  %s  %s %s  %s\n", a.ID, a.Status.Label(), dates.FormatDate(a.Date), dates.FormatTime(a.Time), a.Kind.Label())
		cmd.Printf("    %s · %s · %s\n", dateService.RelativeLabel(a.Date), a.Doctor, a.StudentName)
		if a.Notes != "" {
			cmd.Printf("    Observaciones: %s\n", a.Notes)
		}
	}
	return nil
}

func runAppointmentsRequest(cmd *cobra.Command, _ []string) error {
	if appointmentService == nil {
		return errNotConfigured
	}
	user, err := requireRole(domain.RoleStudent)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	kind := apptKind
	if kind == "" {
		kinds := domain.Kinds()
		cmd.Println("Tipo de cita:")
		for i, k := range kinds {
			cmd.Printf("  %d. %s (%s)\n", i+1, k.Label(), directoryService.DoctorFor(k))
		}
		cmd.Print("Elija una opción [1]: ")
		idx := parseChoice(readLine(reader), len(kinds), 1)
		kind = string(kinds[idx-1])
	}

	date := apptDate
	if date == "" {
		options := dateService.AvailableDates(daysAhead)
		cmd.Println("Fechas disponibles:")
		for i, opt := range options {
			cmd.Printf("  %d. %s\n", i+1, opt.Label)
		}
		cmd.Print("Elija una opción [1]: ")
		idx := parseChoice(readLine(reader), len(options), 1)
		date = options[idx-1].Value
	}

	slot := apptTime
	if slot == "" {
		slots := dates.TimeSlots()
		cmd.Println("Horarios:")
		for i, s := range slots {
			cmd.Printf("  %d. %s\n", i+1, s.Label)
		}
		cmd.Print("Elija una opción [1]: ")
		idx := parseChoice(readLine(reader), len(slots), 1)
		slot = slots[idx-1].Value
	}

	notes := apptNotes
	if notes == "" {
		cmd.Print("Observaciones (opcional): ")
		notes = readLine(reader)
	}

	appt, err := appointmentService.Request(*user, domain.AppointmentForm{
		Kind:  kind,
		Date:  date,
		Time:  slot,
		Notes: notes,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Cita solicitada: %s\n", appt.ID)
	cmd.Printf("  %s con %s\n", appt.Kind.Label(), appt.Doctor)
	cmd.Printf("  %s\n", dates.FormatDateTime(appt.Date, appt.Time))
	cmd.Println("  Estado: Pendiente de confirmación")
	return nil
}

func runStatusChange(cmd *cobra.Command, id string, next domain.Status) error {
	if appointmentService == nil {
		return errNotConfigured
	}
	if _, err := requireRole(domain.RoleStaff); err != nil {
		return err
	}

	appt, err := appointmentService.Get(id)
	if err != nil {
		return err
	}
	if !appt.Status.CanTransition(next) {
		return fmt.Errorf("la cita %s está %s y no puede pasar a %s", id, appt.Status.Label(), next.Label())
	}

	updated, err := appointmentService.ChangeStatus(id, next)
	if err != nil {
		return err
	}
	cmd.Printf("Cita %s: %s\n", updated.ID, updated.Status.Label())
	return nil
}
