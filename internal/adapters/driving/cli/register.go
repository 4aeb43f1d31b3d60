package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Run an interactive wizard to create a student or staff account.

Student accounts additionally record a major and a term. New accounts do
not open a session; run 'bienestar login' afterwards.`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errNotConfigured
	}

	reader := bufio.NewReader(os.Stdin)
	form := domain.RegistrationForm{}

	cmd.Println("Registro de cuenta")
	cmd.Println("==================")
	cmd.Println()

	cmd.Print("Cédula (10 dígitos): ")
	form.ID = readLine(reader)

	cmd.Print("Nombre completo: ")
	form.Name = readLine(reader)

	cmd.Print("Email (@gmail.com): ")
	form.Email = readLine(reader)

	cmd.Print("Teléfono (10 dígitos): ")
	form.Phone = readLine(reader)

	roles := []domain.Role{domain.RoleStudent, domain.RoleStaff}
	cmd.Println("Tipo de cuenta:")
	for i, role := range roles {
		cmd.Printf("  %d. %s\n", i+1, role.Label())
	}
	cmd.Print("Elija una opción [1]: ")
	idx := parseChoice(readLine(reader), len(roles), 1)
	form.Role = string(roles[idx-1])

	if roles[idx-1] == domain.RoleStudent {
		cmd.Print("Carrera: ")
		form.Major = readLine(reader)
		cmd.Print("Semestre: ")
		form.Term = readLine(reader)
	}

	cmd.Print("Contraseña (mínimo 6 caracteres): ")
	form.Password = readPassword()
	cmd.Println()
	cmd.Print("Confirmar contraseña: ")
	form.ConfirmPassword = readPassword()
	cmd.Println()

	user, err := accountService.Register(form)
	if err != nil {
		var fieldErr *domain.FieldError
		if errors.As(err, &fieldErr) {
			cmd.Printf("Error: %s\n", fieldErr.Message)
			return err
		}
		return err
	}

	cmd.Printf("Cuenta creada: %s (%s). Inicie sesión con 'bienestar login'.\n", user.Name, user.Role.Label())
	return nil
}
