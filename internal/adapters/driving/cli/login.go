package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your email and password",
	Long: `Open a session with a registered account. The session persists until
you log out, so subsequent commands run as this user.

Demo accounts (password 123456):
  juan.estudiante@gmail.com  - student
  nohegarcia@gmail.com       - staff`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Close the active session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errNotConfigured
	}

	reader := bufio.NewReader(os.Stdin)

	email := loginEmail
	if email == "" {
		cmd.Print("Email: ")
		email = readLine(reader)
	}

	cmd.Print("Contraseña: ")
	password := readPassword()
	cmd.Println()

	user, err := accountService.Login(domain.LoginForm{Email: email, Password: password})
	if err != nil {
		return err
	}

	cmd.Printf("Sesión iniciada: %s (%s)\n", user.Name, user.Role.Label())
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errNotConfigured
	}

	if accountService.CurrentUser() == nil {
		cmd.Println("No hay sesión activa.")
		return nil
	}
	if err := accountService.Logout(); err != nil {
		return err
	}
	cmd.Println("Sesión cerrada.")
	return nil
}
