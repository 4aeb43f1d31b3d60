package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

var (
	profileName        string
	profileEmail       string
	profilePhone       string
	profileMajor       string
	profileTerm        string
	profilePhoto       string
	profileRemovePhoto bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active user's profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update profile fields of the active user. Only the given flags
change; identity (cédula) and password are never touched here.

The photo flag loads an image file (max 2MB); --remove-photo resets to
the placeholder.`,
	RunE: runProfileUpdate,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "full name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "email (@gmail.com)")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "phone (10 digits)")
	profileUpdateCmd.Flags().StringVar(&profileMajor, "major", "", "major (students)")
	profileUpdateCmd.Flags().StringVar(&profileTerm, "term", "", "term (students)")
	profileUpdateCmd.Flags().StringVar(&profilePhoto, "photo", "", "path to a profile image")
	profileUpdateCmd.Flags().BoolVar(&profileRemovePhoto, "remove-photo", false, "reset the photo to the placeholder")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	cmd.Printf("Cédula:   %s\n", user.ID)
	cmd.Printf("Nombre:   %s\n", user.Name)
	cmd.Printf("Email:    %s\n", user.Email)
	cmd.Printf("Teléfono: %s\n", user.Phone)
	cmd.Printf("Tipo:     %s\n", user.Role.Label())
	if user.Role == domain.RoleStudent {
		cmd.Printf("Carrera:  %s\n", user.Major)
		cmd.Printf("Semestre: %s\n", user.Term)
	}
	if user.Photo != "" && user.Photo != domain.PlaceholderPhoto {
		cmd.Println("Foto:     personalizada")
	}
	return nil
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	// Unset flags keep the current values.
	patch := domain.ProfilePatch{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Major: user.Major,
		Term:  user.Term,
	}
	if cmd.Flags().Changed("name") {
		patch.Name = strings.TrimSpace(profileName)
	}
	if cmd.Flags().Changed("email") {
		patch.Email = strings.TrimSpace(profileEmail)
	}
	if cmd.Flags().Changed("phone") {
		patch.Phone = strings.TrimSpace(profilePhone)
	}
	if cmd.Flags().Changed("major") {
		patch.Major = profileMajor
	}
	if cmd.Flags().Changed("term") {
		patch.Term = profileTerm
	}

	switch {
	case profileRemovePhoto:
		patch.Photo = domain.PlaceholderPhoto
	case profilePhoto != "":
		if imageLoader == nil {
			return errNotConfigured
		}
		photo, err := imageLoader.Load(profilePhoto)
		if err != nil {
			return err
		}
		patch.Photo = photo
	}

	updated, err := accountService.UpdateProfile(patch)
	if err != nil {
		var fieldErr *domain.FieldError
		if errors.As(err, &fieldErr) {
			cmd.Printf("Error: %s\n", fieldErr.Message)
		}
		return err
	}

	cmd.Printf("Perfil actualizado: %s <%s>\n", updated.Name, updated.Email)
	return nil
}
