package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

// Prompt helpers shared by the interactive commands.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Read without echo when attached to a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// requireUser returns the active session's user.
func requireUser() (*domain.User, error) {
	if accountService == nil {
		return nil, errNotConfigured
	}
	user := accountService.CurrentUser()
	if user == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return user, nil
}

// requireRole returns the active user only if it has the given role.
func requireRole(role domain.Role) (*domain.User, error) {
	user, err := requireUser()
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, domain.ErrRoleDenied
	}
	return user, nil
}
