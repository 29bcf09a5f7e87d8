package authctl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams over x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// MasterKey returns the key from the environment, or prompts for it without
// echo when stdin is a terminal. Empty means "keep the configured value".
func MasterKey(getenv func(string) string, envName string, w io.Writer) (string, error) {
	if v := strings.TrimSpace(getenv(envName)); v != "" {
		return v, nil
	}
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", nil
	}
	if _, err := fmt.Fprint(w, "Master key: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read master key: %w", err)
	}
	return strings.TrimSpace(string(pw)), nil
}
