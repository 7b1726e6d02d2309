package commands

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassphrase reads a passphrase from the terminal without echo.
// When confirm is set (encryption), it asks twice and requires both entries
// to match. Fails when stdin is not a terminal - scripted callers must pass
// key material explicitly.
func promptPassphrase(confirm bool) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", errors.New("no key material: provide --key, --key-file or --passphrase")
	}

	fmt.Fprint(os.Stderr, "Passphrase: ")

	first, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	if len(first) == 0 {
		return "", errors.New("empty passphrase")
	}

	if !confirm {
		return string(first), nil
	}

	fmt.Fprint(os.Stderr, "Confirm passphrase: ")

	second, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading passphrase confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passphrases do not match")
	}

	return string(first), nil
}
