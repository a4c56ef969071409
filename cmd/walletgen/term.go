package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/walletgen/internal/store"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd
)

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stderr.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// renderError prints err to stderr, in a styled block when stderr is a
// terminal.
func renderError(err error) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	b := strings.Builder{}
	b.WriteRune('\n')
	renderBlock(&b, errorStyle, getWidth(maxWidth), "Error: "+err.Error())
	_, _ = fmt.Fprint(os.Stderr, b.String())
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// confirmOverwrite asks on the controlling terminal, falling back to
// stdin/stdout when there is none.
func confirmOverwrite(prompt string) (bool, error) {
	t, err := tty.Open()
	if err != nil {
		return store.PromptConfirmer{In: os.Stdin, Out: os.Stdout}.Confirm(prompt)
	}
	defer t.Close() //nolint: errcheck

	_, _ = fmt.Fprint(t.Output(), prompt)
	answer, err := t.ReadString()
	if err != nil {
		return false, fmt.Errorf("could not read answer: %w", err)
	}
	return store.IsYes(answer), nil
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

// askSeedPassphrase reads the BIP39 passphrase twice. A typo would silently
// give a different key, so both entries must match.
func askSeedPassphrase() (string, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	first, err := readPassword("Enter the BIP39 passphrase: ")
	if err != nil {
		return "", err
	}
	fmt.Fprintf(os.Stderr, "\n")
	second, err := readPassword("Repeat the BIP39 passphrase: ")
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passphrases do not match")
	}
	return string(first), nil
}

func askKeyPassphrase(path string) ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword(fmt.Sprintf("Enter the passphrase to unlock %q: ", path))
}
