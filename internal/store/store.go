// Package store reads and writes the text artifacts passed between
// derivation stages.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/complex-gh/walletgen/internal/log"
)

// ErrNotFound is returned by Read when the artifact file does not exist.
var ErrNotFound = errors.New("artifact not found")

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// PromptConfirmer writes the prompt to Out and reads one line from In. Only
// "yes", in any case, counts as confirmation.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (p PromptConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return false, fmt.Errorf("could not write prompt: %w", err)
	}
	answer, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("could not read answer: %w", err)
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is "yes", ignoring case and surrounding space.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// Store persists artifacts as small text files.
type Store struct {
	confirm   Confirmer
	assumeYes bool
}

// New returns a Store. When assumeYes is set existing files are replaced
// without calling confirm.
func New(confirm Confirmer, assumeYes bool) *Store {
	return &Store{confirm: confirm, assumeYes: assumeYes}
}

// Read returns the content of the artifact at path with surrounding
// whitespace removed.
func (s *Store) Read(path string) (string, error) {
	// G304: path is user-provided input, which is expected for a CLI tool
	b, err := os.ReadFile(path) //nolint:gosec
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: expected file '%s' not found: use --from to specify another file", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	log.Store.Debug().Str("file", path).Msg("read artifact")
	return strings.TrimSpace(string(b)), nil
}

// Write saves content to path. If the file exists the user is asked first;
// a declined overwrite returns false and no error.
func (s *Store) Write(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil && !s.assumeYes {
		ok, err := s.confirm.Confirm(fmt.Sprintf("File '%s' already exists. Overwrite? (yes/no): ", path))
		if err != nil {
			return false, err
		}
		if !ok {
			log.Store.Info().Str("file", path).Msg("overwrite declined")
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return false, fmt.Errorf("could not create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return false, fmt.Errorf("could not write %s: %w", path, err)
	}
	log.Store.Info().Str("file", path).Msg("saved")
	return true, nil
}
