package term

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"xiwal/logging"
	"xiwal/ports"
)

// ErrNoTerminals is returned when sequences reached no terminal at all
var ErrNoTerminals = errors.New("no terminal accepted the color sequences")

// ttyGlob matches the pseudo-terminals of running shells
const ttyGlob = "/dev/pts/[0-9]*"

// DefaultTTYs lists the pseudo-terminals of the current machine.
// XIWAL_TTYS, a path list, replaces the lookup.
func DefaultTTYs() ([]string, error) {
	if list := os.Getenv("XIWAL_TTYS"); list != "" {
		return filepath.SplitList(list), nil
	}
	return filepath.Glob(ttyGlob)
}

// Apply writes the sequences to every tty and returns how many accepted
// them. A tty that cannot be opened or written is logged and skipped.
func Apply(sequences string, ttys []string) (int, error) {
	applied := 0
	for _, path := range ttys {
		if err := writeTTY(path, sequences); err != nil {
			logging.Logger.Warn("Skipping terminal", "tty", path, "error", err)
			continue
		}
		logging.Logger.Debug("Applied sequences", "tty", path)
		applied++
	}

	if applied == 0 {
		return 0, fmt.Errorf("%w (tried %d)", ErrNoTerminals, len(ttys))
	}
	return applied, nil
}

func writeTTY(path, sequences string) error {
	tty, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()

	_, err = tty.WriteString(sequences)
	return err
}

// WriteSequencesFile stores the sequences under an exclusive lock so that
// new shells can replay them with cat
func WriteSequencesFile(path, sequences string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sequences directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open sequences file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.WriteString(sequences); err != nil {
		return fmt.Errorf("failed to write sequences: %w", err)
	}

	return nil
}

// Writer implements ports.TerminalWriter for the local machine
type Writer struct {
	listTTYs      func() ([]string, error)
	sequencesPath string
}

// Verify interface compliance at compile time
var _ ports.TerminalWriter = (*Writer)(nil)

// NewWriter creates a Writer that targets every pseudo-terminal and saves
// sequences to sequencesPath
func NewWriter(sequencesPath string) *Writer {
	return &Writer{listTTYs: DefaultTTYs, sequencesPath: sequencesPath}
}

// NewWriterForTTYs creates a Writer with a fixed list of terminals
func NewWriterForTTYs(ttys []string, sequencesPath string) *Writer {
	return &Writer{
		listTTYs:      func() ([]string, error) { return ttys, nil },
		sequencesPath: sequencesPath,
	}
}

// Apply implements TerminalWriter.Apply
func (w *Writer) Apply(sequences string) (int, error) {
	ttys, err := w.listTTYs()
	if err != nil {
		return 0, fmt.Errorf("failed to list terminals: %w", err)
	}
	return Apply(sequences, ttys)
}

// Save implements TerminalWriter.Save
func (w *Writer) Save(sequences string) error {
	return WriteSequencesFile(w.sequencesPath, sequences)
}
