package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"xiwal/domain"
	"xiwal/logging"
	"xiwal/ports"
	"xiwal/term"
)

// Output formats accepted by --format
const (
	formatHex  = "hex"
	formatJSON = "json"
	formatList = "list"
)

// schemeOutput is the JSON shape of a scheme
type schemeOutput struct {
	Cached bool     `json:"cached"`
	Colors []string `json:"colors"`
	Full   bool     `json:"full"`
	ID     string   `json:"id,omitempty"`
	Inputs []string `json:"inputs"`
	Score  float64  `json:"score"`
	Source string   `json:"source"`
}

func validFormat(format string) bool {
	switch format {
	case formatHex, formatJSON, formatList:
		return true
	}
	return false
}

// writeScheme prints the colors of entry in the requested format
func writeScheme(w io.Writer, entry *domain.SchemeEntry, format string, cached bool) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(schemeOutput{
			Cached: cached,
			Colors: entry.Colors,
			Full:   entry.Full,
			ID:     entry.ID,
			Inputs: entry.Inputs,
			Score:  entry.Score,
			Source: entry.Source,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatList:
		_, err := fmt.Fprintln(w, strings.Join(entry.Colors, "\n"))
		return err
	default:
		_, err := fmt.Fprintln(w, strings.Join(entry.Colors, ";"))
		return err
	}
}

// printScheme writes the scheme to stdout, followed by a swatch preview
// unless disabled or the output is JSON
func printScheme(entry *domain.SchemeEntry, format string, cached, noPreview bool) error {
	if err := writeScheme(os.Stdout, entry, format, cached); err != nil {
		return err
	}
	if noPreview || format == formatJSON {
		return nil
	}
	fmt.Println(term.NewPreviewer(os.Stdout).Render(entry.Colors))
	return nil
}

// applyScheme saves the escape sequences for new shells and pushes them to
// the open terminals. Finding no terminal is reported but not fatal.
func applyScheme(terminal ports.TerminalWriter, colors []string) error {
	sequences := term.Sequences(colors)

	if err := terminal.Save(sequences); err != nil {
		return fmt.Errorf("failed to save sequences: %w", err)
	}

	applied, err := terminal.Apply(sequences)
	if err != nil {
		if errors.Is(err, term.ErrNoTerminals) {
			logging.Logger.Warn("No terminal accepted the scheme")
			fmt.Fprintln(os.Stderr, "Warning: no terminal to apply the scheme to")
			return nil
		}
		return fmt.Errorf("failed to apply scheme: %w", err)
	}

	logging.Logger.Info("Scheme applied", "terminals", applied)
	fmt.Fprintf(os.Stderr, "Applied to %d terminal(s)\n", applied)
	return nil
}
