// Package integration_test provides end-to-end tests for xiwal CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated XIWAL_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"xiwal/test/integration/harness"
)

// Dominant grey followed by one color per hue sector
var wallpaperColors = []string{"#808080", "#ff0080", "#c08000", "#40a000", "#00a0a0", "#4060ff", "#a040e0"}

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	harness.CleanupBinary()

	os.Exit(code)
}

func generateArgs(extra ...string) []string {
	return append(append([]string{"--no-preview"}, extra...), wallpaperColors...)
}
