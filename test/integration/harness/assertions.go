package harness

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// describe renders both streams for failure messages
func (r CommandResult) describe() string {
	return "\nStdout: " + r.Stdout + "\nStderr: " + r.Stderr
}

// AssertSuccess fails the test unless xiwal exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure fails the test if xiwal exited 0.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected a failing exit code"+result.describe())
}

// AssertExitCode fails the test unless xiwal exited with expected.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "unexpected exit code"+result.describe())
}

// AssertStdoutContains fails the test unless stdout contains expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout mismatch"+result.describe())
}

// AssertStdoutNotContains fails the test if stdout contains unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout mismatch"+result.describe())
}

// AssertStderrContains fails the test unless stderr contains expected.
// Errors and apply notices go to stderr; stdout only carries the scheme.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr mismatch"+result.describe())
}

// AssertValidJSON decodes stdout into target, stopping the test on failure.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON"+result.describe())
}

// AssertJSONContains decodes stdout as an object and checks one of its keys.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}

// AssertHexScheme parses a scheme printed in the hex or list format and
// checks it holds size lowercase #rrggbb colors. It returns the colors.
func AssertHexScheme(tb testing.TB, result CommandResult, size int) []string {
	tb.Helper()

	colors := strings.FieldsFunc(result.Stdout, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
	require.Len(tb, colors, size, "scheme size mismatch"+result.describe())
	for i, color := range colors {
		assert.Regexp(tb, hexColor, color, "color %d is not #rrggbb", i)
	}
	return colors
}

// AssertSameScheme checks that two runs printed the same scheme.
func AssertSameScheme(tb testing.TB, want, got CommandResult) {
	tb.Helper()
	assert.Equal(tb, strings.TrimSpace(want.Stdout), strings.TrimSpace(got.Stdout), "schemes differ")
}
