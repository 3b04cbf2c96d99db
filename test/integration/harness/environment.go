package harness

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own XIWAL_HOME.
type TestEnvironment struct {
	TTYPath   string
	XiwalHome string
	binDir    string
	extraEnv  map[string]string
	stdin     string
	tb        testing.TB
	workDir   string
}

// NewTestEnvironment creates an isolated test environment with a temp XIWAL_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	xiwalHome := filepath.Join(root, "home")
	workDir := filepath.Join(root, "work")
	for _, dir := range []string{xiwalHome, workDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// Applied schemes go to a plain file instead of the real terminals
	tty := filepath.Join(root, "tty")
	if err := os.WriteFile(tty, nil, 0644); err != nil {
		tb.Fatalf("Failed to create tty file: %v", err)
	}

	return &TestEnvironment{
		TTYPath:   tty,
		XiwalHome: xiwalHome,
		extraEnv:  make(map[string]string),
		tb:        tb,
		workDir:   workDir,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out XIWAL_* variables and sets:
//   - XIWAL_HOME to the temp directory
//   - XIWAL_DEBUG to empty string (disables debug logging)
//   - XIWAL_TTYS to a plain file standing in for the open terminals
//   - PATH with the fake tool directory first, when one was installed
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["XIWAL_HOME"] = true
	overrideKeys["XIWAL_DEBUG"] = true
	if e.binDir != "" {
		overrideKeys["PATH"] = true
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing XIWAL_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "XIWAL_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"XIWAL_HOME="+e.XiwalHome,
		"XIWAL_DEBUG=",
		"XIWAL_TTYS="+e.TTYPath,
	)
	if e.binDir != "" {
		env = append(env, "PATH="+e.binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// command prepares binary to run in the work directory with the isolated
// environment and any stdin set by SetStdin.
func (e *TestEnvironment) command(ctx context.Context, binary string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.Environ()
	if e.stdin != "" {
		cmd.Stdin = strings.NewReader(e.stdin)
	}
	return cmd
}

// DBPath returns the path to the test scheme cache.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.XiwalHome, "cache.db")
}

// SequencesPath returns where applied escape sequences are saved.
func (e *TestEnvironment) SequencesPath() string {
	return filepath.Join(e.XiwalHome, "sequences")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// SetStdin sets the input piped to the next commands, for confirmation prompts.
func (e *TestEnvironment) SetStdin(input string) {
	e.stdin = input
}

// WriteSettings writes settings.json into XIWAL_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.Marshal(settings)
	if err != nil {
		e.tb.Fatalf("Failed to encode settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.XiwalHome, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
