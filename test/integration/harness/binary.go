package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// commandTimeout bounds a single CLI run; a full 256-color generation
// with a cold cache is the slowest case.
const commandTimeout = 30 * time.Second

// build is the binary shared by every test of the run
var build struct {
	once sync.Once
	dir  string
	path string
	err  error
}

// CommandResult holds what a CLI run wrote and how it exited.
// ExitCode is -1 when the process never produced one (timeout, exec failure).
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles xiwal into a temp directory once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	build.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			build.err = fmt.Errorf("locate module root: %w", err)
			return
		}

		build.dir, err = os.MkdirTemp("", "xiwal-integration-*")
		if err != nil {
			build.err = err
			return
		}
		build.path = filepath.Join(build.dir, "xiwal")

		cmd := exec.Command("go", "build", "-trimpath", "-o", build.path, ".")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			build.err = fmt.Errorf("go build: %w", err)
		}
	})

	return build.path, build.err
}

// CleanupBinary removes the temp directory holding the compiled binary.
func CleanupBinary() {
	if build.dir == "" {
		return
	}
	if err := os.RemoveAll(build.dir); err != nil {
		log.Printf("Warning: failed to remove %s: %v", build.dir, err)
	}
}

// RunCommand runs xiwal inside env and collects its output.
// A run that hangs past commandTimeout is killed and reported as exit -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := env.command(ctx, build.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{ExitCode: exitCode(tb, cmd.Run())}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		tb.Logf("xiwal %s timed out after %v", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func exitCode(tb testing.TB, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	tb.Logf("Command execution error: %v", err)
	return -1
}

// moduleRoot returns the directory holding go.mod, from the test's working directory.
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", err
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", errors.New("not inside a Go module")
	}
	return filepath.Dir(gomod), nil
}
