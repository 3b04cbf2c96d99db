package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiwal/test/integration/harness"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

// seedScheme generates a scheme and returns its id
func seedScheme(t *testing.T, env *harness.TestEnvironment, extra ...string) string {
	t.Helper()
	result := harness.RunCommand(t, env, generateArgs(append([]string{"--format", "json"}, extra...)...)...)
	harness.AssertSuccess(t, result)

	var out schemeJSON
	harness.AssertValidJSON(t, result, &out)
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestCacheList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	empty := harness.RunCommand(t, env, "cache", "list")
	harness.AssertSuccess(t, empty)
	harness.AssertStdoutContains(t, empty, "Total: 0 schemes")

	id := seedScheme(t, env)
	seedScheme(t, env, "--full")

	table := harness.RunCommand(t, env, "cache")
	harness.AssertSuccess(t, table)
	harness.AssertStdoutContains(t, table, id[:8])
	harness.AssertStdoutContains(t, table, "Total: 2 schemes")

	jsonResult := harness.RunCommand(t, env, "cache", "list", "--format", "json", "--limit", "1")
	harness.AssertSuccess(t, jsonResult)
	var entries []schemeJSON
	harness.AssertValidJSON(t, jsonResult, &entries)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Full, "most recent first")
}

func TestCacheShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := seedScheme(t, env)

	result := harness.RunCommand(t, env, "cache", "show", id[:8])
	harness.AssertSuccess(t, result)
	var out schemeJSON
	harness.AssertValidJSON(t, result, &out)
	assert.Equal(t, id, out.ID)
	assert.Len(t, out.Colors, 16)

	missing := harness.RunCommand(t, env, "cache", "show", "ffffffff-nope")
	harness.AssertFailure(t, missing)
	harness.AssertStderrContains(t, missing, "scheme not found")
}

func TestCacheDel(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantGone  bool
		wantInOut string
	}{
		{name: "forced", args: []string{"-f"}, wantGone: true, wantInOut: "Deleted scheme"},
		{name: "confirmed", stdin: "y\n", wantGone: true, wantInOut: "Deleted scheme"},
		{name: "cancelled", stdin: "n\n", wantGone: false, wantInOut: "Cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			id := seedScheme(t, env)
			env.SetStdin(tt.stdin)

			result := harness.RunCommand(t, env, append([]string{"cache", "del", id[:8]}, tt.args...)...)
			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, tt.wantInOut)

			env.SetStdin("")
			list := harness.RunCommand(t, env, "cache", "list")
			harness.AssertSuccess(t, list)
			if tt.wantGone {
				harness.AssertStdoutNotContains(t, list, id[:8])
			} else {
				harness.AssertStdoutContains(t, list, id[:8])
			}
		})
	}
}

func TestCacheClear(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedScheme(t, env)
	seedScheme(t, env, "--full")

	result := harness.RunCommand(t, env, "cache", "clear", "--force")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Removed 2 schemes")

	list := harness.RunCommand(t, env, "cache", "list")
	harness.AssertStdoutContains(t, list, "Total: 0 schemes")
}

func TestRestore(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	none := harness.RunCommand(t, env, "restore")
	harness.AssertFailure(t, none)
	harness.AssertStderrContains(t, none, "no cached scheme to restore")

	seedScheme(t, env)
	generated := harness.RunCommand(t, env, generateArgs("--full")...)
	harness.AssertSuccess(t, generated)

	result := harness.RunCommand(t, env, "restore", "--no-preview")
	harness.AssertSuccess(t, result)
	harness.AssertHexScheme(t, result, 256)
	harness.AssertSameScheme(t, generated, result)

	applied := harness.RunCommand(t, env, "restore", "--no-preview", "--apply")
	harness.AssertSuccess(t, applied)
	assert.FileExists(t, env.SequencesPath())
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	for _, args := range [][]string{{"version"}, {"--version"}} {
		result := harness.RunCommand(t, env, args...)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "xiwal dev")
	}
}
