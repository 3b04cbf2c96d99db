package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXiwalHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		env  string
		want string
	}{
		{"default", "", filepath.Join(homeDir, ".xiwal")},
		{"absolute override", "/tmp/xiwal-test", "/tmp/xiwal-test"},
		{"tilde override", "~/themes", filepath.Join(homeDir, "themes")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XIWAL_HOME", tt.env)
			assert.Equal(t, tt.want, GetXiwalHome())
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XIWAL_HOME", home)

	assert.Equal(t, filepath.Join(home, "cache.db"), GetDBPath())
	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "sequences"), GetSequencesPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "a", "b"), ExpandPath("~/a/b"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}
