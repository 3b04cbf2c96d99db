package term

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func palette(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = fmt.Sprintf("#%02x%02x%02x", i, 255-i, i/2)
	}
	return colors
}

func TestSequencesBase(t *testing.T) {
	colors := palette(16)
	seq := Sequences(colors)

	for i, c := range colors {
		assert.Contains(t, seq, fmt.Sprintf("\033]4;%d;%s\033\\", i, c))
	}
	assert.True(t, strings.HasSuffix(seq,
		"\033]11;"+colors[0]+"\033\\"+"\033]10;"+colors[15]+"\033\\"))
	assert.Equal(t, 18, strings.Count(seq, "\033]"))
}

func TestSequencesFull(t *testing.T) {
	seq := Sequences(palette(256))

	assert.Contains(t, seq, "\033]4;255;")
	assert.Equal(t, 258, strings.Count(seq, "\033]"))
}

func TestSequencesShortPaletteSkipsDefaults(t *testing.T) {
	seq := Sequences(palette(3))

	assert.Equal(t, 3, strings.Count(seq, "\033]4;"))
	assert.NotContains(t, seq, "\033]10;")
	assert.NotContains(t, seq, "\033]11;")
}

func TestApplyWritesToEveryTarget(t *testing.T) {
	dir := t.TempDir()
	targets := []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}
	for _, path := range targets {
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	applied, err := Apply("seq", targets)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	for _, path := range targets {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "seq", string(data))
	}
}

func TestApplySkipsBrokenTargets(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good")
	require.NoError(t, os.WriteFile(good, nil, 0644))

	applied, err := Apply("seq", []string{filepath.Join(dir, "missing"), good})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
}

func TestApplyFailsWhenNothingAccepts(t *testing.T) {
	_, err := Apply("seq", []string{filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, ErrNoTerminals)

	_, err = Apply("seq", nil)
	assert.ErrorIs(t, err, ErrNoTerminals)
}

func TestWriteSequencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sequences")

	require.NoError(t, WriteSequencesFile(path, "a much longer first write"))
	require.NoError(t, WriteSequencesFile(path, "short"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestWriteSequencesFileConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequences")
	writes := []string{Sequences(palette(16)), Sequences(palette(256))}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, WriteSequencesFile(path, writes[i%2]))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, writes, string(data))
}

func TestDefaultTTYsOverride(t *testing.T) {
	t.Setenv("XIWAL_TTYS", "/tmp/a"+string(os.PathListSeparator)+"/tmp/b")

	ttys, err := DefaultTTYs()
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, ttys)
}

func TestWriterUsesConfiguredTargets(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tty")
	require.NoError(t, os.WriteFile(target, nil, 0644))
	seqPath := filepath.Join(dir, "sequences")

	writer := NewWriterForTTYs([]string{target}, seqPath)

	applied, err := writer.Apply("seq")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	require.NoError(t, writer.Save("seq"))
	data, err := os.ReadFile(seqPath)
	require.NoError(t, err)
	assert.Equal(t, "seq", string(data))
}

func newTrueColorPreviewer() *Previewer {
	renderer := lipgloss.NewRenderer(&bytes.Buffer{})
	renderer.SetColorProfile(termenv.TrueColor)
	return NewPreviewerWithRenderer(renderer)
}

func TestPreviewBase(t *testing.T) {
	colors := palette(16)
	colors[0] = "#ff0000"

	out := newTrueColorPreviewer().Render(colors)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "48;2;255;0;0")
	assert.Equal(t, 8*baseSwatchWidth, lipgloss.Width(rows[0]))
	assert.Equal(t, 8*baseSwatchWidth, lipgloss.Width(rows[1]))
}

func TestPreviewFull(t *testing.T) {
	out := newTrueColorPreviewer().Render(palette(256))
	rows := strings.Split(out, "\n")

	require.Len(t, rows, 2+6+1)
	for _, row := range rows[2:8] {
		assert.Equal(t, 36*cubeSwatchWidth, lipgloss.Width(row))
	}
	assert.Equal(t, 24*greySwatchWidth, lipgloss.Width(rows[8]))
}

func TestPreviewWithoutColorSupport(t *testing.T) {
	renderer := lipgloss.NewRenderer(&bytes.Buffer{})
	renderer.SetColorProfile(termenv.Ascii)

	out := NewPreviewerWithRenderer(renderer).Render(palette(16))
	assert.NotContains(t, out, "\033[")
	assert.Equal(t, strings.Repeat(" ", 32)+"\n"+strings.Repeat(" ", 32), out)
}
