// Package term pushes color schemes to terminals and renders previews.
package term

import (
	"fmt"
	"strings"
)

// Special color indices set alongside the palette
const (
	oscForeground = 10
	oscBackground = 11
)

// BackgroundIndex and ForegroundIndex are the palette entries used for the
// terminal's default background and foreground
const (
	BackgroundIndex = 0
	ForegroundIndex = 15
)

// Sequences returns the OSC escape sequences that load colors into a
// terminal palette, one OSC 4 per entry. With at least 16 colors it also
// sets the default background and foreground.
func Sequences(colors []string) string {
	var b strings.Builder
	for i, c := range colors {
		fmt.Fprintf(&b, "\033]4;%d;%s\033\\", i, c)
	}
	if len(colors) > ForegroundIndex {
		fmt.Fprintf(&b, "\033]%d;%s\033\\", oscBackground, colors[BackgroundIndex])
		fmt.Fprintf(&b, "\033]%d;%s\033\\", oscForeground, colors[ForegroundIndex])
	}
	return b.String()
}
