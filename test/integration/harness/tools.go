package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// InstallFakeMagick puts a "magick" script on PATH that prints the given
// colors as ImageMagick txt: output, whatever image it is asked about.
// It also creates an image file and returns its path.
func (e *TestEnvironment) InstallFakeMagick(colors ...string) string {
	e.tb.Helper()

	if runtime.GOOS == "windows" {
		e.tb.Skip("fake ImageMagick needs a POSIX shell")
	}

	var out strings.Builder
	out.WriteString("# ImageMagick pixel enumeration: ")
	fmt.Fprintf(&out, "%d,1,0,255,srgb\n", len(colors))
	for i, c := range colors {
		fmt.Fprintf(&out, "%d,0: (0,0,0)  %s  srgb(0,0,0)\n", i, strings.ToUpper(c))
	}

	e.binDir = filepath.Join(filepath.Dir(e.XiwalHome), "bin")
	if err := os.MkdirAll(e.binDir, 0755); err != nil {
		e.tb.Fatalf("Failed to create bin directory: %v", err)
	}

	script := "#!/bin/sh\ncat <<'TXT'\n" + out.String() + "TXT\n"
	if err := os.WriteFile(filepath.Join(e.binDir, "magick"), []byte(script), 0755); err != nil {
		e.tb.Fatalf("Failed to write fake magick: %v", err)
	}

	image := filepath.Join(e.workDir, "wallpaper.png")
	if err := os.WriteFile(image, []byte("not really a png"), 0644); err != nil {
		e.tb.Fatalf("Failed to write image: %v", err)
	}
	return image
}
