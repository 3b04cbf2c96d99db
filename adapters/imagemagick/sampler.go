package imagemagick

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"xiwal/domain"
	"xiwal/lch"
	"xiwal/logging"
	"xiwal/ports"
)

// hexPattern matches the hex column of ImageMagick's txt: output (8 or 16
// bit). The first group is the color; a trailing alpha channel is ignored.
var hexPattern = regexp.MustCompile(`#([0-9A-Fa-f]{12}|[0-9A-Fa-f]{6})(?:[0-9A-Fa-f]{4}|[0-9A-Fa-f]{2})?\b`)

// Sampler implements ports.ColorSampler by running ImageMagick
type Sampler struct {
	binary string
}

// Verify interface compliance at compile time
var _ ports.ColorSampler = (*Sampler)(nil)

// NewSampler creates a Sampler. An empty binary picks "magick" when
// available and falls back to "convert".
func NewSampler(binary string) *Sampler {
	return &Sampler{binary: binary}
}

// Sample implements ColorSampler.Sample. Colors come back in the order
// ImageMagick prints them.
func (s *Sampler) Sample(ctx context.Context, imagePath string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}
	if _, err := os.Stat(imagePath); err != nil {
		return nil, fmt.Errorf("cannot read image: %w", err)
	}

	name, args, err := s.command(imagePath, n)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Sampling image colors", "image", imagePath, "count", n, "binary", name)

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		logging.Logger.Error("ImageMagick failed", "error", err, "stderr", stderr)
		return nil, fmt.Errorf("failed to sample %s: %w\nOutput: %s", imagePath, err, stderr)
	}

	colors, err := ParseColors(string(output))
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Sampled colors", "image", imagePath, "colors", colors)
	return colors, nil
}

// command builds the ImageMagick invocation. Version 7 takes the same
// arguments behind a "magick" front-end.
func (s *Sampler) command(imagePath string, n int) (string, []string, error) {
	args := []string{
		imagePath,
		"-resize", "25%",
		"-alpha", "deactivate",
		"-colors", strconv.Itoa(n),
		"-unique-colors",
		"txt:-",
	}

	if s.binary != "" {
		return s.binary, args, nil
	}
	if path, err := exec.LookPath("magick"); err == nil {
		return path, args, nil
	}
	if path, err := exec.LookPath("convert"); err == nil {
		return path, args, nil
	}
	return "", nil, fmt.Errorf("%w: install ImageMagick (magick or convert)", domain.ErrSamplerNotFound)
}

// ParseColors extracts the colors of ImageMagick txt: output as lowercase
// #rrggbb strings. Comment lines are skipped.
func ParseColors(output string) ([]string, error) {
	var colors []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := hexPattern.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("unexpected ImageMagick output line: %q", line)
		}
		rgb, err := lch.ParseHex(match[1])
		if err != nil {
			return nil, err
		}
		colors = append(colors, lch.FormatHex(rgb))
	}

	if len(colors) == 0 {
		return nil, errors.New("ImageMagick returned no colors")
	}
	return colors, nil
}
