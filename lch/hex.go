package lch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for hex colors with the wrong digit count or non-hex characters
var ErrInvalidFormat = errors.New("invalid hex color")

// ParseHex parses a 3, 6 or 12 digit hex color, with or without a leading '#'.
// 12 digit colors carry 16 bits per channel and are scaled down to [0, 255].
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")

	var width int
	var scale float64
	switch len(digits) {
	case 3:
		width, scale = 1, 17
	case 6:
		width, scale = 2, 1
	case 12:
		width, scale = 4, 1.0/257
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidFormat, s, len(digits))
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*width:(i+1)*width], 16, 16)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		channels[i] = float64(v) * scale
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// FormatHex formats an in-gamut color as lowercase #rrggbb, truncating each
// channel. Callers must clamp first; out-of-range channels are not handled.
func FormatHex(rgb RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", int(rgb.R), int(rgb.G), int(rgb.B))
}

// FromHex parses a hex color straight into LCH
func FromHex(s string) (LCH, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return LCH{}, err
	}
	return RGBToLCH(rgb), nil
}

// ToHex converts an LCH color to an in-gamut hex string
func ToHex(c LCH) string {
	return FormatHex(LCHToRGB(c))
}
