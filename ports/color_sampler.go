package ports

import "context"

// ColorSampler extracts representative colors from an image
type ColorSampler interface {
	// Sample returns up to n hex colors, dominant color first
	Sample(ctx context.Context, imagePath string, n int) ([]string, error)
}
