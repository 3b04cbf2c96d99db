package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch widths in cells
const (
	baseSwatchWidth = 4
	cubeSwatchWidth = 2
	greySwatchWidth = 3
)

// Previewer renders palettes as rows of colored swatches
type Previewer struct {
	renderer *lipgloss.Renderer
}

// NewPreviewer creates a Previewer whose color support follows w
func NewPreviewer(w io.Writer) *Previewer {
	return &Previewer{renderer: lipgloss.NewRenderer(w)}
}

// NewPreviewerWithRenderer creates a Previewer for an existing renderer
func NewPreviewerWithRenderer(renderer *lipgloss.Renderer) *Previewer {
	return &Previewer{renderer: renderer}
}

// Render returns the base 16 colors as two rows of eight. A 256 color
// palette adds the cube as six rows of 36 and the grey ramp as one row.
func (p *Previewer) Render(colors []string) string {
	var rows []string

	base := colors[:min(len(colors), 16)]
	for start := 0; start < len(base); start += 8 {
		rows = append(rows, p.row(base[start:min(start+8, len(base))], baseSwatchWidth))
	}

	if len(colors) > 16 {
		extended := colors[16:]
		cube := extended[:min(len(extended), 216)]
		for start := 0; start < len(cube); start += 36 {
			rows = append(rows, p.row(cube[start:min(start+36, len(cube))], cubeSwatchWidth))
		}
		if len(extended) > 216 {
			rows = append(rows, p.row(extended[216:], greySwatchWidth))
		}
	}

	return strings.Join(rows, "\n")
}

func (p *Previewer) row(colors []string, width int) string {
	cell := strings.Repeat(" ", width)
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(p.renderer.NewStyle().Background(lipgloss.Color(c)).Render(cell))
	}
	return b.String()
}
