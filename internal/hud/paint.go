package hud

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Placer writes a string at a 1-based terminal cell.
type Placer interface {
	WriteAt(col, row int, s string)
}

// Span is a run of cells covered by painted text.
type Span struct {
	Col, Row, Width int
}

// Painter styles and places the HUD elements.
type Painter struct {
	plain  lipgloss.Style
	fuel   lipgloss.Style
	banner lipgloss.Style
}

// NewPainter creates a painter for output written to w. The color profile
// is fixed because SSH sessions give no reliable way to detect it.
func NewPainter(w io.Writer) *Painter {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	return &Painter{
		plain:  r.NewStyle().Foreground(lipgloss.Color("15")),
		fuel:   r.NewStyle().Foreground(lipgloss.Color("208")),
		banner: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Paint draws the visible elements of s inside a cols x rows area and
// returns the cells it covered.
func (p *Painter) Paint(dst Placer, s *Surface, cols, rows int) []Span {
	var spans []Span
	put := func(t Text, style lipgloss.Style, col, row int) {
		if !t.Visible {
			return
		}
		text := t.String()
		if col < 1 {
			col = 1
		}
		dst.WriteAt(col, row, style.Render(text))
		spans = append(spans, Span{Col: col, Row: row, Width: len(text)})
	}

	put(s.Health, p.plain, 2, 1)
	put(s.Score, p.plain, cols-len(s.Score.String()), 1)
	put(s.Fuel, p.fuel, 2, rows)
	put(s.Banner, p.banner, (cols-len(s.Banner.String()))/2+1, rows/2)
	return spans
}
