package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
)

// Preview cell glyphs.
const (
	glyphCursor    = "/"
	glyphSelection = "\\"
	glyphBoth      = "X"
	glyphClear     = " "
)

// PreviewOptions sizes the terminal grid.
type PreviewOptions struct {
	Columns int
	Rows    int
}

// DefaultPreviewOptions returns a grid that fits an 80 column terminal.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Columns: 51, Rows: 21}
}

// axisValue maps a grid index onto 0-100.
func axisValue(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Round(float64(i) * 100 / float64(n-1))
}

func cellGlyph(regions []*boundary.Region, c colour.HSL) string {
	inCursor := regions[0].Contains(c)
	inSelection := regions[1].Contains(c)
	switch {
	case inCursor && inSelection:
		return glyphBoth
	case inCursor:
		return glyphCursor
	case inSelection:
		return glyphSelection
	default:
		return glyphClear
	}
}

// WritePreview draws the colour area as a grid of coloured cells with the
// regions hatched, followed by a one line legend. Colours are only emitted
// when w is a terminal that supports them.
func (o *Overlay) WritePreview(w io.Writer, opts PreviewOptions) error {
	if opts.Columns < 2 || opts.Rows < 2 {
		return fmt.Errorf("invalid preview size: %dx%d", opts.Columns, opts.Rows)
	}

	renderer := lipgloss.NewRenderer(w)
	regions := o.Regions()
	cursor := renderer.NewStyle().Bold(true)

	cursorCol := int(math.Round(o.Cursor.S * float64(opts.Columns-1) / 100))
	cursorRow := int(math.Round((100 - o.Cursor.L) * float64(opts.Rows-1) / 100))

	var b strings.Builder
	for row := 0; row < opts.Rows; row++ {
		l := 100 - axisValue(row, opts.Rows)
		for col := 0; col < opts.Columns; col++ {
			c := colour.HSL{H: o.Cursor.H, S: axisValue(col, opts.Columns), L: l}
			rgb := c.RGB()

			ink := colour.Black
			if colour.ContrastRatio(rgb, colour.White) > colour.ContrastRatio(rgb, colour.Black) {
				ink = colour.White
			}
			style := renderer.NewStyle().
				Background(lipgloss.Color(rgb.Hex())).
				Foreground(lipgloss.Color(ink.Hex()))

			glyph := cellGlyph(regions, c)
			if row == cursorRow && col == cursorCol {
				style = style.Inherit(cursor)
				glyph = "o"
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteByte('\n')
	}

	status := "pass"
	if !o.Check.Passes {
		status = "fail"
	}
	fmt.Fprintf(&b, "%s %s=cursor %s=selection %s=both  cursor %.2f:1 selection %.2f:1 required %.1f:1 %s\n",
		o.Cursor, glyphCursor, glyphSelection, glyphBoth,
		o.Check.CursorContrast, o.Check.DerivedContrast, o.Check.RequiredRatio, status)

	_, err := io.WriteString(w, b.String())
	return err
}
