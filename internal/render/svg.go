package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const patternID = "diagonalStripes"

// WriteSVG writes a standalone SVG document sized px square with a 0-100
// view box, holding both regions filled with a diagonal stripe pattern.
func (o *Overlay) WriteSVG(w io.Writer, px int) error {
	if px <= 0 {
		return fmt.Errorf("invalid size: %d", px)
	}
	fill, opacity, stroke := o.stripe()

	canvas := svg.New(w)
	canvas.Startview(px, px, 0, 0, 100, 100)
	canvas.Title(fmt.Sprintf("Inaccessible colours for %s at %.1f:1", o.Cursor, o.Check.RequiredRatio))

	canvas.Def()
	canvas.Pattern(patternID, 0, 0, stripePeriod, stripePeriod, "user", `patternTransform="rotate(45)"`)
	canvas.Rect(0, 0, stripeWidth, stripePeriod,
		fmt.Sprintf(`fill="%s"`, fill),
		fmt.Sprintf(`fill-opacity="%g"`, opacity))
	canvas.PatternEnd()
	canvas.DefEnd()

	canvas.Gtransform("translate(0,0)")
	for _, r := range o.Regions() {
		canvas.Path(r.Path(),
			fmt.Sprintf(`fill="url(#%s)"`, patternID),
			fmt.Sprintf(`stroke="%s"`, stroke),
			`stroke-width="2"`,
			fmt.Sprintf(`data-kind="%s"`, r.Kind))
	}
	canvas.Gend()
	canvas.End()
	return nil
}
