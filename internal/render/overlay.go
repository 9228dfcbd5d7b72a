// Package render draws inaccessible-colour regions as an SVG overlay, a PNG
// colour area and a terminal preview.
package render

import (
	"fmt"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
)

// Stripe colours, chosen by whether the cursor colour passes.
const (
	passStripe   = "white"
	failStripe   = "#E51010"
	passStroke   = "rgb(210,210,210)"
	passOpacity  = 0.35
	failOpacity  = 0.5
	stripeWidth  = 5
	stripePeriod = 10
)

// Overlay pairs the cursor region (foreground on white) with the selection
// region (black text on the derived colour) for one cursor colour.
type Overlay struct {
	Cursor    colour.HSL
	Cursors   *boundary.Region
	Selection *boundary.Region
	Check     boundary.CheckResult
}

// NewOverlay computes both regions for the cursor's hue.
func NewOverlay(cursor colour.HSL, ratio float64, t colour.Transform, opts ...boundary.Option) (*Overlay, error) {
	if err := cursor.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cursor colour: %w", err)
	}

	cursors, err := boundary.Foreground(cursor.H, colour.White, ratio, opts...)
	if err != nil {
		return nil, err
	}
	selection, err := boundary.Background(cursor.H, colour.Black, ratio, append(opts[:len(opts):len(opts)], boundary.WithTransform(t))...)
	if err != nil {
		return nil, err
	}
	check, err := boundary.Check(cursor, colour.White, colour.Black, ratio, t)
	if err != nil {
		return nil, err
	}

	return &Overlay{
		Cursor:    cursor,
		Cursors:   cursors,
		Selection: selection,
		Check:     check,
	}, nil
}

// Regions returns the regions in drawing order.
func (o *Overlay) Regions() []*boundary.Region {
	return []*boundary.Region{o.Cursors, o.Selection}
}

func (o *Overlay) stripe() (fill string, opacity float64, stroke string) {
	if o.Check.Passes {
		return passStripe, passOpacity, passStroke
	}
	return failStripe, failOpacity, failStripe
}
