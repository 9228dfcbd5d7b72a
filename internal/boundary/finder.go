// Package boundary finds, for a fixed hue, the lightness at which a colour
// stops meeting a required contrast ratio against a reference colour, and
// assembles those boundaries into SVG regions.
package boundary

import (
	"fmt"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

// direction describes a linear scan over the lightness axis.
type direction struct {
	from, to, step int
}

var (
	// ascending scans from black to white; used for foregrounds on a light reference.
	ascending = direction{from: 0, to: 100, step: 1}
	// descending scans from white down to lightness 1; used for backgrounds behind a dark reference.
	descending = direction{from: 100, to: 1, step: -1}
)

func (d direction) contains(l int) bool {
	if d.step > 0 {
		return l <= d.to
	}
	return l >= d.to
}

// search holds the inputs shared by every column of one region.
type search struct {
	hue       float64
	reference colour.RGB
	ratio     float64
	transform colour.Transform
	dir       direction
}

func (s search) inaccessible(saturation, lightness int) bool {
	c := s.transform.Apply(colour.HSL{H: s.hue, S: float64(saturation), L: float64(lightness)})
	return colour.ContrastRatio(c, s.reference) < s.ratio
}

// threshold returns the first lightness along the scan direction whose
// contrast against the reference falls below the required ratio. When every
// lightness is accessible it returns 100 and found is false.
func (s search) threshold(saturation int) (lightness int, found bool) {
	for l := s.dir.from; s.dir.contains(l); l += s.dir.step {
		if s.inaccessible(saturation, l) {
			return l, true
		}
	}
	return 100, false
}

func (s search) region(kind Kind, saturations int) *Region {
	r := &Region{
		Kind:          kind,
		Hue:           s.hue,
		RequiredRatio: s.ratio,
		Reference:     s.reference,
		Columns:       make([]Column, 0, saturations),
	}
	for sat := 0; sat < saturations; sat++ {
		l, found := s.threshold(sat)
		r.Columns = append(r.Columns, Column{Saturation: sat, Lightness: l, Found: found})
	}
	return r
}

func validate(hue, ratio float64) error {
	if err := colour.ValidateHue(hue); err != nil {
		return err
	}
	return colour.ValidateRatio(ratio)
}

// Foreground returns the region of foreground colours of the given hue that
// fail the required ratio against background. Saturation is sampled 0..100
// inclusive and each column is scanned from lightness 0 upwards.
//
// The background must be white unless WithAnyReference is given.
func Foreground(hue float64, background colour.RGB, ratio float64, opts ...Option) (*Region, error) {
	o := newOptions(opts)
	if err := validate(hue, ratio); err != nil {
		return nil, fmt.Errorf("foreground boundary: %w", err)
	}
	if !o.anyReference && background != colour.White {
		return nil, fmt.Errorf("%w (got %s)", ErrUnsupportedBackground, background.Hex())
	}

	s := search{hue: hue, reference: background, ratio: ratio, transform: o.transform, dir: ascending}
	return s.region(KindForeground, 101), nil
}

// Background returns the region of background colours of the given hue that
// fail the required ratio against foreground. Saturation is sampled 0..99
// and each column is scanned from lightness 100 down to 1.
//
// Candidates pass through the transform given with WithTransform before
// their contrast is evaluated. The foreground must be black unless
// WithAnyReference is given.
func Background(hue float64, foreground colour.RGB, ratio float64, opts ...Option) (*Region, error) {
	o := newOptions(opts)
	if err := validate(hue, ratio); err != nil {
		return nil, fmt.Errorf("background boundary: %w", err)
	}
	if !o.anyReference && foreground != colour.Black {
		return nil, fmt.Errorf("%w (got %s)", ErrUnsupportedForeground, foreground.Hex())
	}

	s := search{hue: hue, reference: foreground, ratio: ratio, transform: o.transform, dir: descending}
	return s.region(KindBackground, 100), nil
}
