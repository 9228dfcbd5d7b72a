package boundary

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

// Kind identifies which side of a colour pair a region describes.
type Kind int

const (
	// KindForeground regions hold foreground colours that fail against a fixed background.
	KindForeground Kind = iota
	// KindBackground regions hold background colours that fail against a fixed foreground.
	KindBackground
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindForeground:
		return "foreground"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Point is a vertex of a region path in the 0-100 unit square.
// X is the saturation and Y is 100 minus the boundary lightness.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Column is the result of one threshold search.
type Column struct {
	Saturation int `json:"saturation"`
	// Lightness is the first inaccessible lightness, or 100 when none was found.
	Lightness int `json:"lightness"`
	// Found is false when the whole column is accessible.
	Found bool `json:"found"`
}

// Region is the set of inaccessible colours for one hue, stored as one
// boundary per saturation column in ascending saturation order.
type Region struct {
	Kind          Kind       `json:"kind"`
	Hue           float64    `json:"hue"`
	RequiredRatio float64    `json:"requiredRatio"`
	Reference     colour.RGB `json:"reference"`
	Columns       []Column   `json:"columns"`
}

// Baseline is the y coordinate the polygon is closed against.
func (r *Region) Baseline() int {
	if r.Kind == KindBackground {
		return 100
	}
	return 0
}

// Points returns the path vertices between the two baseline corners.
func (r *Region) Points() []Point {
	points := make([]Point, len(r.Columns))
	for i, col := range r.Columns {
		points[i] = Point{X: col.Saturation, Y: 100 - col.Lightness}
	}
	return points
}

// Path renders the region as SVG path data: a moveto at the left baseline
// corner, implicit linetos through every point and back along the right
// baseline corner, then a closepath.
func (r *Region) Path() string {
	base := strconv.Itoa(r.Baseline())

	var b strings.Builder
	b.Grow(8 * (len(r.Columns) + 2))
	b.WriteString("M0 ")
	b.WriteString(base)
	for _, p := range r.Points() {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(p.Y))
	}
	b.WriteString(" 100 ")
	b.WriteString(base)
	b.WriteString(" Z")
	return b.String()
}

// Boundary returns the column for the given saturation.
func (r *Region) Boundary(saturation int) (Column, bool) {
	for _, col := range r.Columns {
		if col.Saturation == saturation {
			return col, true
		}
	}
	return Column{}, false
}

// Contains reports whether the colour lies inside the region polygon.
// Saturation is rounded to the nearest sampled column.
func (r *Region) Contains(c colour.HSL) bool {
	if len(r.Columns) == 0 {
		return false
	}
	s := int(c.S + 0.5)
	if last := r.Columns[len(r.Columns)-1].Saturation; s > last {
		s = last
	}
	col, ok := r.Boundary(s)
	if !ok || !col.Found {
		return false
	}
	if r.Kind == KindBackground {
		return c.L <= float64(col.Lightness)
	}
	return c.L >= float64(col.Lightness)
}
