package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WCAG 2.0 contrast thresholds.
const (
	// RatioAA is the minimum for normal text at level AA.
	RatioAA = 4.5
	// RatioAALarge is the minimum for large text at level AA.
	RatioAALarge = 3.0
	// RatioAAA is the minimum for normal text at level AAA.
	RatioAAA = 7.0
	// RatioAAALarge is the minimum for large text at level AAA.
	RatioAAALarge = 4.5

	// MinRatio and MaxRatio bound every achievable contrast ratio.
	MinRatio = 1.0
	MaxRatio = 21.0
)

// ErrRatioOutOfRange is returned for a required ratio outside [MinRatio, MaxRatio].
var ErrRatioOutOfRange = errors.New("contrast ratio out of range [1, 21]")

// ValidateRatio reports whether r is an achievable contrast ratio.
func ValidateRatio(r float64) error {
	if math.IsNaN(r) || r < MinRatio || r > MaxRatio {
		return fmt.Errorf("%w: %v", ErrRatioOutOfRange, r)
	}
	return nil
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// A colorful.Color is measured on its unrounded channels.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	var rf, gf, bf float64
	if fc, ok := c.(colorful.Color); ok {
		rf, gf, bf = fc.R, fc.G, fc.B
	} else {
		r, g, b, _ := c.RGBA()
		rf = float64(r) / 0xffff
		gf = float64(g) / 0xffff
		bf = float64(b) / 0xffff
	}

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(gf) + 0.0722*gammaCorrect(bf)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// IsAccessible reports whether the two colours reach the required ratio.
func IsAccessible(c1, c2 color.Color, required float64) bool {
	return ContrastRatio(c1, c2) >= required
}
