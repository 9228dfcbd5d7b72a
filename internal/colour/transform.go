package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Transform maps a candidate colour to the colour that is actually displayed
// before its contrast is evaluated. The result is not rounded to 8 bits.
type Transform interface {
	Apply(c HSL) colorful.Color
}

// TransformFunc adapts a plain function to the Transform interface.
type TransformFunc func(c HSL) colorful.Color

// Apply calls f(c).
func (f TransformFunc) Apply(c HSL) colorful.Color {
	return f(c)
}

// Identity converts the colour without modification.
var Identity Transform = TransformFunc(HSL.Colorful)

// Selection derives a highlight colour from a cursor colour by scaling its
// lightness. Hue and saturation are preserved.
type Selection struct {
	// Factor multiplies the lightness.
	Factor float64
	// Max caps the resulting lightness (percent).
	Max float64
}

// DefaultSelection is the selection colour used for text highlights:
// five times the cursor lightness, capped at 90%.
var DefaultSelection = Selection{Factor: 5, Max: 90}

// Apply implements Transform.
func (s Selection) Apply(c HSL) colorful.Color {
	return HSL{H: c.H, S: c.S, L: math.Min(c.L*s.Factor, s.Max)}.Colorful()
}

// Transform names accepted by LookupTransform.
const (
	TransformIdentity  = "identity"
	TransformSelection = "selection"
)

// TransformNames lists the names LookupTransform resolves.
func TransformNames() []string {
	return []string{TransformIdentity, TransformSelection}
}

// LookupTransform resolves a transform by name. An empty name and "none"
// resolve to Identity.
func LookupTransform(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", TransformIdentity:
		return Identity, nil
	case TransformSelection:
		return DefaultSelection, nil
	default:
		return nil, fmt.Errorf("unknown transform: %s (valid: %s)", name, strings.Join(TransformNames(), ", "))
	}
}
