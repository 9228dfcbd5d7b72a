package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrHueOutOfRange is returned for a hue outside [0, 360).
	ErrHueOutOfRange = errors.New("hue out of range [0, 360)")

	// ErrSaturationOutOfRange is returned for a saturation outside [0, 100].
	ErrSaturationOutOfRange = errors.New("saturation out of range [0, 100]")

	// ErrLightnessOutOfRange is returned for a lightness outside [0, 100].
	ErrLightnessOutOfRange = errors.New("lightness out of range [0, 100]")
)

// HSL is a colour in HSL space.
// H is the hue in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ValidateHue reports whether h is a finite hue in [0, 360).
func ValidateHue(h float64) error {
	if math.IsNaN(h) || h < 0 || h >= 360 {
		return fmt.Errorf("%w: %v", ErrHueOutOfRange, h)
	}
	return nil
}

// Validate checks every component against its range.
func (c HSL) Validate() error {
	if err := ValidateHue(c.H); err != nil {
		return err
	}
	if math.IsNaN(c.S) || c.S < 0 || c.S > 100 {
		return fmt.Errorf("%w: %v", ErrSaturationOutOfRange, c.S)
	}
	if math.IsNaN(c.L) || c.L < 0 || c.L > 100 {
		return fmt.Errorf("%w: %v", ErrLightnessOutOfRange, c.L)
	}
	return nil
}

// Colorful converts the colour to RGB without rounding the channels.
// Contrast is evaluated on this value.
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100)
}

// RGB converts the colour to RGB, rounding each channel to the nearest integer.
func (c HSL) RGB() RGB {
	return FromColorful(c.Colorful())
}

// String returns the colour as a CSS "hsl(h, s%, l%)" expression.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatComponent(c.H), formatComponent(c.S), formatComponent(c.L))
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseHSL parses a CSS "hsl(h, s%, l%)" expression. Percent signs are optional
// and components may be separated by commas or spaces.
func ParseHSL(s string) (HSL, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	inner, ok := strings.CutPrefix(trimmed, "hsla(")
	if !ok {
		inner, ok = strings.CutPrefix(trimmed, "hsl(")
	}
	if !ok {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) < 3 {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	var values [3]float64
	for i := range values {
		field := strings.TrimSuffix(strings.TrimSuffix(fields[i], "%"), "deg")
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
		}
		values[i] = v
	}

	c := HSL{H: values[0], S: values[1], L: values[2]}
	if err := c.Validate(); err != nil {
		return HSL{}, err
	}
	return c, nil
}
