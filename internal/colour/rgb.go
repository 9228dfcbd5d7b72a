// Package colour provides the colour types, conversions and WCAG contrast
// primitives used by the boundary search.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	// White is pure white, the only background the foreground finder accepts by default.
	White = RGB{R: 255, G: 255, B: 255}

	// Black is pure black, the only foreground the background finder accepts by default.
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// HSL converts the colour to HSL with saturation and lightness in percent.
func (rgb RGB) HSL() HSL {
	h, s, l := rgb.colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

func (rgb RGB) colorful() colorful.Color {
	c, _ := colorful.MakeColor(rgb)
	return c
}

// FromColorful rounds a colour to 8-bit channels for display.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#rgb", "#rrggbb" or the same without the leading "#".
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Parse accepts either a hex colour or a CSS "hsl(h, s%, l%)" expression.
func Parse(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(trimmed), "hsl") {
		hsl, err := ParseHSL(trimmed)
		if err != nil {
			return RGB{}, err
		}
		return hsl.RGB(), nil
	}
	return ParseHex(trimmed)
}
