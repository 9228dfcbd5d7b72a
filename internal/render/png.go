package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
)

// areaColour returns the colour-area pixel at (x, y): saturation grows to
// the right and lightness grows upwards.
func areaColour(hue float64, x, y, px int) colour.RGB {
	last := float64(px - 1)
	if last <= 0 {
		last = 1
	}
	s := float64(x) * 100 / last
	l := 100 - float64(y)*100/last
	return colour.HSL{H: hue, S: s, L: l}.RGB()
}

// stripes is an unbounded image of diagonal stripes in user space.
type stripes struct {
	on     color.NRGBA
	width  int
	period int
}

func (s stripes) ColorModel() color.Model { return color.NRGBAModel }

func (s stripes) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (s stripes) At(x, y int) color.Color {
	d := (x + y) % s.period
	if d < 0 {
		d += s.period
	}
	if d < s.width {
		return s.on
	}
	return color.NRGBA{}
}

// WritePNG rasterises the colour area for the cursor's hue at px square and
// paints both regions over it with the stripe pattern.
func (o *Overlay) WritePNG(w io.Writer, px int) error {
	img, err := o.Image(px)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Image returns the rendered overlay.
func (o *Overlay) Image(px int) (*image.RGBA, error) {
	if px < 2 {
		return nil, fmt.Errorf("invalid size: %d", px)
	}

	img := image.NewRGBA(image.Rect(0, 0, px, px))
	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			c := areaColour(o.Cursor.H, x, y, px)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	src := o.stripeSource(px)
	for _, r := range o.Regions() {
		z := rasterise(r, px)
		z.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img, nil
}

func (o *Overlay) stripeSource(px int) stripes {
	on := color.NRGBA{R: 255, G: 255, B: 255}
	opacity := passOpacity
	if !o.Check.Passes {
		on = color.NRGBA{R: 0xE5, G: 0x10, B: 0x10}
		opacity = failOpacity
	}
	on.A = uint8(opacity*255 + 0.5)

	// Scale the 10-unit pattern of the view box to pixels.
	period := max(2, stripePeriod*px/100)
	return stripes{on: on, width: max(1, period/2), period: period}
}

// rasterise builds the polygon of a region in pixel space.
func rasterise(r *boundary.Region, px int) *vector.Rasterizer {
	scale := float32(px) / 100
	base := float32(r.Baseline()) * scale

	z := vector.NewRasterizer(px, px)
	z.MoveTo(0, base)
	for _, p := range r.Points() {
		z.LineTo(float32(p.X)*scale, float32(p.Y)*scale)
	}
	z.LineTo(float32(px), base)
	z.ClosePath()
	return z
}
