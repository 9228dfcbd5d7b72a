package boundary

import (
	"errors"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

func mustForeground(t *testing.T, hue, ratio float64, opts ...Option) *Region {
	t.Helper()
	r, err := Foreground(hue, colour.White, ratio, opts...)
	if err != nil {
		t.Fatalf("Foreground(%v, white, %v) unexpected error: %v", hue, ratio, err)
	}
	return r
}

func mustBackground(t *testing.T, hue, ratio float64, opts ...Option) *Region {
	t.Helper()
	r, err := Background(hue, colour.Black, ratio, opts...)
	if err != nil {
		t.Fatalf("Background(%v, black, %v) unexpected error: %v", hue, ratio, err)
	}
	return r
}

func TestForegroundPoints(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 17.5 {
		r := mustForeground(t, hue, colour.RatioAA)
		points := r.Points()
		if len(points) != 101 {
			t.Fatalf("hue %v: got %d points, want 101", hue, len(points))
		}
		for i, p := range points {
			if p.X != i {
				t.Fatalf("hue %v: point %d has x=%d, want %d", hue, i, p.X, i)
			}
			if want := 100 - r.Columns[i].Lightness; p.Y != want {
				t.Fatalf("hue %v: point %d has y=%d, want %d", hue, i, p.Y, want)
			}
		}
	}
}

func TestBackgroundPoints(t *testing.T) {
	r := mustBackground(t, 120, colour.RatioAA)
	points := r.Points()
	if len(points) != 100 {
		t.Fatalf("got %d points, want 100", len(points))
	}
	if first, last := points[0].X, points[len(points)-1].X; first != 0 || last != 99 {
		t.Errorf("saturation range = %d..%d, want 0..99", first, last)
	}
}

func TestForegroundKnownBoundaries(t *testing.T) {
	r := mustForeground(t, 210, colour.RatioAA)
	want := map[int]int{0: 47, 10: 48, 40: 48, 50: 48, 80: 47, 100: 46}
	for sat, lightness := range want {
		col, ok := r.Boundary(sat)
		if !ok {
			t.Fatalf("Boundary(%d) missing", sat)
		}
		if col.Lightness != lightness || !col.Found {
			t.Errorf("Boundary(%d) = %+v, want lightness %d", sat, col, lightness)
		}
	}
}

func TestForegroundMatchesIndependentScan(t *testing.T) {
	const (
		hue = 210.0
		sat = 50
	)
	expected := 100
	for l := 0; l <= 100; l++ {
		c := colour.HSL{H: hue, S: sat, L: float64(l)}.Colorful()
		if colour.ContrastRatio(c, colour.White) < colour.RatioAA {
			expected = l
			break
		}
	}
	if expected != 48 {
		t.Fatalf("independent scan found %d, want 48", expected)
	}

	r := mustForeground(t, hue, colour.RatioAA)
	if got := r.Points()[sat]; got.X != sat || got.Y != 100-expected {
		t.Errorf("point at x=%d = %+v, want y=%d", sat, got, 100-expected)
	}
	if !strings.Contains(r.Path(), " 50 52 ") {
		t.Errorf("path does not contain the x=50 vertex: %s", r.Path())
	}
}

func TestForegroundUnroundedThreshold(t *testing.T) {
	// At hue 0, saturation 32 lightness 53 only passes before rounding to 8 bits.
	r := mustForeground(t, 0, colour.RatioAA)
	col, _ := r.Boundary(32)
	if col.Lightness != 54 {
		t.Errorf("Boundary(32).Lightness = %d, want 54", col.Lightness)
	}

	a, err := AnalyseForeground(0, colour.White, colour.RatioAA)
	if err != nil {
		t.Fatalf("AnalyseForeground() unexpected error: %v", err)
	}
	if got := a.Columns[32].Boundary; got != 54 {
		t.Errorf("analysis boundary at saturation 32 = %d, want 54", got)
	}
}

func TestBackgroundKnownBoundaries(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		opts []Option
		want map[int]int
	}{
		{
			name: "raw colour",
			hue:  210,
			want: map[int]int{0: 45, 10: 46, 50: 46, 80: 45, 90: 45},
		},
		{
			name: "selection colour",
			hue:  25,
			opts: []Option{WithTransform(colour.DefaultSelection)},
			want: map[int]int{0: 9, 10: 9, 20: 9, 50: 8, 90: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustBackground(t, tt.hue, colour.RatioAA, tt.opts...)
			for sat, lightness := range tt.want {
				col, _ := r.Boundary(sat)
				if col.Lightness != lightness {
					t.Errorf("Boundary(%d).Lightness = %d, want %d", sat, col.Lightness, lightness)
				}
			}
		})
	}
}

func TestPathShape(t *testing.T) {
	fg := mustForeground(t, 210, colour.RatioAA).Path()
	if !strings.HasPrefix(fg, "M0 0 0 53 1 ") {
		t.Errorf("foreground path prefix = %q", fg[:16])
	}
	if !strings.HasSuffix(fg, " 100 54 100 0 Z") {
		t.Errorf("foreground path suffix = %q", fg[len(fg)-16:])
	}

	bg := mustBackground(t, 210, colour.RatioAA).Path()
	if !strings.HasPrefix(bg, "M0 100 0 55 1 ") {
		t.Errorf("background path prefix = %q", bg[:16])
	}
	if !strings.HasSuffix(bg, " 100 100 Z") {
		t.Errorf("background path suffix = %q", bg[len(bg)-16:])
	}
	fields := strings.Fields(strings.TrimSuffix(bg, " 100 100 Z"))
	if last := fields[len(fields)-2]; last != "99" {
		t.Errorf("last background vertex has x=%s, want 99", last)
	}

	// Only M, Z and numbers appear.
	for _, field := range strings.Fields(fg) {
		if field == "Z" || strings.HasPrefix(field, "M") {
			continue
		}
		if strings.Trim(field, "0123456789") != "" {
			t.Fatalf("unexpected path token %q", field)
		}
	}
}

func TestUnsupportedReference(t *testing.T) {
	_, err := Foreground(0, colour.RGB{R: 254, G: 255, B: 255}, colour.RatioAA)
	if !errors.Is(err, ErrUnsupportedBackground) {
		t.Errorf("Foreground() error = %v, want ErrUnsupportedBackground", err)
	}

	_, err = Background(0, colour.RGB{R: 0, G: 0, B: 1}, colour.RatioAA)
	if !errors.Is(err, ErrUnsupportedForeground) {
		t.Errorf("Background() error = %v, want ErrUnsupportedForeground", err)
	}
}

func TestAnyReference(t *testing.T) {
	grey := colour.RGB{R: 254, G: 255, B: 255}
	r, err := Foreground(0, grey, colour.RatioAA, WithAnyReference())
	if err != nil {
		t.Fatalf("Foreground() with any reference: %v", err)
	}
	if r.Reference != grey || len(r.Columns) != 101 {
		t.Errorf("unexpected region: reference %v, %d columns", r.Reference, len(r.Columns))
	}

	white := mustForeground(t, 0, colour.RatioAA)
	same, err := Foreground(0, colour.White, colour.RatioAA, WithAnyReference())
	if err != nil {
		t.Fatalf("Foreground() with any reference: %v", err)
	}
	if same.Path() != white.Path() {
		t.Error("WithAnyReference changed the path for a white background")
	}
}

func TestInvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		hue   float64
		ratio float64
		want  error
	}{
		{"hue 360", 360, 4.5, colour.ErrHueOutOfRange},
		{"negative hue", -10, 4.5, colour.ErrHueOutOfRange},
		{"ratio below 1", 10, 0.5, colour.ErrRatioOutOfRange},
		{"ratio above 21", 10, 22, colour.ErrRatioOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Foreground(tt.hue, colour.White, tt.ratio); !errors.Is(err, tt.want) {
				t.Errorf("Foreground() error = %v, want %v", err, tt.want)
			}
			if _, err := Background(tt.hue, colour.Black, tt.ratio); !errors.Is(err, tt.want) {
				t.Errorf("Background() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIdentityTransformMatchesDefault(t *testing.T) {
	for _, hue := range []float64{0, 45, 210, 300} {
		plain := mustBackground(t, hue, colour.RatioAA).Path()
		identity := mustBackground(t, hue, colour.RatioAA, WithTransform(colour.Identity)).Path()
		if plain != identity {
			t.Errorf("hue %v: identity transform changed the path", hue)
		}
		explicit := mustBackground(t, hue, colour.RatioAA, WithTransform(colour.TransformFunc(func(c colour.HSL) colorful.Color {
			return colorful.Hsl(c.H, c.S/100, c.L/100)
		}))).Path()
		if plain != explicit {
			t.Errorf("hue %v: function transform changed the path", hue)
		}
	}
}

func TestIdempotent(t *testing.T) {
	a := mustForeground(t, 123, 3).Path()
	b := mustForeground(t, 123, 3).Path()
	if a != b {
		t.Error("Foreground() is not deterministic")
	}

	c := mustBackground(t, 123, 3, WithTransform(colour.DefaultSelection)).Path()
	d := mustBackground(t, 123, 3, WithTransform(colour.DefaultSelection)).Path()
	if c != d {
		t.Error("Background() is not deterministic")
	}
}

func TestMaximumRatio(t *testing.T) {
	// Only pure black on white (and white behind black) reaches 21:1.
	fg := mustForeground(t, 90, colour.MaxRatio)
	for _, col := range fg.Columns {
		if !col.Found || col.Lightness > 1 {
			t.Fatalf("foreground column %d = %+v, want boundary at most 1", col.Saturation, col)
		}
	}

	bg := mustBackground(t, 90, colour.MaxRatio)
	for _, col := range bg.Columns {
		if !col.Found || col.Lightness < 99 {
			t.Fatalf("background column %d = %+v, want boundary at least 99", col.Saturation, col)
		}
	}
}

func TestMinimumRatio(t *testing.T) {
	r := mustForeground(t, 90, colour.MinRatio)
	for _, col := range r.Columns {
		if col.Found || col.Lightness != 100 {
			t.Fatalf("column %d = %+v, want fully accessible", col.Saturation, col)
		}
	}
	if !strings.HasPrefix(r.Path(), "M0 0 0 0 1 0 ") {
		t.Errorf("path = %q, want a flat region on the baseline", r.Path()[:20])
	}
}

func TestRegionContains(t *testing.T) {
	fg := mustForeground(t, 210, colour.RatioAA)
	if !fg.Contains(colour.HSL{H: 210, S: 50, L: 48}) {
		t.Error("lightness 48 should be inside the foreground region")
	}
	if fg.Contains(colour.HSL{H: 210, S: 50, L: 47}) {
		t.Error("lightness 47 should be outside the foreground region")
	}

	bg := mustBackground(t, 210, colour.RatioAA)
	if !bg.Contains(colour.HSL{H: 210, S: 50, L: 46}) {
		t.Error("lightness 46 should be inside the background region")
	}
	if bg.Contains(colour.HSL{H: 210, S: 50, L: 47}) {
		t.Error("lightness 47 should be outside the background region")
	}
	// Saturation 100 falls back to the last sampled background column.
	if !bg.Contains(colour.HSL{H: 210, S: 100, L: 10}) {
		t.Error("saturation 100 should use the last background column")
	}
}

func TestKindString(t *testing.T) {
	if KindForeground.String() != "foreground" || KindBackground.String() != "background" {
		t.Error("unexpected kind names")
	}
	if Kind(7).String() != "unknown" {
		t.Error("unexpected name for invalid kind")
	}
}
