package boundary

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

func TestCheck(t *testing.T) {
	cursor := colour.HSL{H: 25, S: 100, L: 25}

	tests := []struct {
		name       string
		ratio      float64
		transform  colour.Transform
		wantPasses bool
	}{
		{"AA with selection", colour.RatioAA, colour.DefaultSelection, true},
		{"AAA with selection", colour.RatioAAA, colour.DefaultSelection, true},
		{"ratio above cursor contrast", 10, colour.DefaultSelection, false},
		{"identity text on dark cursor", colour.RatioAA, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Check(cursor, colour.White, colour.Black, tt.ratio, tt.transform)
			if err != nil {
				t.Fatalf("Check() unexpected error: %v", err)
			}
			if res.Passes != tt.wantPasses {
				t.Errorf("Check().Passes = %v, want %v (cursor %.2f, derived %.2f)",
					res.Passes, tt.wantPasses, res.CursorContrast, res.DerivedContrast)
			}
		})
	}
}

func TestCheckFigures(t *testing.T) {
	res, err := Check(colour.HSL{H: 25, S: 100, L: 25}, colour.White, colour.Black, colour.RatioAA, colour.DefaultSelection)
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if want := (colour.RGB{R: 128, G: 53, B: 0}); res.CursorRGB != want {
		t.Errorf("CursorRGB = %+v, want %+v", res.CursorRGB, want)
	}
	if want := (colour.RGB{R: 255, G: 225, B: 204}); res.Derived != want {
		t.Errorf("Derived = %+v, want %+v", res.Derived, want)
	}
	if math.Abs(res.CursorContrast-8.672) > 0.001 {
		t.Errorf("CursorContrast = %.4f, want 8.672", res.CursorContrast)
	}
	if math.Abs(res.DerivedContrast-16.921) > 0.001 {
		t.Errorf("DerivedContrast = %.4f, want 16.921", res.DerivedContrast)
	}
}

func TestCheckInvalid(t *testing.T) {
	if _, err := Check(colour.HSL{H: 25, S: 120, L: 25}, colour.White, colour.Black, 4.5, nil); !errors.Is(err, colour.ErrSaturationOutOfRange) {
		t.Errorf("Check() error = %v, want ErrSaturationOutOfRange", err)
	}
	if _, err := Check(colour.HSL{H: 25, S: 100, L: 25}, colour.White, colour.Black, 30, nil); !errors.Is(err, colour.ErrRatioOutOfRange) {
		t.Errorf("Check() error = %v, want ErrRatioOutOfRange", err)
	}
}

func TestCheckAdvice(t *testing.T) {
	tests := []struct {
		name   string
		cursor colour.HSL
		want   string
	}{
		{"passing", colour.HSL{H: 25, S: 100, L: 25}, ""},
		{"too light", colour.HSL{H: 25, S: 100, L: 70}, "too light"},
		{"too dark", colour.HSL{H: 25, S: 100, L: 3}, "too dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Check(tt.cursor, colour.White, colour.Black, colour.RatioAA, colour.DefaultSelection)
			if err != nil {
				t.Fatalf("Check() unexpected error: %v", err)
			}
			got := res.Advice()
			if tt.want == "" {
				if got != "" {
					t.Errorf("Advice() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Advice() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
