package boundary

import (
	"fmt"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

// CheckResult reports whether a cursor colour and the colour derived from it
// both meet the required ratio.
type CheckResult struct {
	Cursor        colour.HSL `json:"cursor"`
	CursorRGB     colour.RGB `json:"cursorRgb"`
	Derived       colour.RGB `json:"derived"`
	RequiredRatio float64    `json:"requiredRatio"`
	// CursorContrast is the cursor against the background.
	CursorContrast float64 `json:"cursorContrast"`
	// DerivedContrast is the foreground against the derived colour.
	DerivedContrast float64 `json:"derivedContrast"`
	Passes          bool    `json:"passes"`
}

// Check evaluates a cursor drawn on background together with text in
// foreground drawn on the cursor's derived colour. Both contrasts must
// strictly exceed ratio to pass.
func Check(cursor colour.HSL, background, foreground colour.RGB, ratio float64, t colour.Transform) (CheckResult, error) {
	if err := cursor.Validate(); err != nil {
		return CheckResult{}, fmt.Errorf("check: %w", err)
	}
	if err := colour.ValidateRatio(ratio); err != nil {
		return CheckResult{}, fmt.Errorf("check: %w", err)
	}
	if t == nil {
		t = colour.Identity
	}

	derived := t.Apply(cursor)
	res := CheckResult{
		Cursor:          cursor,
		CursorRGB:       cursor.RGB(),
		Derived:         colour.FromColorful(derived),
		RequiredRatio:   ratio,
		CursorContrast:  colour.ContrastRatio(cursor.Colorful(), background),
		DerivedContrast: colour.ContrastRatio(foreground, derived),
	}
	res.Passes = res.CursorContrast > ratio && res.DerivedContrast > ratio
	return res, nil
}

// Advice returns a short hint for a failing check, or "" when it passes.
func (r CheckResult) Advice() string {
	switch {
	case r.Passes:
		return ""
	case r.CursorContrast < r.RequiredRatio:
		return "colour is too light: the cursor may be hard to see, select a darker colour"
	default:
		return "colour is too dark: the text may be hard to read, select a lighter colour"
	}
}
