package boundary

import (
	"fmt"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

// ColumnAnalysis describes the full accessibility profile of one column.
type ColumnAnalysis struct {
	Saturation int `json:"saturation"`
	// Boundary is the lightness the threshold search reports for this column.
	Boundary int `json:"boundary"`
	// Crossings counts accessible/inaccessible transitions along the scan.
	Crossings int `json:"crossings"`
	// Consistent is false when an accessible lightness follows the first
	// inaccessible one, so the single boundary misdescribes the column.
	Consistent bool `json:"consistent"`
}

// Analysis checks the assumption behind the threshold search: once a column
// turns inaccessible along the scan it stays inaccessible.
type Analysis struct {
	Kind          Kind             `json:"kind"`
	Hue           float64          `json:"hue"`
	RequiredRatio float64          `json:"requiredRatio"`
	Columns       []ColumnAnalysis `json:"columns"`
}

// Monotonic reports whether every column is described exactly by its
// boundary, i.e. no accessible lightness follows the first inaccessible one.
// A column that starts inaccessible and turns accessible has one crossing
// and still fails.
func (a *Analysis) Monotonic() bool {
	for _, col := range a.Columns {
		if !col.Consistent {
			return false
		}
	}
	return true
}

// Mismatches returns the columns that are not Consistent.
func (a *Analysis) Mismatches() []ColumnAnalysis {
	var out []ColumnAnalysis
	for _, col := range a.Columns {
		if !col.Consistent {
			out = append(out, col)
		}
	}
	return out
}

// MaxCrossings returns the largest crossing count of any column.
func (a *Analysis) MaxCrossings() int {
	maxCrossings := 0
	for _, col := range a.Columns {
		maxCrossings = max(maxCrossings, col.Crossings)
	}
	return maxCrossings
}

func (s search) analyse(kind Kind, saturations int) *Analysis {
	a := &Analysis{
		Kind:          kind,
		Hue:           s.hue,
		RequiredRatio: s.ratio,
		Columns:       make([]ColumnAnalysis, 0, saturations),
	}
	for sat := 0; sat < saturations; sat++ {
		col := ColumnAnalysis{Saturation: sat, Boundary: 100, Consistent: true}
		seenInaccessible := false
		first := true
		var prev bool
		for l := s.dir.from; s.dir.contains(l); l += s.dir.step {
			bad := s.inaccessible(sat, l)
			if !first && bad != prev {
				col.Crossings++
			}
			if bad && !seenInaccessible {
				seenInaccessible = true
				col.Boundary = l
			}
			if !bad && seenInaccessible {
				col.Consistent = false
			}
			prev, first = bad, false
		}
		a.Columns = append(a.Columns, col)
	}
	return a
}

// AnalyseForeground scans every foreground column in full, using the same
// inputs and options as Foreground.
func AnalyseForeground(hue float64, background colour.RGB, ratio float64, opts ...Option) (*Analysis, error) {
	o := newOptions(opts)
	if err := validate(hue, ratio); err != nil {
		return nil, fmt.Errorf("foreground analysis: %w", err)
	}
	if !o.anyReference && background != colour.White {
		return nil, fmt.Errorf("%w (got %s)", ErrUnsupportedBackground, background.Hex())
	}

	s := search{hue: hue, reference: background, ratio: ratio, transform: o.transform, dir: ascending}
	return s.analyse(KindForeground, 101), nil
}

// AnalyseBackground scans every background column in full, using the same
// inputs and options as Background.
func AnalyseBackground(hue float64, foreground colour.RGB, ratio float64, opts ...Option) (*Analysis, error) {
	o := newOptions(opts)
	if err := validate(hue, ratio); err != nil {
		return nil, fmt.Errorf("background analysis: %w", err)
	}
	if !o.anyReference && foreground != colour.Black {
		return nil, fmt.Errorf("%w (got %s)", ErrUnsupportedForeground, foreground.Hex())
	}

	s := search{hue: hue, reference: foreground, ratio: ratio, transform: o.transform, dir: descending}
	return s.analyse(KindBackground, 100), nil
}
