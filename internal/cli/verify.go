package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
	"github.com/jmylchreest/contrastzone/internal/config"
)

// errMismatch is returned by verify --strict when an accessible lightness
// follows the boundary of some column.
var errMismatch = errors.New("accessible lightness found past the boundary")

// hueAnalysis holds both analyses for one hue.
type hueAnalysis struct {
	Hue        float64            `json:"hue"`
	Foreground *boundary.Analysis `json:"foreground"`
	Background *boundary.Analysis `json:"background"`
}

func (h hueAnalysis) monotonic() bool {
	return h.Foreground.Monotonic() && h.Background.Monotonic()
}

// analyseHues runs the foreground and background analyses for every hue,
// at most workers at a time. Results keep the order of hues.
func analyseHues(ctx context.Context, hues []float64, ratio float64, workers int, opts []boundary.Option, bgOpts []boundary.Option) ([]hueAnalysis, error) {
	results := make([]hueAnalysis, len(hues))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, hue := range hues {
		i, hue := i, hue
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fg, err := boundary.AnalyseForeground(hue, colour.White, ratio, opts...)
			if err != nil {
				return err
			}
			bg, err := boundary.AnalyseBackground(hue, colour.Black, ratio, bgOpts...)
			if err != nil {
				return err
			}
			results[i] = hueAnalysis{Hue: hue, Foreground: fg, Background: bg}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newVerifyCmd(a *app) *cobra.Command {
	var (
		hueList string
		format  string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every column stays inaccessible past its boundary",
		Long: `The threshold search reports the first failing lightness of each column
and assumes contrast changes monotonically along the scan. verify scans every
column in full for a set of hues and reports columns where an accessible
lightness follows the boundary.

Examples:
  # Default hues (every 30 degrees)
  contrastzone verify

  # Selected hues at the AAA threshold, failing on any mismatch
  contrastzone verify --hues 0,60,210 --ratio 7 --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hues := a.config.Hues
			if hueList != "" {
				parsed, err := config.ParseHues(hueList)
				if err != nil {
					return err
				}
				for _, h := range parsed {
					if err := colour.ValidateHue(h); err != nil {
						return err
					}
				}
				hues = parsed
			}

			transform, err := a.config.TransformOr(colour.TransformSelection)
			if err != nil {
				return err
			}
			opts := a.boundaryOptions()
			bgOpts := append(a.boundaryOptions(), boundary.WithTransform(transform))

			a.logger.Debug("verifying hues", "count", len(hues), "workers", a.config.Workers)
			results, err := analyseHues(cmd.Context(), hues, a.config.RequiredRatio, a.config.Workers, opts, bgOpts)
			if err != nil {
				return err
			}

			switch format {
			case formatText:
				fmt.Fprint(cmd.OutOrStdout(), formatAnalyses(results))
			case formatJSON:
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}

			for _, r := range results {
				if !r.monotonic() {
					a.logger.Warn("accessible lightness found past the boundary", "hue", r.Hue)
					if strict {
						return errMismatch
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hueList, "hues", "", "comma-separated hues (default from configuration)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any column has an accessible lightness past its boundary")
	return cmd
}

func formatAnalyses(results []hueAnalysis) string {
	table := NewTable("HUE", "KIND", "MAX CROSSINGS", "MISMATCHES", "STATUS")
	for _, r := range results {
		for _, a := range []*boundary.Analysis{r.Foreground, r.Background} {
			status := "ok"
			var saturations []string
			for _, col := range a.Mismatches() {
				saturations = append(saturations, strconv.Itoa(col.Saturation))
			}
			mismatches := "-"
			if len(saturations) > 0 {
				status = "mismatch"
				mismatches = strings.Join(saturations, ",")
			}
			table.AddRow(
				strconv.FormatFloat(r.Hue, 'f', -1, 64),
				a.Kind.String(),
				strconv.Itoa(a.MaxCrossings()),
				mismatches,
				status,
			)
		}
	}
	return table.Render()
}
