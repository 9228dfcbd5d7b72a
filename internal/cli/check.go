package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
)

// errCheckFailed is returned by check --strict when the colour fails.
var errCheckFailed = errors.New("contrast check failed")

func newCheckCmd(a *app) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check <colour>",
		Short: "Check a cursor colour and its selection colour",
		Long: `Check a cursor colour drawn on white, and black text drawn on the colour
derived from it (the selection colour unless --transform says otherwise).
Both contrasts must exceed the required ratio.

Examples:
  contrastzone check "hsl(25, 100%, 25%)"
  contrastzone check "#e0a080" --ratio 7 --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cursor, err := parseCursor(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour: %w", err)
			}
			transform, err := a.config.TransformOr(colour.TransformSelection)
			if err != nil {
				return err
			}

			res, err := boundary.Check(cursor, colour.White, colour.Black, a.config.RequiredRatio, transform)
			if err != nil {
				return err
			}
			a.logger.Debug("check complete", "cursor", cursor.String(), "passes", res.Passes)

			switch format {
			case formatText:
				fmt.Fprint(cmd.OutOrStdout(), formatCheck(res))
			case formatJSON:
				if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}

			if strict && !res.Passes {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the check fails")
	return cmd
}

func formatCheck(res boundary.CheckResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cursor     %s  %s  %5.2f:1 on white\n", res.Cursor, res.CursorRGB.Hex(), res.CursorContrast)
	fmt.Fprintf(&b, "selection  %s  %5.2f:1 behind black\n", res.Derived.Hex(), res.DerivedContrast)
	if res.Passes {
		fmt.Fprintf(&b, "pass (required %.1f:1)\n", res.RequiredRatio)
		return b.String()
	}
	fmt.Fprintf(&b, "fail (required %.1f:1): %s\n", res.RequiredRatio, res.Advice())
	return b.String()
}
