package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastzone/internal/colour"
	"github.com/jmylchreest/contrastzone/internal/render"
)

const defaultCursor = "hsl(25, 100%, 25%)"

// parseCursor accepts an "hsl(...)" expression or a hex colour.
func parseCursor(s string) (colour.HSL, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "hsl") {
		return colour.ParseHSL(s)
	}
	rgb, err := colour.ParseHex(s)
	if err != nil {
		return colour.HSL{}, err
	}
	return rgb.HSL(), nil
}

// newOverlay builds the overlay for a cursor colour using the configured
// ratio, with the selection transform unless another one is configured.
func (a *app) newOverlay(cursorArg string) (*render.Overlay, error) {
	cursor, err := parseCursor(cursorArg)
	if err != nil {
		return nil, fmt.Errorf("invalid colour: %w", err)
	}
	transform, err := a.config.TransformOr(colour.TransformSelection)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	o, err := render.NewOverlay(cursor, a.config.RequiredRatio, transform, a.boundaryOptions()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("overlay computed", "cursor", cursor.String(), "passes", o.Check.Passes, "elapsed", time.Since(start))
	return o, nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		cursorArg string
		format    string
		size      int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the inaccessible regions for a cursor colour",
		Long: `Draw both regions for the hue of a cursor colour: cursor colours too
light to see on white, and selection colours too dark to read black text on.

SVG output is a 0-100 view box overlay with diagonal stripes, meant to be
stacked on a saturation/lightness colour area. PNG output paints the colour
area itself underneath. Stripes are white when the cursor colour passes and
red when it fails.

Examples:
  # SVG overlay on stdout
  contrastzone render --colour "hsl(25, 100%, 25%)"

  # 400px PNG, format taken from the file extension
  contrastzone render --colour "#804000" --size 400 -o area.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = formatSVG
				if strings.EqualFold(filepath.Ext(output), ".png") {
					format = formatPNG
				}
			}

			o, err := a.newOverlay(cursorArg)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			switch format {
			case formatSVG:
				err = o.WriteSVG(&buf, size)
			case formatPNG:
				err = o.WritePNG(&buf, size)
			default:
				return fmt.Errorf("unsupported format: %s (supported: svg, png)", format)
			}
			if err != nil {
				return err
			}

			if output != "" {
				a.logger.Info("writing overlay", "path", output, "format", format)
			}
			return writeOutput(cmd, output, buf.Bytes())
		},
	}

	cmd.Flags().StringVarP(&cursorArg, "colour", "c", defaultCursor, "cursor colour (hsl(...) or hex)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (svg, png; default from --output extension)")
	cmd.Flags().IntVarP(&size, "size", "s", 192, "image size in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
