package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/colour"
)

// regionFlags are shared by the foreground and background commands.
type regionFlags struct {
	hue       float64
	reference string
	format    string
	output    string
}

func (f *regionFlags) register(cmd *cobra.Command, referenceName, referenceDefault, referenceUsage string) {
	cmd.Flags().Float64Var(&f.hue, "hue", 0, "hue in degrees [0, 360)")
	cmd.Flags().StringVar(&f.reference, referenceName, referenceDefault, referenceUsage)
	cmd.Flags().StringVarP(&f.format, "format", "f", formatPath, "output format (path, json)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("hue")
}

func newForegroundCmd(a *app) *cobra.Command {
	var f regionFlags
	cmd := &cobra.Command{
		Use:   "foreground",
		Short: "Print the region of foreground colours that fail on a background",
		Long: `Print SVG path data for the foreground colours of one hue whose contrast
against the background falls below the required ratio.

For every saturation 0..100 the lightness axis is scanned upwards from black;
the first failing lightness is the boundary. The path starts at (0,0), runs
through (saturation, 100 - boundary) and closes along the top edge.

Examples:
  # Cursor colours of hue 210 too light for a white page
  contrastzone foreground --hue 210

  # AAA threshold, with the boundary columns as JSON
  contrastzone foreground --hue 210 --ratio 7 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			background, err := colour.ParseHex(f.reference)
			if err != nil {
				return fmt.Errorf("invalid background: %w", err)
			}

			start := time.Now()
			region, err := boundary.Foreground(f.hue, background, a.config.RequiredRatio, a.boundaryOptions()...)
			if err != nil {
				return err
			}
			a.logger.Debug("foreground region computed", "hue", f.hue, "background", background.Hex(), "elapsed", time.Since(start))

			return writeRegion(cmd, region, f)
		},
	}
	f.register(cmd, "background", colour.White.Hex(), "background colour (hex)")
	return cmd
}

func newBackgroundCmd(a *app) *cobra.Command {
	var f regionFlags
	cmd := &cobra.Command{
		Use:   "background",
		Short: "Print the region of background colours that fail behind a foreground",
		Long: `Print SVG path data for the background colours of one hue whose contrast
against the foreground falls below the required ratio.

For every saturation 0..99 the lightness axis is scanned downwards from white
to 1; the first failing lightness is the boundary. Each candidate can first be
passed through a transform, so the region describes a derived colour such as
a selection highlight. The path starts at (0,100) and closes along the bottom
edge.

Examples:
  # Highlight colours of hue 25 too dark for black text
  contrastzone background --hue 25

  # Same, for the selection colour derived from a cursor colour
  contrastzone background --hue 25 --transform selection`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			foreground, err := colour.ParseHex(f.reference)
			if err != nil {
				return fmt.Errorf("invalid foreground: %w", err)
			}
			transform, err := a.config.TransformOr(colour.TransformIdentity)
			if err != nil {
				return err
			}

			start := time.Now()
			opts := append(a.boundaryOptions(), boundary.WithTransform(transform))
			region, err := boundary.Background(f.hue, foreground, a.config.RequiredRatio, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("background region computed", "hue", f.hue, "foreground", foreground.Hex(), "elapsed", time.Since(start))

			return writeRegion(cmd, region, f)
		},
	}
	f.register(cmd, "foreground", colour.Black.Hex(), "foreground colour (hex)")
	return cmd
}

func writeRegion(cmd *cobra.Command, region *boundary.Region, f regionFlags) error {
	var buf bytes.Buffer
	switch f.format {
	case formatPath:
		buf.WriteString(region.Path())
		buf.WriteByte('\n')
	case formatJSON:
		out := struct {
			*boundary.Region
			Path   string           `json:"path"`
			Points []boundary.Point `json:"points"`
		}{Region: region, Path: region.Path(), Points: region.Points()}
		if err := writeJSON(&buf, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: path, json)", f.format)
	}
	return writeOutput(cmd, f.output, buf.Bytes())
}
