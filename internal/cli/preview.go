package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/contrastzone/internal/render"
)

// previewSize fits the grid to the terminal behind out, if there is one.
func previewSize(out io.Writer, opts render.PreviewOptions) render.PreviewOptions {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return opts
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return opts
	}
	if width > 1 && width < opts.Columns {
		opts.Columns = width
	}
	// Leave room for the legend and the prompt.
	if height > 4 && height-2 < opts.Rows {
		opts.Rows = height - 2
	}
	return opts
}

func newPreviewCmd(a *app) *cobra.Command {
	var (
		cursorArg string
		opts      = render.DefaultPreviewOptions()
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the inaccessible regions in the terminal",
		Long: `Print the colour area for the hue of a cursor colour as a grid of
coloured cells. Cells in the cursor region are marked "/", cells in the
selection region "\", cells in both "X" and the cursor itself "o".

Examples:
  contrastzone preview --colour "hsl(210, 60%, 35%)"
  contrastzone preview --colour "#804000" --columns 101 --rows 51`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.newOverlay(cursorArg)
			if err != nil {
				return err
			}

			size := opts
			if !cmd.Flags().Changed("columns") && !cmd.Flags().Changed("rows") {
				size = previewSize(cmd.OutOrStdout(), opts)
			}
			return o.WritePreview(cmd.OutOrStdout(), size)
		},
	}

	cmd.Flags().StringVarP(&cursorArg, "colour", "c", defaultCursor, "cursor colour (hsl(...) or hex)")
	cmd.Flags().IntVar(&opts.Columns, "columns", opts.Columns, "grid columns")
	cmd.Flags().IntVar(&opts.Rows, "rows", opts.Rows, "grid rows")
	return cmd
}
