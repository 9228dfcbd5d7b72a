package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Output formats for region commands.
const (
	formatPath = "path"
	formatJSON = "json"
	formatText = "text"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - generated artwork, world readable
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeJSON encodes v indented, followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return nil
}
