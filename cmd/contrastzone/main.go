// contrastzone - maps the colours that fail a WCAG contrast ratio
//
// contrastzone finds, for a fixed hue, the saturation/lightness combinations
// whose contrast against a fixed background or foreground falls below a
// required ratio, and draws them as SVG regions for colour-picker overlays.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrastzone/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
