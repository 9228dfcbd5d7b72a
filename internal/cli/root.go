// Package cli provides the command-line interface for contrastzone.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/contrastzone/internal/boundary"
	"github.com/jmylchreest/contrastzone/internal/config"
	"github.com/jmylchreest/contrastzone/internal/logging"
	"github.com/jmylchreest/contrastzone/internal/version"
)

// app carries state shared by every command of one root command instance.
type app struct {
	config config.Config
	logger hclog.Logger

	verbose      bool
	quiet        bool
	logJSON      bool
	ratio        float64
	transform    string
	anyReference bool
}

// NewRootCmd builds the contrastzone command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   "contrastzone",
		Short: "Map the colours that fail a WCAG contrast ratio",
		Long: `contrastzone computes, for a fixed hue, which saturation/lightness
combinations fail a required WCAG contrast ratio against a fixed background
or foreground, and draws them as SVG regions for colour-picker overlays.

Foreground regions hold cursor colours that are too light to read on white.
Background regions hold highlight colours too dark to read black text on,
optionally after deriving the highlight from the cursor colour.

Environment:
  CONTRASTZONE_RATIO          default required ratio
  CONTRASTZONE_TRANSFORM      default transform (identity, selection)
  CONTRASTZONE_ANY_REFERENCE  allow any reference colour (true/false)
  CONTRASTZONE_WORKERS        parallel hues for verify
  CONTRASTZONE_HUES           comma-separated hues for verify`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write log lines as JSON")
	rootCmd.PersistentFlags().Float64VarP(&a.ratio, "ratio", "r", 0, "required contrast ratio, 1-21 (default 4.5)")
	rootCmd.PersistentFlags().StringVar(&a.transform, "transform", "", "colour transform for background candidates (identity, selection)")
	rootCmd.PersistentFlags().BoolVar(&a.anyReference, "any-reference", false, "allow reference colours other than white/black")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newForegroundCmd(a))
	rootCmd.AddCommand(newBackgroundCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newPreviewCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))

	return rootCmd
}

// setup loads configuration from the environment, applies explicitly set
// flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: a.verbose, Quiet: a.quiet, JSON: a.logJSON})

	base, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return err
	}

	a.applyFlags(cmd.Flags(), &base)

	cfg, err := config.NewBuilder().WithConfig(base).Build()
	if err != nil {
		return err
	}
	a.config = cfg

	a.logger.Debug("configuration loaded",
		"ratio", cfg.RequiredRatio,
		"transform", cfg.Transform,
		"any_reference", cfg.AnyReference,
		"workers", cfg.Workers)
	return nil
}

// applyFlags overrides cfg with the global flags the user set explicitly.
func (a *app) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "ratio":
			cfg.RequiredRatio = a.ratio
		case "transform":
			cfg.Transform = a.transform
		case "any-reference":
			cfg.AnyReference = a.anyReference
		}
	})
}

// boundaryOptions returns the finder options implied by the configuration.
func (a *app) boundaryOptions() []boundary.Option {
	var opts []boundary.Option
	if a.config.AnyReference {
		opts = append(opts, boundary.WithAnyReference())
	}
	return opts
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
