// Package logging builds the hclog logger shared by contrastzone commands.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "contrastzone"

// Options selects the logger verbosity and format.
type Options struct {
	Verbose bool
	Quiet   bool
	// JSON writes one JSON object per line instead of text.
	JSON bool
}

// Level maps the options onto an hclog level: debug when verbose, errors
// only when quiet, warnings otherwise. Verbose wins over quiet.
func (o Options) Level() hclog.Level {
	switch {
	case o.Verbose:
		return hclog.Debug
	case o.Quiet:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

// New returns a named logger writing to out.
func New(out io.Writer, opts Options) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Output:     out,
		Level:      opts.Level(),
		JSONFormat: opts.JSON,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
