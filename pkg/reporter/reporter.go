// Package reporter renders structured console reports: titled headers
// and footers, horizontal rules, timestamps, vertical spacing and
// aligned, optionally decorated lines, with a pluggable report style
// selected by name. Every visible line funnels through the alignment
// primitive; nothing else writes raw text.
package reporter

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/nelyj/command-line-reporter/pkg/config"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
	"github.com/nelyj/command-line-reporter/pkg/logging"
)

// Options is the option map accepted by every rendering operation
type Options = formatters.Options

// Reporter drives one report session: it owns the output sink, the
// active formatter and the rendering defaults. A single session per
// process is assumed; Reporter adds no locking around rendering.
type Reporter struct {
	sink      outputSink
	formatter formatters.Formatter
	defaults  config.Defaults
	log       zerolog.Logger
}

// New creates a Reporter writing to console with the built-in defaults
func New(console io.Writer) *Reporter {
	return NewWithDefaults(console, config.Builtin())
}

// NewWithDefaults creates a Reporter writing to console with the given
// rendering defaults, typically loaded through the config package
func NewWithDefaults(console io.Writer, defaults config.Defaults) *Reporter {
	if err := defaults.Validate(); err != nil {
		// Unusable defaults are a programming error; fall back rather
		// than propagate an error from every constructor call site.
		defaults = config.Builtin()
	}
	return &Reporter{
		sink:     outputSink{console: console},
		defaults: defaults,
		log:      logging.GetLogger("reporter"),
	}
}

// Defaults returns the rendering defaults this reporter was built with
func (r *Reporter) Defaults() config.Defaults {
	return r.defaults
}

// std is the process-wide reporter behind the package-level functions,
// writing to stdout like the console reports it exists for.
var std = New(os.Stdout)

// Default returns the process-wide reporter used by the package-level
// functions
func Default() *Reporter {
	return std
}
