package reporter

import (
	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
)

// SetFormatter selects the active report style. A formatters.Formatter
// value is adopted directly; a string is resolved through the registry
// to the process-wide singleton of that name.
func (r *Reporter) SetFormatter(v interface{}) error {
	switch f := v.(type) {
	case formatters.Formatter:
		r.formatter = f
		return nil
	case string:
		resolved, err := formatters.Resolve(f)
		if err != nil {
			return err
		}
		r.formatter = resolved
		return nil
	default:
		return errors.Newf(errors.ErrInvalidArgument,
			"formatter must be a name or a formatters.Formatter, got %T", v)
	}
}

// Formatter returns the active formatter, or nil when none has been
// selected yet
func (r *Reporter) Formatter() formatters.Formatter {
	return r.formatter
}

// Report renders a report body through the active formatter, resolving
// the default style just in time when none was selected. The formatter
// decides when to run body and what to render around it.
func (r *Reporter) Report(opts Options, body func() error) error {
	if err := r.ensureFormatter(); err != nil {
		return err
	}
	return r.formatter.Format(r, opts, body)
}

// Progress renders one progress step through the active formatter. An
// empty override uses the formatter's indicator.
func (r *Reporter) Progress(override string) error {
	if err := r.ensureFormatter(); err != nil {
		return err
	}
	return r.formatter.Progress(r, override)
}

func (r *Reporter) ensureFormatter() error {
	if r.formatter != nil {
		return nil
	}
	resolved, err := formatters.Resolve(r.defaults.Formatter)
	if err != nil {
		return err
	}
	r.formatter = resolved
	return nil
}
