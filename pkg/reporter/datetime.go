package reporter

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
)

// DefaultDatetimeFormat renders as e.g. "2026-08-31 - 3:04:05pm"
const DefaultDatetimeFormat = "2006-01-02 - 3:04:05pm"

// now is swapped out by tests that need a fixed clock
var now = time.Now

// DatetimeConfig is the typed form of the timestamp options
type DatetimeConfig struct {
	Align  string `report:"align"`
	Width  int    `report:"width"`
	Format string `report:"format"`
	Color  string `report:"color"`
	Bold   bool   `report:"bold"`
}

// Datetime writes the current wall-clock time as one aligned line.
// Recognized options: align, width, format, color, bold.
func (r *Reporter) Datetime(opts Options) error {
	cfg := DatetimeConfig{
		Align:  r.defaults.Align,
		Width:  r.defaults.Width,
		Format: DefaultDatetimeFormat,
	}
	if err := formatters.Decode(opts, &cfg); err != nil {
		return err
	}
	return r.RenderDatetime(cfg)
}

// RenderDatetime is the typed entry point behind Datetime. A formatted
// timestamp wider than the field is a configuration bug: the caller
// picked a width too narrow for the format, so it fails fatally and
// nothing is written.
func (r *Reporter) RenderDatetime(cfg DatetimeConfig) error {
	if cfg.Width <= 0 {
		return errors.Newf(errors.ErrInvalidArgument, "width must be a positive integer, got %d", cfg.Width)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultDatetimeFormat
	}

	formatted := now().Format(cfg.Format)
	if runewidth.StringWidth(formatted) > cfg.Width {
		return errors.Newf(errors.ErrPreconditionFailed,
			"datetime %q is wider than the field width %d", formatted, cfg.Width)
	}

	return r.RenderAligned(formatted, AlignedConfig{
		Align: cfg.Align,
		Width: cfg.Width,
		Color: cfg.Color,
		Bold:  cfg.Bold,
	})
}
