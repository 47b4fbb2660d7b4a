package reporter

import (
	"github.com/mattn/go-runewidth"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
)

// SectionKind distinguishes header from footer composition
type SectionKind string

// Section kinds
const (
	SectionHeader SectionKind = "header"
	SectionFooter SectionKind = "footer"
)

// SectionConfig is the typed form of the header/footer options. Rule is
// loosely typed: absent or false means no rule line, true means the
// default glyph, a string supplies the glyph.
type SectionConfig struct {
	Title     string      `report:"title"`
	Width     int         `report:"width"`
	Align     string      `report:"align"`
	Spacing   int         `report:"spacing"`
	Timestamp bool        `report:"timestamp"`
	Rule      interface{} `report:"rule"`
	Color     string      `report:"color"`
	Bold      bool        `report:"bold"`
}

// Header writes a header block: title, optional timestamp, optional
// rule, then spacing — the decoration trails the title, separating it
// from the body that follows.
// Recognized options: title, width, align, spacing, timestamp, rule,
// color, bold.
func (r *Reporter) Header(opts Options) error {
	return r.section(SectionHeader, opts)
}

// Footer writes a footer block: spacing, optional rule, title, then
// optional timestamp — the decoration leads the title, separating it
// from the body that precedes.
// Recognized options are the same as Header's.
func (r *Reporter) Footer(opts Options) error {
	return r.section(SectionFooter, opts)
}

func (r *Reporter) section(kind SectionKind, opts Options) error {
	cfg := SectionConfig{
		Title:   "Report",
		Width:   r.defaults.Width,
		Align:   r.defaults.Align,
		Spacing: 1,
	}
	if err := formatters.Decode(opts, &cfg); err != nil {
		return err
	}
	return r.RenderSection(kind, cfg)
}

// RenderSection is the typed entry point behind Header and Footer
func (r *Reporter) RenderSection(kind SectionKind, cfg SectionConfig) error {
	if kind != SectionHeader && kind != SectionFooter {
		return errors.Newf(errors.ErrInvalidArgument, "invalid section kind %q", kind)
	}
	if cfg.Width <= 0 {
		return errors.Newf(errors.ErrInvalidArgument, "width must be a positive integer, got %d", cfg.Width)
	}
	if cfg.Spacing < 0 {
		return errors.Newf(errors.ErrInvalidArgument, "spacing must be a non-negative integer, got %d", cfg.Spacing)
	}
	if runewidth.StringWidth(cfg.Title) > cfg.Width {
		return errors.Newf(errors.ErrPreconditionFailed,
			"title %q is wider than the section width %d", cfg.Title, cfg.Width).
			WithDetail("title", cfg.Title).
			WithDetail("width", cfg.Width)
	}

	steps := r.sectionSteps(kind, cfg)
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	r.log.Debug().
		Str("kind", string(kind)).
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Msg("Section rendered")
	return nil
}

// sectionSteps orders the section parts. A footer is structurally the
// header read bottom-up: its spacing and rule lead the title instead of
// trailing it.
func (r *Reporter) sectionSteps(kind SectionKind, cfg SectionConfig) []func() error {
	title := func() error {
		return r.RenderAligned(cfg.Title, AlignedConfig{
			Align: cfg.Align,
			Width: cfg.Width,
			Color: cfg.Color,
			Bold:  cfg.Bold,
		})
	}

	var timestamp func() error
	if cfg.Timestamp {
		timestamp = func() error {
			return r.RenderDatetime(DatetimeConfig{
				Align: cfg.Align,
				Width: cfg.Width,
				Color: cfg.Color,
				Bold:  cfg.Bold,
			})
		}
	}

	var rule func() error
	if char, supplied := sectionRule(cfg.Rule); supplied {
		rule = func() error {
			return r.RenderRule(RuleConfig{
				Char:  char,
				Width: cfg.Width,
				Color: cfg.Color,
				Bold:  cfg.Bold,
			})
		}
	}

	spacing := func() error { return r.VerticalSpacing(cfg.Spacing) }

	var steps []func() error
	appendStep := func(step func() error) {
		if step != nil {
			steps = append(steps, step)
		}
	}

	if kind == SectionFooter {
		appendStep(spacing)
		appendStep(rule)
		appendStep(title)
		appendStep(timestamp)
	} else {
		appendStep(title)
		appendStep(timestamp)
		appendStep(rule)
		appendStep(spacing)
	}
	return steps
}

// sectionRule decides whether a rule line is wanted and with which
// glyph. nil and false mean no rule; true means the default glyph; a
// string supplies the glyph; anything else falls back to the default.
func sectionRule(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, v
	case string:
		return v, true
	default:
		return nil, true
	}
}
