package reporter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
	"github.com/nelyj/command-line-reporter/pkg/style"
)

// Line alignments accepted by every rendering operation
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// AlignedConfig is the typed form of the alignment/decoration options
type AlignedConfig struct {
	Align string `report:"align"`
	Width int    `report:"width"`
	Color string `report:"color"`
	Bold  bool   `report:"bold"`
}

// alignedConfig returns an AlignedConfig filled with this reporter's
// defaults, ready for option decoding
func (r *Reporter) alignedConfig() AlignedConfig {
	return AlignedConfig{
		Align: r.defaults.Align,
		Width: r.defaults.Width,
	}
}

// Aligned writes one line of text aligned within a fixed-width field,
// optionally decorated with a color keyword and bold weight.
// Recognized options: align, width, color, bold.
func (r *Reporter) Aligned(text string, opts Options) error {
	cfg := r.alignedConfig()
	if err := formatters.Decode(opts, &cfg); err != nil {
		return err
	}
	return r.RenderAligned(text, cfg)
}

// RenderAligned is the typed entry point behind Aligned. It is the
// single choke point all other operations emit through.
func (r *Reporter) RenderAligned(text string, cfg AlignedConfig) error {
	if cfg.Width <= 0 {
		return errors.Newf(errors.ErrInvalidArgument, "width must be a positive integer, got %d", cfg.Width)
	}
	if cfg.Color != "" && !style.IsKeyword(cfg.Color) {
		return errors.Newf(errors.ErrInvalidArgument, "unknown color %q", cfg.Color)
	}

	line, err := alignText(text, cfg.Align, cfg.Width)
	if err != nil {
		return err
	}

	// Decoration only on color-capable terminals: captured and piped
	// output stays plain.
	if (cfg.Color != "" || cfg.Bold) && style.ColorEnabled(r.sink.current()) {
		line, err = style.Decorate(line, cfg.Color, cfg.Bold)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(r, line)
	return err
}

// alignText positions text within width columns. Left leaves the text
// untouched; right pads on the left to exactly width; center splits the
// padding with the smaller half on the left. Text at or beyond width is
// never truncated.
func alignText(text, align string, width int) (string, error) {
	switch align {
	case AlignLeft:
		return text, nil
	case AlignRight:
		pad := width - runewidth.StringWidth(text)
		if pad <= 0 {
			return text, nil
		}
		return strings.Repeat(" ", pad) + text, nil
	case AlignCenter:
		gap := width - runewidth.StringWidth(text)
		if gap <= 0 {
			return text, nil
		}
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left), nil
	default:
		return "", errors.Newf(errors.ErrInvalidArgument, "invalid alignment %q", align)
	}
}
