package table

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
)

// ColumnConfig is the typed form of the column options
type ColumnConfig struct {
	Width   int    `report:"width"`
	Padding int    `report:"padding"`
	Align   string `report:"align"`
	Color   string `report:"color"`
	Bold    bool   `report:"bold"`
}

// Column is one table cell: text wrapped within a fixed width, padded
// and aligned
type Column struct {
	text string
	cfg  ColumnConfig
}

// NewColumn creates a column. Recognized options: width, padding,
// align, color, bold.
func NewColumn(text string, opts Options) (*Column, error) {
	cfg := ColumnConfig{Width: 20, Padding: 1, Align: "left"}
	if err := formatters.Decode(opts, &cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 {
		return nil, errors.Newf(errors.ErrInvalidArgument, "width must be a positive integer, got %d", cfg.Width)
	}
	if cfg.Padding < 0 {
		return nil, errors.Newf(errors.ErrInvalidArgument, "padding must be a non-negative integer, got %d", cfg.Padding)
	}
	switch cfg.Align {
	case "left", "right", "center":
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "invalid alignment %q", cfg.Align)
	}
	return &Column{text: text, cfg: cfg}, nil
}

// Text returns the column's raw text
func (c *Column) Text() string {
	return c.text
}

// cellWidth is the rendered width including padding on both sides
func (c *Column) cellWidth() int {
	return c.cfg.Width + 2*c.cfg.Padding
}

// screenLines hard-wraps the text into chunks no wider than the column
func (c *Column) screenLines() []string {
	if c.text == "" {
		return []string{""}
	}

	var lines []string
	remaining := c.text
	for remaining != "" {
		chunk := runewidth.Truncate(remaining, c.cfg.Width, "")
		if chunk == "" {
			// A single rune wider than the column still consumes a line.
			runes := []rune(remaining)
			chunk = string(runes[0])
		}
		lines = append(lines, chunk)
		remaining = remaining[len(chunk):]
	}
	return lines
}

// renderCell aligns one wrapped chunk within the column width and adds
// the padding
func (c *Column) renderCell(text string) string {
	gap := c.cfg.Width - runewidth.StringWidth(text)
	if gap < 0 {
		gap = 0
	}

	var body string
	switch c.cfg.Align {
	case "right":
		body = strings.Repeat(" ", gap) + text
	case "center":
		left := gap / 2
		body = strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		body = text + strings.Repeat(" ", gap)
	}

	pad := strings.Repeat(" ", c.cfg.Padding)
	return pad + body + pad
}
