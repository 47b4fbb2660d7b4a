// Package table composes tabular report output: a Table of Rows of
// Columns, each column wrapping its text within a fixed width. Rendering
// is row-independent, so ragged tables are legal.
package table

import (
	"io"
	"strings"

	"github.com/nelyj/command-line-reporter/pkg/errors"
	"github.com/nelyj/command-line-reporter/pkg/formatters"
	"github.com/nelyj/command-line-reporter/pkg/style"
)

// Options is the option map accepted by the table constructors
type Options = formatters.Options

// TableConfig is the typed form of the table options
type TableConfig struct {
	Border   bool   `report:"border"`
	Encoding string `report:"encoding"`
}

// Table accumulates rows and renders them in row order
type Table struct {
	cfg  TableConfig
	rows []*Row
}

// New creates a table. Recognized options: border, encoding.
func New(opts Options) (*Table, error) {
	cfg := TableConfig{Encoding: "unicode"}
	if err := formatters.Decode(opts, &cfg); err != nil {
		return nil, err
	}
	switch cfg.Encoding {
	case "unicode", "ascii":
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "encoding must be unicode or ascii, got %q", cfg.Encoding)
	}
	return &Table{cfg: cfg}, nil
}

// Add appends a row to the table
func (t *Table) Add(row *Row) {
	if row == nil {
		return
	}
	t.rows = append(t.rows, row)
}

// Rows returns the number of rows added so far
func (t *Table) Rows() int {
	return len(t.rows)
}

// Output renders the table to w. With border enabled every row is boxed
// with a glyph set chosen by the encoding; without it cells are joined
// by single spaces.
func (t *Table) Output(w io.Writer) error {
	if len(t.rows) == 0 {
		return nil
	}

	glyphs := t.glyphs()
	colorize := style.ColorEnabled(w)

	if t.cfg.Border {
		if err := writeSeparator(w, t.rows[0].widths(), glyphs); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := row.output(w, t.cfg.Border, glyphs, colorize); err != nil {
			return err
		}
		if t.cfg.Border {
			if err := writeSeparator(w, row.widths(), glyphs); err != nil {
				return err
			}
		}
	}
	return nil
}

// glyphs picks the border glyph set. Unicode box drawing needs both the
// unicode encoding setting and a UTF-8 capable environment; the check
// runs at output time, not construction time.
func (t *Table) glyphs() borderGlyphs {
	if t.cfg.Encoding == "unicode" && style.UnicodeSupported() {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

// borderGlyphs is the character set used for bordered rendering
type borderGlyphs struct {
	horizontal string
	vertical   string
	cross      string
}

var (
	unicodeGlyphs = borderGlyphs{horizontal: "─", vertical: "│", cross: "┼"}
	asciiGlyphs   = borderGlyphs{horizontal: "-", vertical: "|", cross: "+"}
)

// writeSeparator renders one horizontal border line for cells of the
// given widths, e.g. +------+----+ in ascii
func writeSeparator(w io.Writer, widths []int, glyphs borderGlyphs) error {
	if len(widths) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(glyphs.cross)
	for _, width := range widths {
		b.WriteString(strings.Repeat(glyphs.horizontal, width))
		b.WriteString(glyphs.cross)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
