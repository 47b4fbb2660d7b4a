package table

import (
	"io"
	"strings"

	"github.com/nelyj/command-line-reporter/pkg/formatters"
	"github.com/nelyj/command-line-reporter/pkg/style"
)

// RowConfig is the typed form of the row options
type RowConfig struct {
	Header bool   `report:"header"`
	Color  string `report:"color"`
	Bold   bool   `report:"bold"`
}

// Row is one table row. A header row renders bold; its color/bold
// settings cascade to columns that did not set their own.
type Row struct {
	cfg     RowConfig
	columns []*Column
}

// NewRow creates a row. Recognized options: header, color, bold.
func NewRow(opts Options) (*Row, error) {
	cfg := RowConfig{}
	if err := formatters.Decode(opts, &cfg); err != nil {
		return nil, err
	}
	if cfg.Header {
		cfg.Bold = true
	}
	return &Row{cfg: cfg}, nil
}

// Add appends a column to the row, cascading row decoration to columns
// that did not choose their own
func (r *Row) Add(col *Column) {
	if col == nil {
		return
	}
	if col.cfg.Color == "" {
		col.cfg.Color = r.cfg.Color
	}
	if r.cfg.Bold {
		col.cfg.Bold = true
	}
	r.columns = append(r.columns, col)
}

// Columns returns the number of columns added so far
func (r *Row) Columns() int {
	return len(r.columns)
}

// widths returns the padded cell width of each column
func (r *Row) widths() []int {
	widths := make([]int, len(r.columns))
	for i, col := range r.columns {
		widths[i] = col.cellWidth()
	}
	return widths
}

// output renders the row, spanning as many screen lines as its tallest
// wrapped column
func (r *Row) output(w io.Writer, border bool, glyphs borderGlyphs, colorize bool) error {
	if len(r.columns) == 0 {
		return nil
	}

	height := 0
	cells := make([][]string, len(r.columns))
	for i, col := range r.columns {
		cells[i] = col.screenLines()
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	separator := " "
	if border {
		separator = glyphs.vertical
	}

	for line := 0; line < height; line++ {
		var b strings.Builder
		if border {
			b.WriteString(separator)
		}
		for i, col := range r.columns {
			text := ""
			if line < len(cells[i]) {
				text = cells[i][line]
			}
			cell := col.renderCell(text)
			if colorize && (col.cfg.Color != "" || col.cfg.Bold) {
				decorated, err := style.Decorate(cell, col.cfg.Color, col.cfg.Bold)
				if err != nil {
					return err
				}
				cell = decorated
			}
			b.WriteString(cell)
			if i < len(r.columns)-1 || border {
				b.WriteString(separator)
			}
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
