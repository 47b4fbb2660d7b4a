package formatters

import (
	"fmt"
	"strings"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// NestedName is the canonical registry name of the nested style
const NestedName = "nested"

// nestedConfig holds the per-call options of the nested style
type nestedConfig struct {
	Message    string `report:"message"`
	Type       string `report:"type"`
	Complete   string `report:"complete"`
	IndentSize int    `report:"indent_size"`
	Color      string `report:"color"`
	Bold       bool   `report:"bold"`
}

// Nested renders report bodies as an indented hierarchy: a message line,
// the body one level deeper, then a completion line. Depth lives on the
// singleton, so reports opened inside a report body indent further.
type Nested struct {
	depth int
}

// NewNested creates a nested formatter at depth zero
func NewNested() *Nested {
	return &Nested{}
}

// Depth returns the current nesting depth
func (n *Nested) Depth() int {
	return n.depth
}

// Format renders the message line, runs body one level deeper, then
// renders the completion line. With type "inline" the three parts share
// a single line: "message...complete".
func (n *Nested) Format(s Surface, opts Options, body func() error) error {
	cfg := nestedConfig{
		Message:    "working",
		Complete:   "complete",
		IndentSize: 2,
	}
	if err := Decode(opts, &cfg); err != nil {
		return err
	}
	if cfg.IndentSize < 0 {
		return errors.Newf(errors.ErrInvalidArgument, "indent_size must be non-negative, got %d", cfg.IndentSize)
	}
	if cfg.Type != "" && cfg.Type != "inline" {
		return errors.Newf(errors.ErrInvalidArgument, "unknown nested report type %q", cfg.Type)
	}

	indent := strings.Repeat(" ", n.depth*cfg.IndentSize)

	if cfg.Type == "inline" {
		if _, err := fmt.Fprintf(s, "%s%s...", indent, cfg.Message); err != nil {
			return err
		}
		bodyErr := n.descend(body)
		if _, err := fmt.Fprintln(s, cfg.Complete); err != nil {
			return err
		}
		return bodyErr
	}

	lineOpts := Options{"color": cfg.Color, "bold": cfg.Bold}
	if err := s.Aligned(indent+cfg.Message, lineOpts); err != nil {
		return err
	}
	bodyErr := n.descend(body)
	if err := s.Aligned(indent+cfg.Complete, lineOpts); err != nil {
		return err
	}
	return bodyErr
}

// Progress writes the indicator without a newline so consecutive steps
// form a run of dots
func (n *Nested) Progress(s Surface, override string) error {
	if override == "" {
		override = "."
	}
	_, err := fmt.Fprint(s, override)
	return err
}

// descend runs body one level deeper, restoring depth even on panic
func (n *Nested) descend(body func() error) error {
	if body == nil {
		return nil
	}
	n.depth++
	defer func() { n.depth-- }()
	return body()
}
