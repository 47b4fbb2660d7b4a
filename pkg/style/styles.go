// Package style maps color keywords to lipgloss styles and answers
// terminal capability questions (color support, unicode output).
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// ANSI palette keyed by the color keywords callers pass in report options.
var colors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"purple":  lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// Keywords returns the recognized color keywords in no particular order
func Keywords() []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	return names
}

// IsKeyword reports whether name is a recognized color keyword
func IsKeyword(name string) bool {
	_, ok := colors[strings.ToLower(name)]
	return ok
}

// Decorate applies the color keyword and bold weight to text.
// Color is resolved first and bold layered on top, so both compose on
// one line. An empty color with bold still renders bold. Unknown color
// keywords fail rather than silently rendering plain text.
func Decorate(text, color string, bold bool) (string, error) {
	st := lipgloss.NewStyle()

	if color != "" {
		c, ok := colors[strings.ToLower(color)]
		if !ok {
			return "", errors.Newf(errors.ErrInvalidArgument, "unknown color %q", color)
		}
		st = st.Foreground(c)
	}
	if bold {
		st = st.Bold(true)
	}
	if color == "" && !bold {
		return text, nil
	}
	return st.Render(text), nil
}
