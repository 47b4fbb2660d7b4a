package main

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation topics",
	Long:  `Show a documentation topic rendered for the terminal, or list the available topics.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics()
		}
		return showTopic(args[0])
	},
}

func listTopics() error {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)

	fmt.Println("Available topics:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func showTopic(name string) error {
	content, err := topicsFS.ReadFile(path.Join("topics", name+".md"))
	if err != nil {
		return fmt.Errorf("unknown topic %q (try 'clreport docs')", name)
	}

	fmt.Print(renderMarkdown(string(content)))
	return nil
}

// renderMarkdown converts markdown to terminal output via glamour,
// falling back to the raw text when rendering is not possible
func renderMarkdown(content string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
