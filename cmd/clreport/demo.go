package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nelyj/command-line-reporter/pkg/config"
	"github.com/nelyj/command-line-reporter/pkg/reporter"
	"github.com/nelyj/command-line-reporter/pkg/table"
)

var (
	demoFormatter string
	demoWidth     int
	demoTitle     string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a sample report",
	Long: `Render a sample report exercising headers, rules, timestamps,
nested or progress report bodies, tables and footers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := config.Load("")
		if err != nil {
			return err
		}
		if demoWidth > 0 {
			defaults.Width = demoWidth
		}

		r := reporter.NewWithDefaults(os.Stdout, defaults)
		if demoFormatter != "" {
			if err := r.SetFormatter(demoFormatter); err != nil {
				return err
			}
		}

		if err := r.Header(reporter.Options{
			"title":     demoTitle,
			"rule":      true,
			"timestamp": true,
			"bold":      true,
		}); err != nil {
			return err
		}

		if err := r.Report(reporter.Options{"message": "collecting results"}, func() error {
			for i := 0; i < 5; i++ {
				if err := r.Progress(""); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}

		if err := r.VerticalSpacing(1); err != nil {
			return err
		}
		if err := renderDemoTable(r, defaults.Encoding); err != nil {
			return err
		}

		return r.Footer(reporter.Options{
			"title": "Done",
			"rule":  true,
		})
	},
}

// renderDemoTable writes a small bordered table through the reporter's
// sink, so suppression and capture apply to it as well
func renderDemoTable(r *reporter.Reporter, encoding string) error {
	tbl, err := table.New(table.Options{"border": true, "encoding": encoding})
	if err != nil {
		return err
	}

	header, err := table.NewRow(table.Options{"header": true})
	if err != nil {
		return err
	}
	for _, text := range []string{"Task", "Status"} {
		col, err := table.NewColumn(text, table.Options{"width": 16})
		if err != nil {
			return err
		}
		header.Add(col)
	}
	tbl.Add(header)

	rows := [][2]string{
		{"resolve formatter", "ok"},
		{"render header", "ok"},
		{"render body", "ok"},
	}
	for _, cells := range rows {
		row, err := table.NewRow(table.Options{})
		if err != nil {
			return err
		}
		for _, text := range cells {
			col, err := table.NewColumn(text, table.Options{"width": 16})
			if err != nil {
				return err
			}
			row.Add(col)
		}
		tbl.Add(row)
	}

	return tbl.Output(r)
}

func init() {
	demoCmd.Flags().StringVar(&demoFormatter, "formatter", "", "Report style: nested or progress")
	demoCmd.Flags().IntVar(&demoWidth, "width", 0, "Field width override")
	demoCmd.Flags().StringVar(&demoTitle, "title", "Demo Report", "Report title")
}
