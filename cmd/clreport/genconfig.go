package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelyj/command-line-reporter/pkg/config"
)

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print a config file template",
	Long: `Print a .clreport.toml template with every value commented out.
Redirect it into your project and uncomment lines to override defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := config.GenerateContent()
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}
