package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}
