package main

import (
	"os"

	"github.com/spf13/cobra"

	"obleafusion/internal/interfaces/cli/preview"
	"obleafusion/internal/interfaces/cli/server"
	"obleafusion/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "obleafusion",
		Short:   "ObleaFusion - booking and contact form notifications",
		Long:    `ObleaFusion receives booking and contact form submissions and emails a bilingual notification to the business owner.`,
		Version: version.Get().Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		preview.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
