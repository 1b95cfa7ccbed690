package main

import (
	"os"

	"github.com/spf13/cobra"

	"quartermaster/internal/interfaces/cli/migrate"
	"quartermaster/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quartermaster",
		Short: "Quartermaster - IT asset tracking service",
		Long:  `Quartermaster tracks hardware parts, assembled systems, and employee allocations, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
