package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cruzetta/kitpay/internal/interfaces/cli/migrate"
	"github.com/cruzetta/kitpay/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kitpay",
		Short: "Kitpay - checkout backend for event kit sales",
		Long:  `Kitpay handles kit orders, card and PIX charges, and payment status notifications from the processor.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
