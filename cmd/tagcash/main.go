package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tagcash-inc/tagcash/internal/interfaces/cli/migrate"
	"github.com/tagcash-inc/tagcash/internal/interfaces/cli/server"
)

// @title			Tagcash API
// @version		1.0
// @description	Billing backend for influencer marketing campaigns.
// @BasePath		/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "tagcash",
		Short: "Tagcash - influencer marketing billing backend",
		Long:  `Tagcash manages campaign bills, content approval, refunds and brand settlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
