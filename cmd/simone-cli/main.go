// Package main is the entry point for the simone-cli application.
// It registers the operational sub-commands (migrations, catalog seeding, promo
// codes, markets, booking request expiry, token issuing) and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/maebaconsulting/simonebeauty-sub003/cmd/simone-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "simone-cli",
		Short: "Operations CLI for the booking platform",
		Long:  `simone-cli runs operational tasks against the booking platform database.
It reads the same YAML configuration and SIMONE_* environment overrides as the REST API.

The configuration file defaults to $CONFIG_PATH, or configs/rest-app.yaml when unset.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, commands.DefaultConfigPath(), "Path to the YAML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitOpsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ops commands: %w", err)
	}

	if err := commands.InitPromoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize promo commands: %w", err)
	}

	if err := commands.InitMarketCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize market commands: %w", err)
	}

	if err := commands.InitCatalogCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize catalog commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
