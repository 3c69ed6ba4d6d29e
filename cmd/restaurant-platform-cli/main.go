// Package main is the entry point for the restaurant-platform-cli
// application. It initializes the root command, registers the
// operational sub-commands (migrate, seed, staff repair) and executes
// the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/giorgigordiashvili/restaurant-platform/cmd/restaurant-platform-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "restaurant-platform-cli",
		Short: "Operational tooling for the restaurant platform",
		Long: `restaurant-platform-cli is a command-line tool for operating the platform.
It runs schema migrations, seeds a demo restaurant with a menu and
tables for local development, and repairs owner staff memberships.

Database and storage settings are read from the environment, the same
way the REST API and the worker read them.`,
	}

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
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := commands.InitStaffCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize staff commands: %w", err)
	}

	return nil
}
