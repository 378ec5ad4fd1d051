// Package commands implements the actions CLI subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clearhead-us/actions-vocabulary/migrate"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <input.ttl> <output.ttl>",
		Short: "Migrate a v3 instance graph to the v4 vocabulary",
		Long: `Migrate reads a Turtle file of v3 action data and writes the equivalent
v4 graph: plans become CCO-aligned Plans with synthesized Objectives,
processes become PlannedActs prescribed by their plans, milestones and
contexts are reclassified.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			fmt.Printf("Migrating %s -> %s\n", input, output)
			m := migrate.NewMigrator(nil)
			stats, err := m.MigrateFile(input, output)
			if err != nil {
				return err
			}

			fmt.Printf("  plans:      %d\n", stats.Plans)
			fmt.Printf("  processes:  %d\n", stats.Processes)
			fmt.Printf("  milestones: %d\n", stats.Milestones)
			fmt.Printf("  contexts:   %d\n", stats.Contexts)
			fmt.Printf("Wrote %d triples to %s\n", stats.Triples, output)
			return nil
		},
	}
}

// fileMustExist returns a friendly error when a flag-supplied path is
// missing.
func fileMustExist(path, what string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s not found: %s", what, path)
	}
	return nil
}
