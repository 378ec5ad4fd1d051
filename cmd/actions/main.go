// Package main provides the actions binary entry point.
// The actions CLI maintains the Actions Vocabulary: it migrates v3
// instance data to v4, validates data against the SHACL shapes, derives
// JSON Schema and JTD definitions, and builds the published site.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clearhead-us/actions-vocabulary/commands"
)

const (
	Version = "4.0.0"
	appName = "actions"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Actions Vocabulary toolchain",
		Long: `Actions maintains the BFO/CCO-aligned Actions Vocabulary.

It provides:
- v3 to v4 instance data migration
- SHACL validation of instance data
- JSON Schema and JTD generation from the ontology
- Publication site builds with Turtle, N-Triples, and JSON-LD output`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewMigrateCmd())
	cmd.AddCommand(commands.NewValidateCmd())
	cmd.AddCommand(commands.NewSchemaCmd())
	cmd.AddCommand(commands.NewBuildCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
