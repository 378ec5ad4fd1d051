package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clearhead-us/actions-vocabulary/config"
	"github.com/clearhead-us/actions-vocabulary/site"
)

// NewBuildCmd creates the build subcommand.
func NewBuildCmd() *cobra.Command {
	var (
		configPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the vocabulary site",
		Long: `Build parses every configured module's Turtle sources and publishes
them as Turtle, N-Triples, and JSON-LD with HTML index pages. With
--watch the build reruns whenever a source file changes.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(nil)
			cfg, err := loader.Load(configPath)
			if err != nil {
				return err
			}

			builder := site.NewBuilder(cfg, nil)
			result, err := builder.Build()
			if err != nil {
				return err
			}
			for _, mod := range result.Modules {
				fmt.Printf("  %s: %d triples from %d source(s)\n", mod.Name, mod.Triples, len(mod.Sources))
			}
			fmt.Printf("Site written to %s\n", result.OutputDir)

			if !watch && !cfg.Watch.Enabled {
				return nil
			}

			watcher, err := site.NewWatcher(builder, nil)
			if err != nil {
				return err
			}
			fmt.Println("Watching for changes (ctrl-c to stop)")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Site config file (default: nearest site.yaml)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Rebuild when sources change")
	return cmd
}
