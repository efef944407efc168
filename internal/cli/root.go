// Package cli implements the threadboard command line: the HTTP server and
// the maintenance commands that share its configuration.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/app"
	"github.com/heartmarshall/threadboard/internal/config"
)

// RootOptions holds state shared by all subcommands. Config and Log are
// populated before any subcommand runs.
type RootOptions struct {
	Config *config.Config
	Log    *slog.Logger

	loadConfig func() (*config.Config, error)
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.Load)
}

func newRootCommand(load func() (*config.Config, error)) *cobra.Command {
	opts := &RootOptions{loadConfig: load}

	cmd := &cobra.Command{
		Use:   "threadboard",
		Short: "Discussion board backend",
		Long: `threadboard serves a discussion board of topics and posts.

Each topic accepts a bounded number of posts; the post that fills it
locks the topic and appends a system notice.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Config = cfg
			opts.Log = app.NewLogger(cfg.Log)
			return nil
		},
	}

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewReconcileCommand(opts))
	cmd.AddCommand(NewPurgeCommand(opts))

	return cmd
}

// withComponents builds the application graph, runs fn and releases it.
func withComponents(ctx context.Context, opts *RootOptions, fn func(c *app.Components) error) error {
	c, err := app.Build(ctx, opts.Config, opts.Log)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
