package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/adapter/postgres"
	"github.com/heartmarshall/threadboard/internal/app"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if migrate {
				applied, err := postgres.Migrate(ctx, rootOpts.Config.Database.DSN)
				if err != nil {
					return err
				}
				rootOpts.Log.Info("migrations applied", slog.Int("count", len(applied)))
			}

			return app.Run(ctx, rootOpts.Config, rootOpts.Log)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before starting")

	return cmd
}
