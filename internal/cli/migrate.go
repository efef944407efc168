package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/adapter/postgres"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply all pending embedded migrations to the configured database.

With --status, print the current schema version and change nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dsn := rootOpts.Config.Database.DSN
			out := cmd.OutOrStdout()

			if status {
				v, err := postgres.MigrationVersion(ctx, dsn)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "schema version: %d\n", v)
				return nil
			}

			applied, err := postgres.Migrate(ctx, dsn)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(out, "no pending migrations")
				return nil
			}
			for _, m := range applied {
				fmt.Fprintf(out, "applied %d %s (%s)\n", m.Version, m.Name, m.Duration)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "print the current schema version only")

	return cmd
}
