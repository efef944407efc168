package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/app"
)

// NewPurgeCommand creates the purge command. It is meant to be run by an
// external scheduler, not as an in-process job.
func NewPurgeCommand(rootOpts *RootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Hard-delete soft-deleted posts past the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("days") {
				days = rootOpts.Config.Board.PurgeRetentionDays
			}
			retention := time.Duration(days) * 24 * time.Hour

			return withComponents(cmd.Context(), rootOpts, func(c *app.Components) error {
				purged, err := c.Board.PurgeDeletedPosts(cmd.Context(), retention)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d posts deleted more than %d days ago\n", purged, days)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention in days (default: board.purge_retention_days)")

	return cmd
}
