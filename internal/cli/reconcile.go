package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/app"
)

// NewReconcileCommand creates the reconcile command.
func NewReconcileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute stored post counters from live posts",
		Long: `Recompute posts_count of every live topic from its live posts and
report how many topics had drifted. Lock state is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withComponents(cmd.Context(), rootOpts, func(c *app.Components) error {
				fixed, err := c.Board.ReconcileCounts(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reconciled %d topics\n", fixed)
				return nil
			})
		},
	}
}
