package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/threadboard/internal/app"
	"github.com/heartmarshall/threadboard/internal/app/seeder"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a sample topic when the board is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seedCfg, err := seeder.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if dryRun {
				seedCfg.DryRun = true
			}

			return withComponents(cmd.Context(), rootOpts, func(c *app.Components) error {
				res, err := seeder.New(rootOpts.Log, c.Board, c.Topics, *seedCfg).Run(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				switch {
				case res.Skipped:
					fmt.Fprintln(out, "board not empty, nothing seeded")
				case res.Topic == nil:
					fmt.Fprintf(out, "dry run: would create 1 topic with %d posts\n", len(seedCfg.Posts))
				default:
					fmt.Fprintf(out, "created topic %s with %d posts\n", res.Topic.ID, res.Posts)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "seeder-config", "", "path to seeder YAML config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be created without writing")

	return cmd
}
