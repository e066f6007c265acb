package main

import (
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/platform/database"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or revert database migrations",
		Long:      "Apply every pending migration (up) or revert migrations (down). Down reverts all of them unless --steps is given.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			dir := database.Direction(args[0])
			if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, dir, steps, rootOpts.logger()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to revert with down (0 = all)")
	return cmd
}
