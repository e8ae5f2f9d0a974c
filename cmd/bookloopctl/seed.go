package main

import (
	"fmt"

	"bookloop/internal/infra/db"
	"bookloop/internal/infra/seed"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/clock"
	"bookloop/internal/pkg/config"
	"bookloop/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample book catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			seeder := seed.NewCatalogSeeder(sqlc.New(), clock.NewRealClock())
			var inserted int
			err = pgx.BeginFunc(cmd.Context(), pool, func(tx pgx.Tx) error {
				inserted, err = seeder.Seed(cmd.Context(), tx, seed.SampleCatalog)
				return err
			})
			if err != nil {
				return errs.Wrap(err, "seed failed")
			}
			if inserted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already populated, nothing to do")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d books\n", inserted)
			return nil
		},
	}
}
