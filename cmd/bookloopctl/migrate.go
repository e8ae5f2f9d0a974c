package main

import (
	"fmt"

	"bookloop/internal/pkg/config"
	"bookloop/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			client, err := newAtlasClient(cfg.Migration)
			if err != nil {
				return err
			}
			if statusOnly {
				return printStatus(cmd, client, cfg)
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    cfg.DB.BuildDSN(),
				DirURL: cfg.Migration.Dir,
			})
			if err != nil {
				return errs.Wrap(err, "failed to apply migrations")
			}
			if len(res.Applied) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (version %s)\n", res.Current)
				return nil
			}
			for _, f := range res.Applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", f.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s -> %s\n", res.Current, res.Target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "print migration status without applying")
	return cmd
}

func newAtlasClient(cfg config.MigrationConfig) (*atlasexec.Client, error) {
	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to locate atlas binary")
	}
	return client, nil
}

func printStatus(cmd *cobra.Command, client *atlasexec.Client, cfg config.Config) error {
	st, err := client.MigrateStatus(cmd.Context(), &atlasexec.MigrateStatusParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migration.Dir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to read migration status")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status: %s current: %s next: %s pending: %d\n",
		st.Status, st.Current, st.Next, len(st.Pending))
	return nil
}
