package main

import (
	"fmt"

	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE:  runMigrate,
	}
	cmd.Flags().Bool("status", false, "Show the current schema version without applying changes")
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	ctx := cmd.Context()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.db.Close()

	if !status {
		if err := a.repo.Migrate(ctx); err != nil {
			return err
		}
	}

	version, err := a.repo.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	a.log.WithField("driver", a.cfg.DBDriver).Infof("Schema version %d of %d", version, repository.LatestVersion())
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (latest %d)\n", version, repository.LatestVersion())
	return nil
}
