package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/config"
	"github.com/Veraticus/lifedash/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Other commands migrate automatically; this one is useful to check the schema
or prepare a database ahead of time.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	slog.Info("Starting database migration", "database", cfg.Database.Path, "status_only", status)

	st, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = st.Close() }()

	if status {
		current, err := st.SchemaVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		state := cli.FormatSuccess("up to date")
		if current < storage.ExpectedSchemaVersion {
			state = cli.FormatWarning("migrations pending")
		}
		_, err = fmt.Fprintf(out, "%s\nDatabase: %s\nCurrent version: %d\nLatest version:  %d\n%s\n",
			cli.FormatTitle("Database Migration Status"), st.Path(), current, storage.ExpectedSchemaVersion, state)
		return err
	}

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Database at schema version %d: %s",
		storage.ExpectedSchemaVersion, st.Path())))
	return err
}
