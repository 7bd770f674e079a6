package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/shared/storage/db"
)

func newImportCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the Postgres services table with a catalog file",
		Long: `Loads the catalog file, applies pending migrations and replaces the
contents of the services table in a single transaction. DATABASE_URL
must be set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := readCatalogFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmdContext(cmd.Context())
			cfg := loadConfig()
			sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFor(db.RoleCLI))
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if !skipMigrate {
				if err := db.RunMigrations(ctx, sqlDB); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			if err := (&catalog.PGWriter{DB: sqlDB}).Replace(ctx, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d services (version %s)\n", cat.Len(), cat.Version())
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations before importing")
	return cmd
}
