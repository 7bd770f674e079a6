package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"skincare-recommender/internal/bootstrap"
)

func newPublishCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Validate a catalog file and upload it to the object store",
		Long: `Uploads the file to the configured object store (OBJECT_STORE=local
or s3) under CATALOG_PATH, or under --key when given. The file is
validated first and never uploaded when it fails to load.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cat, err := readCatalogFile(path)
			if err != nil {
				return err
			}

			ctx := cmdContext(cmd.Context())
			cfg := loadConfig()
			if strings.TrimSpace(key) == "" {
				key = cfg.CatalogPath
			}
			if !strings.EqualFold(filepath.Ext(key), filepath.Ext(path)) {
				return fmt.Errorf("key %q must keep the %s extension", key, filepath.Ext(path))
			}
			store, err := bootstrap.BuildStore(ctx, cfg)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := store.SaveWithKey(ctx, key, contentTypeFor(path), f)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s (%d bytes, %d services, version %s)\n", key, n, cat.Len(), cat.Version())
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "object key (default CATALOG_PATH)")
	return cmd
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "text/csv"
	case ".xlsm":
		return "application/vnd.ms-excel.sheet.macroEnabled.12"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}
