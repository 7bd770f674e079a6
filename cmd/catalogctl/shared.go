package main

import (
	"context"
	"fmt"
	"os"

	"skincare-recommender/internal/catalog"
)

func readCatalogFile(path string) (*catalog.Catalog, error) {
	format, err := catalog.FormatFromName(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := catalog.Read(format, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cat, nil
}

func cmdContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
