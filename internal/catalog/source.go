package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"

	"skincare-recommender/internal/shared/storage/object"
)

// Source produces a fully built catalog. Implementations are called once at
// startup; any error aborts the process.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Format identifies a tabular catalog encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromName picks a format from a file name or storage key extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(path.Ext(strings.TrimSpace(name))) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Read decodes r in the given format and builds a catalog.
func Read(format Format, r io.Reader) (*Catalog, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	headers, rows, err := rowsFromRecords(records)
	if err != nil {
		return nil, err
	}
	return New(headers, rows)
}

// FileSource loads a CSV or XLSX catalog file from an object store.
type FileSource struct {
	Store object.Store
	Key   string
}

// Load opens the stored file and builds the catalog.
func (s FileSource) Load(ctx context.Context) (*Catalog, error) {
	if s.Store == nil {
		return nil, errors.New("catalog file source: store not configured")
	}
	format, err := FormatFromName(s.Key)
	if err != nil {
		return nil, err
	}
	body, err := s.Store.Open(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("open catalog key=%s: %w", s.Key, err)
	}
	defer body.Close()

	cat, err := Read(format, body)
	if err != nil {
		return nil, fmt.Errorf("read catalog key=%s: %w", s.Key, err)
	}
	return cat, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySource
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// rowsFromRecords treats the first record as headers. Empty cells become nil
// so they default the same way a missing value does.
func rowsFromRecords(records [][]string) ([]string, []Row, error) {
	if len(records) == 0 {
		return nil, nil, ErrEmptySource
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
				row[h] = nil
				continue
			}
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func blankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
