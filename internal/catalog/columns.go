package catalog

import "strings"

// Column headers of the clinic spreadsheet.
const (
	ColumnName        = "Service Name"
	ColumnSkinType    = "Skin Type"
	ColumnSkinProblem = "Skin Problem"
	ColumnMinAge      = "Min Age"
	ColumnMaxAge      = "Max Age"
	ColumnGender      = "Gender"
	ColumnPrice       = "Price (PHP)"
	ColumnBaseScore   = "Base Score"
	ColumnNotes       = "Notes"
)

// RequiredColumns must all be present in a source. Base Score is optional and
// defaults to 0 per row when absent.
var RequiredColumns = []string{
	ColumnName,
	ColumnSkinType,
	ColumnSkinProblem,
	ColumnMinAge,
	ColumnMaxAge,
	ColumnGender,
	ColumnPrice,
	ColumnNotes,
}

// AllColumns lists every known column in spreadsheet order.
var AllColumns = []string{
	ColumnName,
	ColumnSkinType,
	ColumnSkinProblem,
	ColumnMinAge,
	ColumnMaxAge,
	ColumnGender,
	ColumnPrice,
	ColumnBaseScore,
	ColumnNotes,
}

// headerIndex resolves canonical column names to the header spelling used
// by a particular source. Matching ignores case and surrounding space.
type headerIndex map[string]string

func newHeaderIndex(headers []string) headerIndex {
	byKey := make(map[string]string, len(headers))
	for _, h := range headers {
		key := headerKey(h)
		if key == "" {
			continue
		}
		if _, exists := byKey[key]; !exists {
			byKey[key] = h
		}
	}
	idx := make(headerIndex, len(AllColumns))
	for _, canonical := range AllColumns {
		if actual, ok := byKey[headerKey(canonical)]; ok {
			idx[canonical] = actual
		}
	}
	return idx
}

func (h headerIndex) missing() string {
	for _, c := range RequiredColumns {
		if _, ok := h[c]; !ok {
			return c
		}
	}
	return ""
}

func (h headerIndex) value(row Row, canonical string) any {
	actual, ok := h[canonical]
	if !ok {
		return nil
	}
	return row[actual]
}

func headerKey(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}
