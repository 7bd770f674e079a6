package catalog

import (
	"sort"
	"strconv"

	"skincare-recommender/internal/normalize"
	"skincare-recommender/internal/shared/telemetry"
	"skincare-recommender/internal/shared/util"
)

const (
	defaultMinAge = 0
	defaultMaxAge = 200
)

// Row is one raw catalog row keyed by the source's column headers. Values
// are whatever the reader produced: strings, numbers or nil for empty cells.
type Row map[string]any

// Service is one normalized catalog entry. Services are never mutated after
// the catalog is built.
type Service struct {
	// Position is the 0-based load order, used as the final ranking tie-break.
	Position     int
	Name         string
	GenderRule   string
	MinAge       int
	MaxAge       int
	SkinTypes    normalize.TokenSet
	SkinProblems normalize.TokenSet
	Price        float64
	BaseScore    float64
	Notes        string

	// Source text kept for display.
	RawGender      string
	RawSkinType    string
	RawSkinProblem string
}

// Catalog is the ordered, read-only list of services. A *Catalog is safe
// for concurrent readers.
type Catalog struct {
	services []Service
	version  string
	options  Options
}

// Options are the distinct values offered in the profile form.
type Options struct {
	Genders      []string `json:"genders"`
	SkinTypes    []string `json:"skinTypes"`
	SkinProblems []string `json:"skinProblems"`
}

// New normalizes rows into a Catalog. It fails when a required column is
// missing from columns. Rows without a service name are skipped.
func New(columns []string, rows []Row) (*Catalog, error) {
	idx := newHeaderIndex(columns)
	if missing := idx.missing(); missing != "" {
		return nil, &MissingColumnError{Column: missing}
	}

	services := make([]Service, 0, len(rows))
	for i, row := range rows {
		svc, ok := normalizeRow(idx, row)
		if !ok {
			telemetry.Info("catalog.row_skipped", map[string]any{
				"row":    i + 1,
				"reason": "empty service name",
			})
			continue
		}
		svc.Position = len(services)
		services = append(services, svc)
	}

	return &Catalog{
		services: services,
		version:  fingerprint(services),
		options:  buildOptions(services),
	}, nil
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.services)
}

// At returns the service at load position i.
func (c *Catalog) At(i int) Service {
	return c.services[i]
}

// Services returns a copy of all services in load order.
func (c *Catalog) Services() []Service {
	if c == nil {
		return []Service{}
	}
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Version identifies the normalized catalog contents.
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Options returns the dropdown values derived from the catalog.
func (c *Catalog) Options() Options {
	if c == nil {
		return buildOptions(nil)
	}
	return Options{
		Genders:      append([]string{}, c.options.Genders...),
		SkinTypes:    append([]string{}, c.options.SkinTypes...),
		SkinProblems: append([]string{}, c.options.SkinProblems...),
	}
}

func normalizeRow(idx headerIndex, row Row) (Service, bool) {
	name := normalize.Text(idx.value(row, ColumnName))
	if name == "" {
		return Service{}, false
	}

	minAge := clampInt(normalize.Int(idx.value(row, ColumnMinAge), defaultMinAge))
	maxAge := clampInt(normalize.Int(idx.value(row, ColumnMaxAge), defaultMaxAge))
	if minAge > maxAge {
		minAge, maxAge = maxAge, minAge
	}

	return Service{
		Name:           name,
		GenderRule:     normalize.Gender(idx.value(row, ColumnGender)),
		MinAge:         minAge,
		MaxAge:         maxAge,
		SkinTypes:      normalize.MultiValue(idx.value(row, ColumnSkinType)),
		SkinProblems:   normalize.MultiValue(idx.value(row, ColumnSkinProblem)),
		Price:          clampFloat(normalize.Number(idx.value(row, ColumnPrice), 0)),
		BaseScore:      clampFloat(normalize.Number(idx.value(row, ColumnBaseScore), 0)),
		Notes:          normalize.Text(idx.value(row, ColumnNotes)),
		RawGender:      normalize.Text(idx.value(row, ColumnGender)),
		RawSkinType:    normalize.Text(idx.value(row, ColumnSkinType)),
		RawSkinProblem: normalize.Text(idx.value(row, ColumnSkinProblem)),
	}, true
}

func buildOptions(services []Service) Options {
	types := map[string]struct{}{}
	problems := map[string]struct{}{}
	for _, svc := range services {
		for _, t := range svc.SkinTypes.Values() {
			types[t] = struct{}{}
		}
		for _, p := range svc.SkinProblems.Values() {
			problems[p] = struct{}{}
		}
	}
	return Options{
		Genders:      []string{"Any", "Male", "Female"},
		SkinTypes:    sortedKeys(types),
		SkinProblems: sortedKeys(problems),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func fingerprint(services []Service) string {
	parts := make([]string, 0, len(services)*12)
	for _, svc := range services {
		parts = append(parts,
			svc.Name,
			svc.GenderRule,
			strconv.Itoa(svc.MinAge),
			strconv.Itoa(svc.MaxAge),
			svc.SkinTypes.String(),
			svc.SkinProblems.String(),
			strconv.FormatFloat(svc.Price, 'f', -1, 64),
			strconv.FormatFloat(svc.BaseScore, 'f', -1, 64),
			svc.Notes,
			svc.RawGender,
			svc.RawSkinType,
			svc.RawSkinProblem,
		)
	}
	return util.Fingerprint(parts...)
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
