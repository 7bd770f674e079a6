// Package normalize turns loosely typed cell and form values into the
// case-folded scalars, token sets and numbers the matcher compares.
//
// Every function here is total: unparseable input falls back to a default
// and nothing returns an error.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Gender rules understood by the matcher.
const (
	GenderAny    = "any"
	GenderMale   = "male"
	GenderFemale = "female"
)

// Scalar returns raw as trimmed, lowercased text. nil yields "".
func Scalar(raw any) string {
	text, ok := toText(raw)
	if !ok {
		return ""
	}
	return fold(text)
}

// Text returns raw trimmed but with its case preserved, for display.
func Text(raw any) string {
	text, ok := toText(raw)
	if !ok {
		return ""
	}
	return strings.TrimSpace(norm.NFC.String(text))
}

// MultiValue splits comma separated values into a de-duplicated token set.
// A []string (multi-select input) is flattened; each element is split too.
func MultiValue(raw any) TokenSet {
	var set TokenSet
	switch v := raw.(type) {
	case nil:
		return set
	case []string:
		for _, item := range v {
			set.addCSV(item)
		}
	case []any:
		for _, item := range v {
			if text, ok := toText(item); ok {
				set.addCSV(text)
			}
		}
	default:
		if text, ok := toText(v); ok {
			set.addCSV(text)
		}
	}
	return set
}

// Number parses raw as a float. Missing, unparseable or non-finite values
// yield def.
func Number(raw any, def float64) float64 {
	switch v := raw.(type) {
	case nil:
		return def
	case float64:
		return finiteOr(v, def)
	case float32:
		return finiteOr(float64(v), def)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		return def
	}
	text, ok := toText(raw)
	if !ok {
		return def
	}
	cleaned := cleanNumeric(text)
	if cleaned == "" {
		return def
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return def
	}
	return finiteOr(f, def)
}

// Int parses raw like Number and truncates toward zero, so spreadsheet
// values such as "25.0" read as 25.
func Int(raw any, def int) int {
	f := Number(raw, math.NaN())
	if math.IsNaN(f) {
		return def
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return def
	}
	return int(f)
}

// Gender maps free-text gender values onto GenderAny, GenderMale or
// GenderFemale. Unrecognized values are GenderAny.
func Gender(raw any) string {
	switch Scalar(raw) {
	case "m", "male", "man", "men":
		return GenderMale
	case "f", "female", "woman", "women":
		return GenderFemale
	default:
		return GenderAny
	}
}

// IsBlank reports whether raw carries no value at all: nil, or text that is
// empty after trimming.
func IsBlank(raw any) bool {
	if raw == nil {
		return true
	}
	switch v := raw.(type) {
	case []string:
		for _, item := range v {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	}
	text, ok := toText(raw)
	return !ok || strings.TrimSpace(text) == ""
}

func fold(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(text)))
}

func toText(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case float64:
		if math.IsNaN(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// cleanNumeric strips currency markers and thousands separators.
func cleanNumeric(text string) string {
	s := strings.TrimSpace(norm.NFC.String(text))
	for _, prefix := range []string{"php", "₱", "p"} {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func finiteOr(f, def float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
