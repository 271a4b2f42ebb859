// Package fields resolves values out of upstream records whose field
// naming drifted across API revisions. Alias lists live in the packages
// that own each record shape; this package is only the lookup and
// coercion machinery, so schema drift stays a data change.
package fields

import (
	"math"
	"strconv"
	"strings"
)

// Lookup returns the first present, non-nil value for the given alias
// list. Exact key match wins over case-insensitive match, and earlier
// aliases win over later ones.
func Lookup(rec map[string]any, aliases []string) (any, bool) {
	for _, a := range aliases {
		if v, ok := rec[a]; ok && v != nil {
			return v, true
		}
	}
	for _, a := range aliases {
		for k, v := range rec {
			if v != nil && strings.EqualFold(k, a) {
				return v, true
			}
		}
	}
	return nil, false
}

// String coerces a scalar to its display string. Numbers drop a trailing
// ".0" so integer-valued JSON numbers print naturally.
func String(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// Number coerces a scalar to a finite float64. Numeric strings are
// accepted because some upstream revisions quoted prices.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
