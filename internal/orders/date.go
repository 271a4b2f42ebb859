package orders

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultYearPivot splits two-digit years: yy >= pivot reads as 19yy,
// below it as 20yy. The split point was never verified against a real
// requirement, so it stays configurable rather than baked in.
const DefaultYearPivot = 51

var dmyRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)

// Generic fallback layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123,
}

// DateParser turns ambiguous purchase-date values into sortable unix
// millisecond instants. The zero value uses DefaultYearPivot.
type DateParser struct {
	Pivot int
}

func (p DateParser) pivot() int {
	if p.Pivot <= 0 {
		return DefaultYearPivot
	}
	return p.Pivot
}

// Parse never fails: unparseable input yields 0, the oldest/unknown
// sentinel, so sorting always has a total order. Tried in order:
// epoch number (ten decimal digits or fewer reads as seconds, more as
// milliseconds), then D/M/Y with a 2- or 4-digit year, then the generic
// layouts.
func (p DateParser) Parse(value any) int64 {
	switch v := value.(type) {
	case float64:
		return epochMillis(v)
	case int:
		return epochMillis(float64(v))
	case int64:
		return epochMillis(float64(v))
	case string:
		return p.parseString(strings.TrimSpace(v))
	default:
		return 0
	}
}

func epochMillis(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if digits := len(strconv.FormatInt(int64(v), 10)); digits <= 10 {
		return int64(v * 1000)
	}
	return int64(v)
}

func (p DateParser) parseString(s string) int64 {
	if s == "" {
		return 0
	}
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) <= 2 {
			if year >= p.pivot() {
				year += 1900
			} else {
				year += 2000
			}
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
		}
		return 0
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return epochMillis(n)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

// ParseOrderDate parses with the default pivot.
func ParseOrderDate(value any) int64 {
	return DateParser{}.Parse(value)
}

// displayDate renders a purchase-date value for the order table. Epoch
// numbers and ISO-like strings are reformatted to DD/MM/YYYY; strings
// already in D/M/Y (or anything unrecognized) stay verbatim so the
// original formatting survives.
func (p DateParser) displayDate(value any) string {
	const layout = "02/01/2006"
	switch v := value.(type) {
	case float64, int, int64:
		if ms := p.Parse(v); ms != 0 {
			return time.UnixMilli(ms).UTC().Format(layout)
		}
		return ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if dmyRe.MatchString(s) {
			return s
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			if ms := epochMillis(n); ms != 0 {
				return time.UnixMilli(ms).UTC().Format(layout)
			}
			return s
		}
		for _, l := range dateLayouts {
			if t, err := time.Parse(l, s); err == nil {
				return t.UTC().Format(layout)
			}
		}
		return s
	default:
		return ""
	}
}
