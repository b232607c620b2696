package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// missingSentinels are the literal strings the upstream feeds use for
// an absent observation. Matching is exact and case-sensitive.
var missingSentinels = map[string]bool{
	"":    true,
	".":   true,
	"NA":  true,
	"nan": true,
	"NaN": true,
}

// Float converts a raw provider value into a float pointer. A nil
// return means the value is missing: sentinel strings, unparseable
// input, and non-finite numbers all count as missing. Callers can tell
// an absent value apart from a real zero.
func Float(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if missingSentinels[s] {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	// JSON cannot carry NaN or Inf.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// dateLayouts are the ISO-8601 shapes the feeds produce.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date parses an ISO-8601 date string.
func Date(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
