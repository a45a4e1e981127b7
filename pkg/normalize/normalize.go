// Package normalize converts raw scraped field strings into canonical
// typed values. Every function is pure and total: bad input degrades to
// a documented default, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSemesters is the assumption applied when the offered-terms
// text is missing or matches no known term.
var DefaultSemesters = []string{"Fall", "Spring"}

var digitRunRe = regexp.MustCompile(`\d+`)

// ParseCredits converts a raw credits string into an integer.
//
//	"4"        -> 4
//	"1 to 4"   -> 4
//	"1-4"      -> 4
//	"0 or 4"   -> 4
//	"Variable" -> 0
//	""         -> 0
//
// Ranges and disjunctions resolve to the highest value found.
func ParseCredits(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	max := 0
	for _, run := range digitRunRe.FindAllString(raw, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// ParseSemesters converts offered-term prose into an ordered term list.
// "Yearly" and unmatched text both resolve to the Fall+Spring default;
// the result is never empty.
func ParseSemesters(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultSemesters...)
	}

	text := strings.ToLower(raw)

	var semesters []string
	if strings.Contains(text, "yearly") {
		semesters = append(semesters, "Fall", "Spring")
	} else {
		if strings.Contains(text, "fall") {
			semesters = append(semesters, "Fall")
		}
		if strings.Contains(text, "spring") {
			semesters = append(semesters, "Spring")
		}
		if strings.Contains(text, "summer") {
			semesters = append(semesters, "Summer")
		}
	}

	if len(semesters) == 0 {
		return append([]string(nil), DefaultSemesters...)
	}
	return semesters
}

// ParseList converts comma-joined prerequisite text into a token list.
// Empty text or anything signalling "none" yields an empty list.
func ParseList(raw string) []string {
	if raw == "" || strings.Contains(strings.ToLower(raw), "none") {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		items = append(items, strings.TrimSpace(p))
	}
	return items
}
