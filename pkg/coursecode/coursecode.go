// Package coursecode recognizes department-code + number course tokens
// (e.g. "CSCI 1100") embedded in arbitrary catalog text.
package coursecode

import (
	"regexp"
	"sort"
)

// Pattern matches a standard course code: 3-4 uppercase department
// letters, a space, a 4-digit number, and an optional trailing letter.
var Pattern = regexp.MustCompile(`[A-Z]{3,4}\s\d{4}[A-Z]?`)

// Find extracts the unique course codes from text, sorted
// lexicographically. It never fails; no input means no codes.
func Find(text string) []string {
	if text == "" {
		return nil
	}

	matches := Pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var codes []string
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		codes = append(codes, m)
	}

	sort.Strings(codes)
	return codes
}
