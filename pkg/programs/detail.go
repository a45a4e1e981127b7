// Package programs parses degree-program pages into requirement trees.
// Two page shapes coexist in the catalog: older heading+list pages and
// newer structured program pages; each gets its own parsing strategy.
package programs

import (
	"regexp"
	"strings"

	"catalog-scrape/pkg/coursecode"
	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/normalize"
)

// DefaultCourseCredits is the modal course credit value for this
// catalog, assumed whenever a referenced course carries no explicit
// credit text. A deliberate domain fallback, not a missing-data error.
const DefaultCourseCredits = 4

// ElectivePhrases flags a requirement section as elective when any of
// them appears in its text (case-insensitive substring match).
var ElectivePhrases = []string{
	"free elective",
	"h&ss elective",
	"humanities elective",
	"technical elective",
	"free elect.",
	"h&ss elect.",
	"h/ss elect.",
	"restricted elective",
}

var (
	blockCreditsRe   = regexp.MustCompile(`(\d+)\s+(?:credit|elect)`)
	leadingCreditsRe = regexp.MustCompile(`^(\d+)\s+(credit|hour)`)
)

// ExtractDetail finalizes one logical requirement block: it mines the
// text for course references, estimates the block's credits and
// classifies it as elective or required. electiveFlag forces elective
// classification regardless of the text.
func ExtractDetail(header, text string, electiveFlag bool) domain.RequirementDetail {
	refs := FindCourseRefs(text)

	if !electiveFlag {
		electiveFlag = containsElectivePhrase(text)
	}

	return domain.RequirementDetail{
		Header:            header,
		Text:              text,
		Credits:           estimateBlockCredits(text, refs),
		Courses:           refs,
		IsElectiveSection: electiveFlag,
	}
}

// estimateBlockCredits applies the credit-estimation cascade: an
// explicit "N credit"/"N elect" mention wins, then the sum of inferred
// per-course credits, then a numeral opening the block, then zero.
func estimateBlockCredits(text string, refs []domain.CourseRef) int {
	if m := blockCreditsRe.FindStringSubmatch(text); m != nil {
		if n, err := normalize.SafeIntLenient(m[1]); err == nil {
			return n
		}
	}

	if len(refs) > 0 {
		sum := 0
		for _, ref := range refs {
			sum += ref.Credits
		}
		return sum
	}

	if m := leadingCreditsRe.FindStringSubmatch(text); m != nil {
		if n, err := normalize.SafeIntLenient(m[1]); err == nil {
			return n
		}
	}
	return 0
}

// FindCourseRefs extracts the distinct course codes referenced in a
// text block, first occurrence wins, each paired with the credit value
// inferred from the text around it.
func FindCourseRefs(text string) []domain.CourseRef {
	codes := coursecode.Find(text)

	seen := make(map[string]struct{}, len(codes))
	var refs []domain.CourseRef
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		refs = append(refs, domain.CourseRef{
			Code:    code,
			Credits: inferCourseCredits(code, text),
		})
	}
	return refs
}

// inferCourseCredits searches the block text for a credit mention
// following the given code ("Credit Hours: N", "credits: N" or ": N"),
// across line breaks, and falls back to the modal default when nothing
// matches.
func inferCourseCredits(code, text string) int {
	re, err := regexp.Compile(`(?is)` + regexp.QuoteMeta(code) + `.*?\s*(?:Credit\s*Hours:\s*|credits:\s*|:)\s*(\d+)`)
	if err != nil {
		return DefaultCourseCredits
	}

	m := re.FindStringSubmatch(text)
	if m == nil {
		return DefaultCourseCredits
	}

	n, err := normalize.SafeIntLenient(m[1])
	if err != nil {
		return DefaultCourseCredits
	}
	return n
}

func containsElectivePhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range ElectivePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
