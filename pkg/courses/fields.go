package courses

import "strings"

// Field labels as they appear in the flattened block text. The pipe
// separators come from flattening the block markup, so a label is only
// recognized when it sits on its own segment boundary.
const (
	labelOffered     = "|When Offered:|"
	labelCredits     = "|Credit Hours:|"
	labelPrereqExact = "|Prerequisite(s):|"
	labelPrereqCombo = "|Prerequisite or Corequisite:|"
	labelPrereqPlain = "|Prerequisite:|"
	labelCoreqExact  = "|Corequisite(s):|"
	labelCoreqPlain  = "|Corequisite:|"
)

// CombinedRequirementMarker prefixes a prerequisite value that the
// catalog labeled "Prerequisite or Corequisite", so consumers can tell
// the two apart after they are folded into one field.
const CombinedRequirementMarker = "OR/COMBINED: "

// fieldLabels lists every label that can terminate the free-text
// description, in no particular order. Used by the block parser to find
// where the description ends.
var fieldLabels = []string{
	"|When Offered:",
	"|Credit Hours:",
	"|Graded:",
	"|Prerequisite(s):",
	"|Corequisite(s):",
	"|Prerequisite or Corequisite:",
	"|Corequisite:",
	"|Prerequisite:",
}

// ExtractField finds label inside the flattened block text and returns
// the value between the label and the next pipe separator (or end of
// text), with embedded pipes flattened to spaces. The second return is
// false when the label is absent; that is a normal condition, not an
// error.
func ExtractField(blockText, label string) (string, bool) {
	start := strings.Index(blockText, label)
	if start == -1 {
		return "", false
	}

	valueStart := start + len(label)
	valueEnd := strings.Index(blockText[valueStart:], "|")
	if valueEnd == -1 {
		valueEnd = len(blockText)
	} else {
		valueEnd += valueStart
	}

	value := strings.TrimSpace(strings.ReplaceAll(blockText[valueStart:valueEnd], "|", " "))
	if value == "" {
		return "", false
	}
	return value, true
}

// extractPrerequisites applies the label precedence for
// prerequisite-like fields: the exact "Prerequisite(s):" label wins,
// then the combined prerequisite-or-corequisite label (marked so the
// combination survives), then the generic fallback. Catalog authors use
// all three inconsistently, and the generic label must never shadow a
// more specific one.
func extractPrerequisites(blockText string) (string, bool) {
	if v, ok := ExtractField(blockText, labelPrereqExact); ok {
		return v, true
	}
	if v, ok := ExtractField(blockText, labelPrereqCombo); ok {
		return CombinedRequirementMarker + v, true
	}
	if v, ok := ExtractField(blockText, labelPrereqPlain); ok {
		return v, true
	}
	return "", false
}

// extractCorequisites applies the analogous two-tier precedence for
// corequisite labels.
func extractCorequisites(blockText string) (string, bool) {
	if v, ok := ExtractField(blockText, labelCoreqExact); ok {
		return v, true
	}
	if v, ok := ExtractField(blockText, labelCoreqPlain); ok {
		return v, true
	}
	return "", false
}
