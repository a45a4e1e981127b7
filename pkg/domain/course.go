package domain

// Sentinel values carried by raw course records when a field could not
// be parsed out of the catalog markup. Downstream consumers treat them
// as "absent", never as errors.
const (
	NotAvailable = "N/A"
	NoneListed   = "None listed"
	Unknown      = "Unknown"
)

// Course is the raw, untyped view of one catalog entry as scraped from
// a course-list page. Every field is free text exactly as it appeared
// in the catalog; normalization happens later.
type Course struct {
	Code          string `json:"Code"`
	Name          string `json:"Name"`
	Description   string `json:"Description"`
	Credits       string `json:"Credits"`
	Prerequisites string `json:"Prerequisites"`
	Corequisites  string `json:"Corequisites"`
	Offered       string `json:"Offered"`
}

// NewCourse returns a course record with all fields at their sentinel
// defaults. Parsers fill in whatever they manage to extract.
func NewCourse() Course {
	return Course{
		Code:          NotAvailable,
		Name:          NotAvailable,
		Description:   NotAvailable,
		Credits:       NotAvailable,
		Prerequisites: NoneListed,
		Corequisites:  NoneListed,
		Offered:       Unknown,
	}
}

// IsPlaceholder reports whether the record carries no detail beyond its
// code. Used by the merger so a bare reference never clobbers a fully
// parsed record.
func (c Course) IsPlaceholder() bool {
	return c.Name == NotAvailable && c.Description == NotAvailable
}

// NormalizedCourse is the canonical typed form of a course record,
// produced by the normalize stage and consumed by the loader.
type NormalizedCourse struct {
	CourseID         string   `json:"course_id"`
	Name             string   `json:"name"`
	Credits          int      `json:"credits"`
	SemestersOffered []string `json:"semesters_offered"`
	Prerequisites    []string `json:"prerequisites"`
}
