package domain

// CourseRef is a single course reference found inside a requirement
// block, paired with the credit value inferred from the surrounding
// text.
type CourseRef struct {
	Code    string `json:"code"`
	Credits int    `json:"credits"`
}

// RequirementDetail is one logical section of a program's stated
// requirements: a heading plus the body text, credit estimate and
// course references that follow it.
type RequirementDetail struct {
	Header            string      `json:"header"`
	Text              string      `json:"text"`
	Credits           int         `json:"credits"`
	Courses           []CourseRef `json:"courses"`
	IsElectiveSection bool        `json:"is_elective_section"`
}

// Program is the requirement tree scraped from one program page.
// Identity is Name; a later page describing the same program replaces
// the whole record.
type Program struct {
	Name        string              `json:"name"`
	CreditHours int                 `json:"credit_hours"`
	Details     []RequirementDetail `json:"details"`
}

// RequiredCourse is a denormalized course entry in the enriched program
// export, resolved against the flat course index.
type RequiredCourse struct {
	Code          string `json:"Code"`
	Name          string `json:"Name"`
	Credits       int    `json:"Credits"`
	Prerequisites string `json:"Prerequisites"`
	Description   string `json:"Description"`
}

// ElectiveDetail is a requirement section flagged as elective, exported
// verbatim for downstream planners.
type ElectiveDetail struct {
	SectionHeader string `json:"section_header"`
	SectionText   string `json:"section_text"`
}

// EnrichedProgram is the final self-contained export for one program:
// every referenced course joined against the course index, plus the
// elective sections kept as free text.
type EnrichedProgram struct {
	ProgramName            string           `json:"program_name"`
	TotalEstimatedCredits  int              `json:"total_estimated_credits"`
	RequiredCourses        []RequiredCourse `json:"required_courses"`
	ElectiveAndTrackDetail []ElectiveDetail `json:"elective_and_track_details"`
}
