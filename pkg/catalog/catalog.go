// Package catalog accumulates per-page parse results into one
// in-memory catalog: a course index keyed by code and a program map
// keyed by name.
package catalog

import (
	"github.com/PuerkitoBio/goquery"

	"catalog-scrape/pkg/courses"
	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/programs"
)

// PageResult is everything parsed out of a single catalog page.
type PageResult struct {
	Courses  []domain.Course
	Programs map[string]domain.Program
}

// Feature is one parsing routine applied to a page. Features run in the
// order they are registered; there is no runtime discovery.
type Feature func(result *PageResult, doc *goquery.Document, rawHTML string)

// CourseRecordsFeature extracts raw course records from a course-list
// page.
func CourseRecordsFeature(result *PageResult, doc *goquery.Document, _ string) {
	result.Courses = append(result.Courses, courses.ParsePage(doc)...)
}

// ProgramRequirementsFeature extracts program requirement trees,
// selecting the parsing strategy by page shape: structured program
// pages carry a dedicated name heading or descriptions container,
// heading+list pages carry neither.
func ProgramRequirementsFeature(result *PageResult, doc *goquery.Document, rawHTML string) {
	var parsed map[string]domain.Program
	if programs.IsStructuredPage(doc) {
		parsed = programs.ParseStructured(doc, rawHTML)
	} else {
		parsed = programs.ParseHeadingLists(doc)
	}

	if result.Programs == nil {
		result.Programs = make(map[string]domain.Program)
	}
	for name, program := range parsed {
		result.Programs[name] = program
	}
}

// DefaultFeatures is the full parse applied to a page whose shape is
// not known in advance.
var DefaultFeatures = []Feature{
	CourseRecordsFeature,
	ProgramRequirementsFeature,
}

// ParsePage runs the given features against one page in order and
// returns the combined result.
func ParsePage(doc *goquery.Document, rawHTML string, features []Feature) PageResult {
	var result PageResult
	for _, feature := range features {
		feature(&result, doc, rawHTML)
	}
	return result
}

// Catalog is the aggregation root for one scrape run. It is owned by
// the orchestrating caller and mutated only through Merge.
type Catalog struct {
	Courses  map[string]domain.Course
	Programs map[string]domain.Program
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		Courses:  make(map[string]domain.Course),
		Programs: make(map[string]domain.Program),
	}
}

// Merge unions a page's results into the catalog. Courses merge per
// key with last-write-wins, except that a placeholder record never
// overwrites a detailed one. Programs replace whole records by name;
// when two pages describe the same program differently the later page
// silently wins. That is intentional, documented behavior.
func (c *Catalog) Merge(page PageResult) {
	for _, course := range page.Courses {
		existing, ok := c.Courses[course.Code]
		if ok && course.IsPlaceholder() && !existing.IsPlaceholder() {
			continue
		}
		c.Courses[course.Code] = course
	}

	for name, program := range page.Programs {
		c.Programs[name] = program
	}
}
