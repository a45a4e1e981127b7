// Package enrich cross-references program course references against the
// flat course index, producing self-contained program exports.
package enrich

import (
	"sort"

	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/normalize"
)

// Placeholder markers used when a referenced course code is absent from
// the course index. A miss is expected (programs reference courses from
// departments scraped on other pages, or retired courses) and must
// never fail the export.
const (
	NameNotFound         = "Name not found"
	DetailsNotFound      = "Details not found"
	PrerequisitesUnknown = "Unknown"
)

// Program joins one program's course references against the course
// index. References are de-duplicated by code across the whole program
// (first occurrence's credit estimate kept) and the required list is
// sorted by code. Sections flagged elective are exported as free text
// instead.
func Program(program domain.Program, index map[string]domain.Course) domain.EnrichedProgram {
	out := domain.EnrichedProgram{
		ProgramName:            program.Name,
		TotalEstimatedCredits:  program.CreditHours,
		RequiredCourses:        []domain.RequiredCourse{},
		ElectiveAndTrackDetail: []domain.ElectiveDetail{},
	}

	seen := make(map[string]struct{})
	for _, detail := range program.Details {
		if detail.IsElectiveSection {
			out.ElectiveAndTrackDetail = append(out.ElectiveAndTrackDetail, domain.ElectiveDetail{
				SectionHeader: detail.Header,
				SectionText:   detail.Text,
			})
			continue
		}

		for _, ref := range detail.Courses {
			if _, dup := seen[ref.Code]; dup {
				continue
			}
			seen[ref.Code] = struct{}{}
			out.RequiredCourses = append(out.RequiredCourses, resolve(ref, index))
		}
	}

	sort.Slice(out.RequiredCourses, func(i, j int) bool {
		return out.RequiredCourses[i].Code < out.RequiredCourses[j].Code
	})

	return out
}

// Catalog enriches every program in the catalog, sorted by program name
// so the export is deterministic.
func Catalog(programs map[string]domain.Program, index map[string]domain.Course) []domain.EnrichedProgram {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	enriched := make([]domain.EnrichedProgram, 0, len(names))
	for _, name := range names {
		enriched = append(enriched, Program(programs[name], index))
	}
	return enriched
}

// resolve looks a reference up in the course index, synthesizing a
// placeholder record that carries the reference's own credit estimate
// when the code is unknown.
func resolve(ref domain.CourseRef, index map[string]domain.Course) domain.RequiredCourse {
	course, ok := index[ref.Code]
	if !ok {
		return domain.RequiredCourse{
			Code:          ref.Code,
			Name:          NameNotFound,
			Credits:       ref.Credits,
			Prerequisites: PrerequisitesUnknown,
			Description:   DetailsNotFound,
		}
	}

	credits := normalize.ParseCredits(course.Credits)
	if credits == 0 {
		credits = ref.Credits
	}

	return domain.RequiredCourse{
		Code:          course.Code,
		Name:          course.Name,
		Credits:       credits,
		Prerequisites: course.Prerequisites,
		Description:   course.Description,
	}
}
