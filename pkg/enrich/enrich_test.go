package enrich

import (
	"testing"

	"github.com/stretchr/testify/require"

	"catalog-scrape/pkg/domain"
)

func testIndex() map[string]domain.Course {
	return map[string]domain.Course{
		"CSCI 1100": {
			Code:          "CSCI 1100",
			Name:          "Computer Science I",
			Description:   "An introduction.",
			Credits:       "4",
			Prerequisites: "None listed",
		},
		"MATH 1010": {
			Code:        "MATH 1010",
			Name:        "Calculus I",
			Description: "Limits and derivatives.",
			Credits:     "Variable",
		},
	}
}

func TestProgram(t *testing.T) {
	program := domain.Program{
		Name:        "Computer Science",
		CreditHours: 128,
		Details: []domain.RequirementDetail{
			{
				Header: "First Year",
				Courses: []domain.CourseRef{
					{Code: "MATH 1010", Credits: 4},
					{Code: "CSCI 1100", Credits: 4},
					{Code: "PHIL 9999", Credits: 4},
				},
			},
			{
				Header: "Second Year",
				Courses: []domain.CourseRef{
					{Code: "CSCI 1100", Credits: 2},
				},
			},
			{
				Header:            "Electives",
				Text:              "Choose free electives.",
				IsElectiveSection: true,
			},
		},
	}

	out := Program(program, testIndex())

	require.Equal(t, "Computer Science", out.ProgramName)
	require.Equal(t, 128, out.TotalEstimatedCredits)

	// Duplicate references collapse program-wide and the result is
	// sorted by code.
	require.Len(t, out.RequiredCourses, 3)
	require.Equal(t, "CSCI 1100", out.RequiredCourses[0].Code)
	require.Equal(t, "MATH 1010", out.RequiredCourses[1].Code)
	require.Equal(t, "PHIL 9999", out.RequiredCourses[2].Code)

	resolved := out.RequiredCourses[0]
	require.Equal(t, "Computer Science I", resolved.Name)
	require.Equal(t, 4, resolved.Credits)
	require.Equal(t, "An introduction.", resolved.Description)

	// Unparseable credit text falls back to the reference's estimate.
	require.Equal(t, 4, out.RequiredCourses[1].Credits)

	// An unknown code becomes a placeholder, never a failure.
	missing := out.RequiredCourses[2]
	require.Equal(t, NameNotFound, missing.Name)
	require.Equal(t, DetailsNotFound, missing.Description)
	require.Equal(t, PrerequisitesUnknown, missing.Prerequisites)
	require.Equal(t, 4, missing.Credits)

	require.Len(t, out.ElectiveAndTrackDetail, 1)
	require.Equal(t, "Electives", out.ElectiveAndTrackDetail[0].SectionHeader)
	require.Equal(t, "Choose free electives.", out.ElectiveAndTrackDetail[0].SectionText)
}

func TestProgram_EmptySlicesInitialized(t *testing.T) {
	out := Program(domain.Program{Name: "Empty"}, nil)
	require.NotNil(t, out.RequiredCourses)
	require.NotNil(t, out.ElectiveAndTrackDetail)
}

func TestCatalog_SortedByName(t *testing.T) {
	programs := map[string]domain.Program{
		"Mathematics":      {Name: "Mathematics"},
		"Aeronautics":      {Name: "Aeronautics"},
		"Computer Science": {Name: "Computer Science"},
	}

	enriched := Catalog(programs, testIndex())
	require.Len(t, enriched, 3)
	require.Equal(t, "Aeronautics", enriched[0].ProgramName)
	require.Equal(t, "Computer Science", enriched[1].ProgramName)
	require.Equal(t, "Mathematics", enriched[2].ProgramName)
}
