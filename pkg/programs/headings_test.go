package programs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"catalog-scrape/pkg/domain"
)

const departmentPage = `<html><body><div id="content">
<h2>Table of Contents and Index</h2>
<h2>Computer Science</h2>
<p>The curriculum comprises:</p>
<ul>
<li><a href="preview_course.php?coid=1">CSCI 1100</a> - Computer Science I (4 credit hours)</li>
<li><a href="preview_course.php?coid=2">CSCI 1200:</a> Data Structures 8 credit hours</li>
<li><a href="preview_course.php?coid=3">MATH 1010</a> - Calculus I</li>
<li>Science option</li>
<li>Capstone experience</li>
<li>Writing requirement</li>
<li>Four electives chosen with an adviser</li>
<li>Two laboratory experiences</li>
<li>Professional development seminar</li>
<li>Mathematics option</li>
<li>Depth sequence</li>
<li>Culminating project</li>
</ul>
<h2>Registration</h2>
<ul><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li><li>f</li></ul>
<h3>Minors</h3>
<ul><li>one</li><li>two</li><li>three</li></ul>
</div></body></html>`

func TestParseHeadingLists(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(departmentPage))
	require.NoError(t, err)

	programs := ParseHeadingLists(doc)

	// "Registration" is a policy section, "Minors" has too few items and
	// the table-of-contents stub is rejected outright.
	require.Len(t, programs, 1)

	program, ok := programs["Computer Science"]
	require.True(t, ok)
	require.Equal(t, 12, program.CreditHours)
	require.Len(t, program.Details, 1)

	detail := program.Details[0]
	require.Equal(t, "Computer Science", detail.Header)
	require.False(t, detail.IsElectiveSection)
	require.Contains(t, detail.Text, "Capstone experience")

	require.Len(t, detail.Courses, 3)
	require.Equal(t, domain.CourseRef{Code: "CSCI 1100", Credits: 4}, detail.Courses[0])
	require.Equal(t, domain.CourseRef{Code: "CSCI 1200", Credits: 8}, detail.Courses[1])
	require.Equal(t, domain.CourseRef{Code: "MATH 1010", Credits: DefaultCourseCredits}, detail.Courses[2])
}

func TestParseHeadingLists_NestedList(t *testing.T) {
	page := `<html><body><div id="content">
<h2>Information Technology</h2>
<div><ul>
<li>one</li><li>two</li><li>three</li><li>four</li><li>five</li>
</ul></div>
</div></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	programs := ParseHeadingLists(doc)
	require.Contains(t, programs, "Information Technology")
}

func TestIsProgramHeading(t *testing.T) {
	tests := []struct {
		name     string
		heading  string
		expected bool
	}{
		{name: "program name", heading: "Computer Science", expected: true},
		{name: "excluded policy section", heading: "Registration", expected: false},
		{name: "excluded case insensitive", heading: "ACADEMIC POLICIES", expected: false},
		{name: "table of contents stub", heading: "Table of Contents and Index", expected: false},
		{name: "over-long page title", heading: strings.Repeat("x", 81), expected: false},
		{name: "empty", heading: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, isProgramHeading(tt.heading))
		})
	}
}
