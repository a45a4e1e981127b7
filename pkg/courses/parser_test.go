package courses

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"catalog-scrape/pkg/domain"
)

const courseListPage = `<html><body><div id="content"><ul>
<li><strong>CSCI 1100 - Computer Science I</strong> An introduction to computer programming algorithm design and analysis. <strong>When Offered:</strong> Fall and Spring. <strong>Credit Hours:</strong> 4 <strong>Prerequisite(s):</strong> None.</li>
<li>Use the filters above to narrow the course list.</li>
<li><strong>MATH 2010 - Multivariable Calculus and Matrix Algebra</strong> Vectors, partial derivatives, and matrix algebra. <strong>Prerequisite or Corequisite:</strong> MATH 1020. <strong>Credit Hours:</strong> 4</li>
</ul></div></body></html>`

func TestParsePage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(courseListPage))
	require.NoError(t, err)

	records := ParsePage(doc)
	require.Len(t, records, 3)

	first := records[0]
	require.Equal(t, "CSCI 1100", first.Code)
	require.Equal(t, "Computer Science I", first.Name)
	require.Equal(t, "An introduction to computer programming algorithm design and analysis.", first.Description)
	require.Equal(t, "4", first.Credits)
	require.Equal(t, "Fall and Spring.", first.Offered)
	require.Equal(t, "None.", first.Prerequisites)
	require.Equal(t, domain.NoneListed, first.Corequisites)

	// A non-course list item degrades to a sentinel record instead of
	// aborting the page.
	second := records[1]
	require.Equal(t, domain.NotAvailable, second.Code)
	require.True(t, second.IsPlaceholder())

	third := records[2]
	require.Equal(t, "MATH 2010", third.Code)
	require.Equal(t, "Multivariable Calculus and Matrix Algebra", third.Name)
	require.Equal(t, CombinedRequirementMarker+"MATH 1020.", third.Prerequisites)
}

func TestFlattenBlockText(t *testing.T) {
	html := `<li><strong>CSCI 1100 - Computer Science I</strong>
	 Some description.
	<em> When Offered: </em> Fall </li>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	got := FlattenBlockText(doc.Find("li"))
	require.Equal(t, "CSCI 1100 - Computer Science I|Some description.|When Offered:|Fall", got)
}

func TestDescriptionBefore(t *testing.T) {
	require.Equal(t, "Desc text.", descriptionBefore("Desc text.|Credit Hours:|4"))
	require.Equal(t, "", descriptionBefore(""))

	// The earliest label wins, whatever order the labels appear in.
	got := descriptionBefore("Short.|When Offered:|Fall|Credit Hours:|4")
	require.Equal(t, "Short.", got)
}
