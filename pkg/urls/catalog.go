// Package urls discovers catalog page URLs from the catalog index
// page: department course listings and program preview pages.
package urls

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BaseURL is the fixed base against which relative catalog links are
// resolved.
const BaseURL = "https://catalog.rpi.edu/"

// IndexURL is the catalog index page listing department course pages
// and program previews.
const IndexURL = "https://catalog.rpi.edu/content.php?catoid=33&navoid=873"

// CourseListURL is the print-view course list, paginated via the cpage
// filter parameter.
const CourseListURL = "https://catalog.rpi.edu/content.php?filter%5B27%5D=-1&filter%5B29%5D=&filter%5Bcourse_type%5D=-1&filter%5Bkeyword%5D=&filter%5B32%5D=1&filter%5Bcpage%5D=1&cur_cat_oid=33&expand=1&navoid=891&print=1&filter%5Bexact_match%5D=1"

// CourseListPages is how many print-view pages the course list spans.
const CourseListPages = 22

// CourseListPageURL returns the print-view URL for one course-list
// page.
func CourseListPageURL(page int) string {
	return strings.Replace(CourseListURL, "&filter%5Bcpage%5D=1", fmt.Sprintf("&filter%%5Bcpage%%5D=%d", page), 1)
}

// ExtractDepartmentURLs returns the department course-page URLs linked
// from the index page markup: links carrying both navoid and catoid
// parameters, excluding print links and absolute URLs. Relative links
// resolve against BaseURL; duplicates collapse, first occurrence wins.
func ExtractDepartmentURLs(doc *goquery.Document) []string {
	return extractLinks(doc, func(href string) bool {
		return strings.Contains(href, "navoid=") &&
			strings.Contains(href, "catoid=") &&
			!strings.Contains(href, "print") &&
			!strings.HasPrefix(href, "http")
	})
}

// ExtractProgramURLs returns the program preview URLs linked from the
// index page markup: links through the program-preview endpoint
// carrying a program-identifier parameter.
func ExtractProgramURLs(doc *goquery.Document) []string {
	return extractLinks(doc, func(href string) bool {
		return strings.Contains(href, "preview_program.php") &&
			strings.Contains(href, "poid=") &&
			!strings.HasPrefix(href, "http")
	})
}

// extractLinks scans every anchor in the page's content area (or the
// whole page when no content container exists), keeps hrefs accepted by
// the filter, resolves them against BaseURL and de-duplicates while
// preserving document order.
func extractLinks(doc *goquery.Document, keep func(href string) bool) []string {
	content := doc.Find("div#content")
	var anchors *goquery.Selection
	if content.Length() > 0 {
		anchors = content.Find("a[href]")
	} else {
		anchors = doc.Find("a[href]")
	}

	seen := make(map[string]struct{})
	var out []string
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" || !keep(href) {
			return
		}

		resolved := BaseURL + strings.TrimPrefix(href, "/")
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	})

	return out
}
