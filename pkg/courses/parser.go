// Package courses parses catalog course-list pages into raw course
// records. Pages are segmented per list item, each item's markup is
// flattened into pipe-delimited text, and labeled fields are sliced out
// of the flattened form.
package courses

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"catalog-scrape/pkg/domain"
)

// headerRe matches the leading "CODE - Title" pattern of a course
// block.
var headerRe = regexp.MustCompile(`^([A-Z]{3,4}\s\d{4}[A-Z]?)\s*-\s*(.*)`)

// ParsePage enumerates the course-like list items of one catalog page
// and returns one raw record per item, in document order. A block that
// fails to parse still yields a record with sentinel defaults; one bad
// block never aborts the page.
func ParsePage(doc *goquery.Document) []domain.Course {
	var records []domain.Course

	doc.Find("li").Each(func(_ int, block *goquery.Selection) {
		records = append(records, parseBlock(block))
	})

	return records
}

// parseBlock turns one list item into a raw course record.
func parseBlock(block *goquery.Selection) domain.Course {
	course := domain.NewCourse()
	blockText := FlattenBlockText(block)

	if m := headerRe.FindStringSubmatch(blockText); m != nil {
		course.Code = strings.TrimSpace(m[1])

		namePart := m[2]
		descriptionAndFields := ""
		if i := strings.Index(namePart, "|"); i != -1 {
			descriptionAndFields = namePart[i+1:]
			namePart = namePart[:i]
		}
		course.Name = strings.TrimSpace(strings.ReplaceAll(namePart, "|", " "))

		if desc := descriptionBefore(descriptionAndFields); desc != "" {
			course.Description = strings.ReplaceAll(desc, "|", " ")
		}
	}

	if v, ok := ExtractField(blockText, labelOffered); ok {
		course.Offered = v
	}
	if v, ok := ExtractField(blockText, labelCredits); ok {
		course.Credits = v
	}
	if v, ok := extractPrerequisites(blockText); ok {
		course.Prerequisites = v
	}
	if v, ok := extractCorequisites(blockText); ok {
		course.Corequisites = v
	}

	return course
}

// descriptionBefore returns the text preceding the earliest recognized
// field label. Everything at or after that label belongs to the labeled
// fields, not the description.
func descriptionBefore(text string) string {
	if text == "" {
		return ""
	}

	earliest := len(text)
	for _, label := range fieldLabels {
		if i := strings.Index(text, label); i != -1 && i < earliest {
			earliest = i
		}
	}
	return strings.TrimSpace(text[:earliest])
}

// FlattenBlockText flattens a block's markup into pipe-delimited text:
// each text node is trimmed, empties are dropped, and the survivors are
// joined with the reserved separator so structural boundaries stay
// visible to the label scan.
func FlattenBlockText(s *goquery.Selection) string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "|")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
