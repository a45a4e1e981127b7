package programs

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/normalize"
)

// overviewHeader names the synthetic section that collects text
// appearing before the first real heading of a structured program page.
const overviewHeader = "Program Overview"

var (
	totalCreditsCellRe = regexp.MustCompile(`(\d+)\.?\d*`)
	totalCreditsTextRe = regexp.MustCompile(`(\d+)\s+Total Credit Hours`)
)

// IsStructuredPage reports whether a page uses the newer structured
// program layout. The structural markers are the dedicated program-name
// heading and the program-descriptions container; heading+list pages
// carry neither.
func IsStructuredPage(doc *goquery.Document) bool {
	return doc.Find("div#program_descriptions, h1#program_name").Length() > 0
}

// ParseStructured is the parsing strategy for structured program pages:
// one program per page, named by its dedicated heading, with
// requirement sections delimited by h3/h4 boundaries inside the
// program-descriptions container. rawHTML is the unmodified page
// markup, kept for the readability fallback.
func ParseStructured(doc *goquery.Document, rawHTML string) map[string]domain.Program {
	program := domain.Program{
		Name:        programName(doc),
		CreditHours: totalCreditHours(doc),
		Details:     sectionDetails(doc, rawHTML),
	}

	return map[string]domain.Program{program.Name: program}
}

// programName extracts the program title, preferring the dedicated
// heading element and stripping any catalog-year annotation after
// " - ". Falls back to the page title.
func programName(doc *goquery.Document) string {
	heading := doc.Find("h1#program_name").First()
	if heading.Length() == 0 {
		heading = doc.Find("h1").First()
	}

	name := strings.TrimSpace(heading.Text())
	if name == "" {
		title := strings.TrimSpace(doc.Find("title").Text())
		name = strings.TrimSpace(strings.TrimSuffix(title, " - Undergraduate Catalog"))
	}
	if name == "" {
		return "Unknown Program"
	}

	if i := strings.Index(name, " - "); i != -1 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}

// totalCreditHours reads the program's credit total from the labeled
// table cell when present, falling back to a free-text scan of the
// whole page.
func totalCreditHours(doc *goquery.Document) int {
	total := 0
	doc.Find("td.width-25").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if !strings.Contains(cell.Text(), "Total Credit Hours") {
			return true
		}
		sibling := cell.NextFiltered("td.width-25")
		if sibling.Length() == 0 {
			return true
		}
		if m := totalCreditsCellRe.FindStringSubmatch(sibling.Text()); m != nil {
			if n, err := normalize.SafeIntLenient(m[1]); err == nil {
				total = n
				return false
			}
		}
		return true
	})
	if total > 0 {
		return total
	}

	if m := totalCreditsTextRe.FindStringSubmatch(doc.Text()); m != nil {
		if n, err := normalize.SafeIntLenient(m[1]); err == nil {
			return n
		}
	}
	return 0
}

// sectionDetails walks the program-descriptions container in document
// order. Heading elements close the running section; paragraph, list
// and div text accumulates into it; a table becomes its own atomic
// "(Table Data)" block without disturbing the accumulation.
func sectionDetails(doc *goquery.Document, rawHTML string) []domain.RequirementDetail {
	content := doc.Find("div#program_descriptions").First()
	if content.Length() == 0 {
		return readabilityFallback(rawHTML)
	}

	var details []domain.RequirementDetail
	header := overviewHeader
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		details = append(details, ExtractDetail(header, strings.Join(buffer, " "), false))
		buffer = nil
	}

	content.ChildrenFiltered("h3, h4, p, ul, ol, div, table").Each(func(_ int, elem *goquery.Selection) {
		if goquery.NodeName(elem) == "table" {
			tableText := elementText(elem)
			if len(tableText) > 10 {
				details = append(details, ExtractDetail(header+" (Table Data)", tableText, false))
			}
			return
		}

		text := elementText(elem)
		switch goquery.NodeName(elem) {
		case "h3", "h4":
			flush()
			header = text
		default:
			if text != "" {
				buffer = append(buffer, text)
			}
		}
	})
	flush()

	return details
}

// readabilityFallback handles structured pages whose descriptions
// container is missing: the main page text is recovered with
// readability and emitted as a single overview section, so the page
// still degrades to something usable instead of vanishing.
func readabilityFallback(rawHTML string) []domain.RequirementDetail {
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return nil
	}
	return []domain.RequirementDetail{ExtractDetail(overviewHeader, text, false)}
}

// elementText flattens an element's text nodes into space-joined,
// trimmed text, the same shape the section buffer accumulates.
func elementText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
