package programs

import (
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/normalize"
)

// maxHeadingLen rejects headings that are page titles rather than
// requirement-section headers.
const maxHeadingLen = 80

// minRequirementItems is the list-length floor separating requirement
// lists from policy lists: programs state many requirements, policies
// state few.
const minRequirementItems = 5

// excludedHeadings lists administrative and policy sections that look
// like requirement headings but never are. Matched against the
// lowercased heading text, exact match only.
var excludedHeadings = []string{
	"general information",
	"applying for financial aid",
	"enrollment",
	"grading",
	"policies",
	"graduation requirements",
	"cross-registration at area colleges",
	"academic policies",
	"student success",
	"admission and registration",
	"fees and expenses",
	"the undergraduate experience",
	"auditing",
	"transfer credit",
	"academic calendar",
	"registration",
	"add/drop",
	"withdrawals",
	"leave of absence",
	"pass/no credit option",
	"independent study",
	"degree requirements",
	"attendance",
	"honors",
	"times for registration",
	"the rpi plan",
	"academic regulations",
	"residence and time limit",
	"plan of study",
	"thesis, projects, and professional projects",
	"office of graduate education requirements",
	"program adjustments (drop/add/withdraw)",
	"degree program changes",
	"student records",
	"withdrawal from the institute",
	"advisers",
	"advising",
}

// itemCreditsRe matches either "(N credit hours)" or "N Credit Hours"
// inside a requirement list item.
var itemCreditsRe = regexp.MustCompile(`(?i)\((\d+)\s+credit\s+hours?\)|\s+(\d+)\s+credit\s+hours?`)

// ParseHeadingLists is the parsing strategy for heading+list pages: it
// scans h2-h4 headings, filters out policy sections, locates the
// requirement list belonging to each surviving heading and condenses it
// into one program with a single requirement section.
func ParseHeadingLists(doc *goquery.Document) map[string]domain.Program {
	programs := make(map[string]domain.Program)

	content := doc.Find("div#content")
	var headings *goquery.Selection
	if content.Length() > 0 {
		headings = content.Find("h2, h3, h4")
	} else {
		headings = doc.Find("h2, h3, h4")
	}

	headings.Each(func(_ int, heading *goquery.Selection) {
		name := strings.TrimSpace(heading.Text())
		if !isProgramHeading(name) {
			return
		}

		list := requirementList(heading)
		if list == nil {
			return
		}

		items := list.Find("li")
		if items.Length() < minRequirementItems {
			return
		}

		program := parseRequirementList(name, items)
		programs[program.Name] = program
	})

	return programs
}

// isProgramHeading rejects administrative sections, table-of-contents
// stubs and over-long titles.
func isProgramHeading(name string) bool {
	lower := strings.ToLower(name)
	if slices.Contains(excludedHeadings, lower) {
		return false
	}
	if strings.HasPrefix(lower, "table of contents") {
		return false
	}
	if len(lower) > maxHeadingLen {
		return false
	}
	return name != ""
}

// requirementList finds the list belonging to a heading: the nearest
// following sibling <ul>/<ol>, or one nested inside the next <div>/<p>
// sibling. Returns nil when the heading has no list at all.
func requirementList(heading *goquery.Selection) *goquery.Selection {
	list := heading.NextAllFiltered("ul, ol").First()
	if list.Length() > 0 {
		return list
	}

	container := heading.NextAllFiltered("div, p").First()
	if container.Length() == 0 {
		return nil
	}
	nested := container.Find("ul, ol").First()
	if nested.Length() == 0 {
		return nil
	}
	return nested
}

// parseRequirementList condenses an accepted requirement list into a
// program with one section: hyperlinked course codes become course
// references and per-item credit mentions sum into the section total.
func parseRequirementList(name string, items *goquery.Selection) domain.Program {
	var (
		texts        []string
		refs         []domain.CourseRef
		seen         = make(map[string]struct{})
		totalCredits int
	)

	items.Each(func(_ int, item *goquery.Selection) {
		itemText := strings.TrimSpace(item.Text())
		if itemText != "" {
			texts = append(texts, itemText)
		}

		itemCredits := 0
		if m := itemCreditsRe.FindStringSubmatch(itemText); m != nil {
			num := m[1]
			if num == "" {
				num = m[2]
			}
			if n, err := normalize.SafeIntLenient(num); err == nil {
				itemCredits = n
			}
		}
		totalCredits += itemCredits

		item.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			code := strings.Trim(strings.TrimSpace(link.Text()), ": ")
			if code == "" {
				return
			}
			if _, dup := seen[code]; dup {
				return
			}
			seen[code] = struct{}{}

			credits := itemCredits
			if credits == 0 {
				credits = DefaultCourseCredits
			}
			refs = append(refs, domain.CourseRef{Code: code, Credits: credits})
		})
	})

	text := strings.Join(texts, " ")
	detail := domain.RequirementDetail{
		Header:            name,
		Text:              text,
		Credits:           totalCredits,
		Courses:           refs,
		IsElectiveSection: containsElectivePhrase(text),
	}

	return domain.Program{
		Name:        name,
		CreditHours: totalCredits,
		Details:     []domain.RequirementDetail{detail},
	}
}
