package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Class markers used by gob.pe/feriados.
const (
	featuredSelector     = ".holidays__recent-holiday"
	featuredDateSelector = ".holidays__recent-holiday-date"
	featuredNameSelector = ".holidays__recent-holiday-name"

	listItemSelector = ".holidays__list-item"
	listDateSelector = ".holidays__list-item-date"
	listNameSelector = ".holidays__list-item-name"
)

var trailingColon = regexp.MustCompile(`:\s*$`)

// entry is the raw text of one holiday as found on the page.
type entry struct {
	dateText string
	name     string
}

func (e entry) complete() bool {
	return e.dateText != "" && e.name != ""
}

// rule scans one structural region of the page.
type rule struct {
	name string
	scan func(doc *goquery.Document) []entry
}

// rules run in order; their results are concatenated.
var rules = []rule{
	{name: "featured", scan: scanFeatured},
	{name: "list", scan: scanList},
}

// scanFeatured reads the highlighted "next holiday" block.
func scanFeatured(doc *goquery.Document) []entry {
	scope := doc.Find(featuredSelector).First()
	if scope.Length() == 0 {
		// Container renamed or dropped: accept the field markers anywhere.
		scope = doc.Selection
	}

	date := scope.Find(featuredDateSelector).First()
	name := scope.Find(featuredNameSelector).First()
	if date.Length() == 0 && name.Length() == 0 {
		return nil
	}

	return []entry{{
		dateText: cleanText(date.Text()),
		name:     cleanText(name.Text()),
	}}
}

// scanList reads every item of the holiday list. An item's date can be split
// across several fragments, e.g. "Viernes" "8 de diciembre:".
func scanList(doc *goquery.Document) []entry {
	var entries []entry

	doc.Find(listItemSelector).Each(func(_ int, item *goquery.Selection) {
		fragments := make([]string, 0, 2)
		item.Find(listDateSelector).Each(func(_ int, frag *goquery.Selection) {
			if text := cleanText(frag.Text()); text != "" {
				fragments = append(fragments, text)
			}
		})

		dateText := strings.Join(fragments, " ")
		dateText = cleanText(trailingColon.ReplaceAllString(dateText, ""))

		entries = append(entries, entry{
			dateText: dateText,
			name:     cleanText(item.Find(listNameSelector).First().Text()),
		})
	})

	return entries
}

// cleanText collapses whitespace runs to a single space and trims the ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
