package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentOutline is the structural skeleton of a rendered document: the
// headline, the summary, and every section heading with its ordered bullet
// text. Because every layout emits the same structural markers, the outline
// is layout-independent, which is what makes it useful for idempotence
// checks and as a lightweight preview payload.
type DocumentOutline struct {
	Headline string           `json:"headline"`
	Summary  string           `json:"summary,omitempty"`
	Sections []OutlineSection `json:"sections"`
}

// OutlineSection is one section of the outline. Table marks sections the
// academic family rendered as an education grid.
type OutlineSection struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets"`
	Table   bool     `json:"table,omitempty"`
}

// Outline parses a rendered HTML document back into its structural outline.
func Outline(html string) (*DocumentOutline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &OutlineError{Message: "failed to parse rendered document", Cause: err}
	}

	outline := &DocumentOutline{
		Headline: strings.TrimSpace(doc.Find(`[data-role="headline"]`).First().Text()),
		Summary:  strings.TrimSpace(doc.Find(`[data-role="summary"]`).First().Text()),
	}

	doc.Find(`[data-role="section"]`).Each(func(_ int, sel *goquery.Selection) {
		section := OutlineSection{
			Heading: strings.TrimSpace(sel.Find("h2").First().Text()),
		}

		if sel.Find("table").Length() > 0 {
			section.Table = true
			sel.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
				degree := strings.TrimSpace(row.Find("td").First().Text())
				if degree != "" {
					section.Bullets = append(section.Bullets, degree)
				}
			})
		} else {
			sel.Find("li").Each(func(_ int, li *goquery.Selection) {
				text := strings.TrimSpace(li.Text())
				if text != "" {
					section.Bullets = append(section.Bullets, text)
				}
			})
		}

		outline.Sections = append(outline.Sections, section)
	})

	return outline, nil
}
