package document

import (
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"strings"
)

// Outline is a quick structural overview of a generated document.
type Outline struct {
	Title    string   `json:"title"`
	Name     string   `json:"name"`
	Sections []string `json:"sections"`
	Entries  int      `json:"entries"`
	Summary  bool     `json:"summary"`
	Editable bool     `json:"editable"`
	Layout   Shape    `json:"layout"`
}

// Inspect parses doc and reports its sections and editable parts.
func Inspect(doc string) (Outline, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Outline{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	outline := Outline{
		Title: strings.TrimSpace(parsed.Find("title").First().Text()),
		Name:  strings.TrimSpace(parsed.Find("h1").First().Text()),
	}

	parsed.Find("section").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			outline.Sections = append(outline.Sections, id)
			return
		}
		if heading := strings.TrimSpace(s.Find("h1, h2, h3").First().Text()); heading != "" {
			outline.Sections = append(outline.Sections, heading)
		}
	})

	entries := ExtractEntries(doc)
	outline.Entries = len(entries)
	outline.Summary = ExtractSummary(doc) != ""
	outline.Editable = outline.Summary || outline.Entries > 0

	outline.Layout = ShapeFlat
	if parsed.Find(".company-group, .role-entry").Length() > 0 {
		outline.Layout = ShapeGrouped
	}
	return outline, nil
}
