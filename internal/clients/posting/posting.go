package posting

import (
	"errors"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"regexp"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 5 << 20
)

var ErrNoDescription = errors.New("posting has no readable description")

type Posting struct {
	URL         string
	Title       string
	Company     string
	Description string
}

var descriptionSelectors = []string{
	".job-description",
	"#job-description",
	".job-details",
	".description__text",
	".posting-page",
	"[data-automation-id='jobPostingDescription']",
	"main",
	"article",
}

var noiseSelectors = "nav, footer, header, script, style, noscript, form, .cookie-banner, .popup, .apply-button"

var (
	blankLines = regexp.MustCompile(`\n\s*\n+`)
	spaceRuns  = regexp.MustCompile(`[ \t\f\r]+`)
)

// Parse pulls the title, company and description out of a job posting page.
func Parse(page string) (Posting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return Posting{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	posting := Posting{
		Title:   firstNonEmpty(meta(doc, "og:title"), text(doc.Find("h1").First()), text(doc.Find("title").First())),
		Company: firstNonEmpty(meta(doc, "og:site_name"), text(doc.Find(".company-name, .company, [itemprop='hiringOrganization']").First())),
	}

	doc.Find(noiseSelectors).Remove()

	content := doc.Find("body")
	for _, selector := range descriptionSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}

	posting.Description = readableText(content)
	if posting.Description == "" {
		return posting, ErrNoDescription
	}
	return posting, nil
}

// readableText keeps paragraph and list boundaries as line breaks.
func readableText(s *goquery.Selection) string {
	s.Find("br").ReplaceWithHtml("\n")
	s.Find("p, li, h1, h2, h3, h4, div").Each(func(_ int, block *goquery.Selection) {
		block.AppendHtml("\n")
	})
	s.Find("li").Each(func(_ int, item *goquery.Selection) {
		item.PrependHtml("- ")
	})

	out := spaceRuns.ReplaceAllString(s.Text(), " ")
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	out = blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(out)
}

func meta(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property="` + property + `"]`).Attr("content")
	return strings.TrimSpace(content)
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s.Text(), " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
