package render

import (
	"github.com/orajb/cv-craft/internal/document"
	"regexp"
	"strings"
)

var (
	sectionOpen  = regexp.MustCompile(`(?is)<section(?:\s[^>]*)?>`)
	headingBlock = regexp.MustCompile(`(?is)<h[1-6](?:\s[^>]*)?>.*?</h[1-6]\s*>`)
	anyTag       = regexp.MustCompile(`<[^>]+>`)
)

// RemoveEmptySections drops every section that holds nothing besides headings
// and whitespace once its placeholders are filled.
func RemoveEmptySections(doc string) string {
	for {
		start, end, ok := firstEmptySection(doc)
		if !ok {
			return doc
		}
		doc = doc[:start] + doc[end:]
	}
}

func firstEmptySection(doc string) (int, int, bool) {
	for _, loc := range sectionOpen.FindAllStringIndex(doc, -1) {
		closeAt := document.FindMatchingClose(doc, loc[1], "section")
		if closeAt == document.NotFound {
			continue
		}

		body := headingBlock.ReplaceAllString(doc[loc[1]:closeAt], "")
		body = anyTag.ReplaceAllString(body, "")
		if strings.TrimSpace(strings.ReplaceAll(body, "&nbsp;", " ")) != "" {
			continue
		}

		start, end := loc[0], closeAt+len("</section>")
		for start > 0 && (doc[start-1] == ' ' || doc[start-1] == '\t') {
			start--
		}
		if strings.HasPrefix(doc[end:], "\r\n") {
			end += 2
		} else if strings.HasPrefix(doc[end:], "\n") {
			end++
		}
		return start, end, true
	}
	return 0, 0, false
}
