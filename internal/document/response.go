package document

import (
	"regexp"
	"strings"
)

var (
	fencedDocument = regexp.MustCompile("(?is)```(?:html)?\\s*(<!DOCTYPE.*?</html>)\\s*```")
	rawDocument    = regexp.MustCompile(`(?is)(<!DOCTYPE.*?</html>)`)
	fencedMarkup   = regexp.MustCompile("(?is)```(?:html)?\\s*(<.*?>)\\s*```")
)

// FromResponse pulls the HTML document out of a model reply. Replies usually
// wrap it in a fenced code block and surround it with prose.
func FromResponse(response string) string {
	if m := fencedDocument.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := rawDocument.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedMarkup.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(response)
	if strings.Contains(lower, "<body") || strings.Contains(lower, "<div") {
		return strings.TrimSpace(response)
	}
	return response
}
