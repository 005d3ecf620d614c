package document

import (
	"html"
	"regexp"
	"strings"
)

// Summary patterns, most specific first. Group 1 is everything up to the text,
// group 2 is the text itself.
var summaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(<section[^>]*\bid\s*=\s*["']summary["'][^>]*>.*?<p\s[^>]*class\s*=\s*["']summary["'][^>]*>)(.*?)</p>`),
	regexp.MustCompile(`(?is)(<section[^>]*\bid\s*=\s*["']summary["'][^>]*>.*?<p(?:\s[^>]*)?>)(.*?)</p>`),
	regexp.MustCompile(`(?is)(<p\s[^>]*class\s*=\s*["'][^"']*summary[^"']*["'][^>]*>)(.*?)</p>`),
	regexp.MustCompile(`(?is)(<div\s[^>]*class\s*=\s*["'][^"']*summary[^"']*["'][^>]*>)(.*?)</div>`),
	regexp.MustCompile(`(?is)(<section\s[^>]*class\s*=\s*["'][^"']*summary[^"']*["'][^>]*>.*?<p(?:\s[^>]*)?>)(.*?)</p>`),
}

// summaryUpdatePatterns are the patterns whose text group holds only the
// summary paragraph. The div pattern captures arbitrary markup, so it is never
// written to.
var summaryUpdatePatterns = summaryPatterns[:3]

var (
	experienceSectionOpen = regexp.MustCompile(`(?is)<section[^>]*\bid\s*=\s*["']experience["'][^>]*>`)

	entryOpen          = regexp.MustCompile(`(?is)<article\s[^>]*` + classAttr("entry") + `[^>]*>`)
	roleOpen           = regexp.MustCompile(`(?is)<div\s[^>]*` + classAttr("role-entry") + `[^>]*>`)
	genericArticleOpen = regexp.MustCompile(`(?is)<article(?:\s[^>]*)?>`)

	companyNamePattern = spanWithClass("company-name")
	listItemPattern    = regexp.MustCompile(`(?is)<li(?:\s[^>]*)?>(.*?)</li>`)
	listOpenPattern    = regexp.MustCompile(`(?is)<(ul|ol)(?:\s[^>]*)?>`)
	tagPattern         = regexp.MustCompile(`<[^>]+>`)
)

var (
	entryTitleChain = []textMatcher{
		captureText(spanWithClass("entry-title")),
		captureText(regexp.MustCompile(`(?is)<h3(?:\s[^>]*)?>(.*?)</h3>`)),
		captureText(regexp.MustCompile(`(?is)<strong(?:\s[^>]*)?>(.*?)</strong>`)),
	}
	entrySubLabelChain = []textMatcher{
		captureText(spanWithClass("entry-subtitle")),
		captureText(spanWithClass("company")),
		captureText(regexp.MustCompile(`(?is)<em(?:\s[^>]*)?>(.*?)</em>`)),
	}
	roleTitleChain = []textMatcher{
		captureText(spanWithClass("role-title")),
	}
	genericTitleChain = []textMatcher{
		captureText(regexp.MustCompile(`(?is)<(?:h3|strong|b)(?:\s[^>]*)?>(.*?)</(?:h3|strong|b)>`)),
	}
)

// textMatcher pulls one piece of text out of a block. ok is false when the
// block carries no usable signal for it.
type textMatcher func(block string) (text string, ok bool)

func captureText(re *regexp.Regexp) textMatcher {
	return func(block string) (string, bool) {
		m := re.FindStringSubmatch(block)
		if m == nil {
			return "", false
		}
		text := cleanText(m[1])
		return text, text != ""
	}
}

func firstMatch(chain []textMatcher, block string) string {
	for _, match := range chain {
		if text, ok := match(block); ok {
			return text
		}
	}
	return ""
}

// classAttr matches a class attribute whose class list contains name.
func classAttr(name string) string {
	return `class\s*=\s*["'](?:[^"']*\s)?` + regexp.QuoteMeta(name) + `(?:\s[^"']*)?["']`
}

func spanWithClass(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<span\s[^>]*` + classAttr(name) + `[^>]*>(.*?)</span>`)
}

// cleanText drops inner markup and decodes entities.
func cleanText(fragment string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(fragment, "")))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes text for use as element content. Quotes are left alone so
// that prose stays readable in the markup.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
