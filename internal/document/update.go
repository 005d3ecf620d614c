package document

import (
	"github.com/samber/lo"
	"strings"
)

// UpdateSummary replaces the text of the summary paragraph. The document is
// returned unchanged when it has no summary paragraph, including summaries
// that ExtractSummary only finds through a summary div or section class.
func UpdateSummary(doc, text string) string {
	for _, p := range summaryUpdatePatterns {
		loc := p.FindStringSubmatchIndex(doc)
		if loc == nil {
			continue
		}
		return doc[:loc[4]] + EscapeText(text) + doc[loc[5]:]
	}
	return doc
}

// UpdateEntryBullets rewrites the bullet list of the entry at index, as listed
// by ExtractEntries. Blank bullets are dropped. Everything outside that list is
// kept byte for byte, and an index out of range leaves the document unchanged.
func UpdateEntryBullets(doc string, index int, bullets []string) string {
	start, end := experienceScope(doc)
	scope := doc[start:end]

	found := discover(scope)
	if index < 0 || index >= len(found) {
		return doc
	}

	c := found[index]
	updated, ok := replaceList(scope[c.contentStart:c.contentEnd], bullets)
	if !ok {
		return doc
	}

	from, to := start+c.contentStart, start+c.contentEnd
	return doc[:from] + updated + doc[to:]
}

// replaceList swaps the items of the first list in block and removes any lists
// after it, so the entry ends up with exactly the given bullets.
func replaceList(block string, bullets []string) (string, bool) {
	loc := listOpenPattern.FindStringSubmatchIndex(block)
	if loc == nil {
		return block, false
	}

	tag := strings.ToLower(block[loc[2]:loc[3]])
	closeAt := FindMatchingClose(block, loc[1], tag)
	if closeAt == NotFound {
		return block, false
	}
	closing := "</" + tag + ">"

	list := renderList(block[loc[0]:loc[1]], closing, lineIndent(block, loc[0]), bullets)
	rest := removeLists(block[closeAt+len(closing):])

	return block[:loc[0]] + list + rest, true
}

func renderList(opening, closing, indent string, bullets []string) string {
	items := lo.FilterMap(bullets, func(b string, _ int) (string, bool) {
		b = strings.TrimSpace(b)
		return "<li>" + EscapeText(b) + "</li>", b != ""
	})
	if len(items) == 0 {
		return opening + closing
	}

	itemIndent := "\n" + indent + "    "
	return opening + itemIndent + strings.Join(items, itemIndent) + "\n" + indent + closing
}

// removeLists drops every complete ul/ol element from s.
func removeLists(s string) string {
	for {
		loc := listOpenPattern.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		tag := strings.ToLower(s[loc[2]:loc[3]])
		closeAt := FindMatchingClose(s, loc[1], tag)
		if closeAt == NotFound {
			return s
		}
		s = s[:loc[0]] + s[closeAt+len("</"+tag+">"):]
	}
}

// lineIndent returns the whitespace that precedes pos on its line, or "" when
// pos is not the first thing on the line.
func lineIndent(s string, pos int) string {
	i := pos
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i > 0 && s[i-1] != '\n' {
		return ""
	}
	return s[i:pos]
}
