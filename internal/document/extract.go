package document

import (
	"fmt"
	"github.com/samber/lo"
	"regexp"
	"sort"
)

type Shape string

const (
	ShapeFlat    Shape = "flat"
	ShapeGrouped Shape = "grouped"
	ShapeGeneric Shape = "generic"
)

// Span is a byte range of the whole document: the inner content of an entry,
// between its opening tag and the matching closing tag.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Entry struct {
	Index   int      `json:"index"`
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Bullets []string `json:"bullets"`
	Shape   Shape    `json:"shape"`
	Span    Span     `json:"span"`
}

// candidate is an entry block found inside the experience scope. Offsets are
// relative to the scope.
type candidate struct {
	shape        Shape
	start        int
	contentStart int
	contentEnd   int
}

// ExtractSummary returns the plain text of the first summary-like element, or ""
// when the document has none.
func ExtractSummary(doc string) string {
	for _, p := range summaryPatterns {
		if m := p.FindStringSubmatch(doc); m != nil {
			return cleanText(m[2])
		}
	}
	return ""
}

// ExtractEntries lists the editable experience entries in document order.
// Entries without a single non-blank bullet are not returned, and indices are
// contiguous from zero so they can be fed back to UpdateEntryBullets.
func ExtractEntries(doc string) []Entry {
	start, end := experienceScope(doc)
	scope := doc[start:end]

	found := discover(scope)
	entries := make([]Entry, 0, len(found))
	for i, c := range found {
		block := scope[c.contentStart:c.contentEnd]
		entry := Entry{
			Index:   i,
			Bullets: bullets(block),
			Shape:   c.shape,
			Span:    Span{Start: start + c.contentStart, End: start + c.contentEnd},
		}

		switch c.shape {
		case ShapeFlat:
			entry.Title = firstMatch(entryTitleChain, block)
			entry.Company = firstMatch(entrySubLabelChain, block)
		case ShapeGrouped:
			entry.Title = firstMatch(roleTitleChain, block)
			entry.Company = companyBefore(scope, c.start)
		default:
			entry.Title = firstMatch(genericTitleChain, block)
		}

		if entry.Title == "" {
			entry.Title = fallbackTitle(c.shape, i)
		}
		entries = append(entries, entry)
	}
	return entries
}

// Editable reports whether quick edit has anything to work with.
func Editable(doc string) bool {
	return ExtractSummary(doc) != "" || len(ExtractEntries(doc)) > 0
}

func fallbackTitle(shape Shape, i int) string {
	if shape == ShapeGrouped {
		return fmt.Sprintf("Role %d", i+1)
	}
	return fmt.Sprintf("Entry %d", i+1)
}

// experienceScope bounds the experience section, or the whole document when
// there is none.
func experienceScope(doc string) (int, int) {
	loc := experienceSectionOpen.FindStringIndex(doc)
	if loc == nil {
		return 0, len(doc)
	}
	end := FindMatchingClose(doc, loc[1], "section")
	if end == NotFound {
		return 0, len(doc)
	}
	return loc[0], end
}

// discover collects flat and grouped entries ordered by their position. Generic
// articles are only considered when neither marker is present.
func discover(scope string) []candidate {
	found := append(blocks(scope, entryOpen, "article", ShapeFlat), blocks(scope, roleOpen, "div", ShapeGrouped)...)
	if len(found) == 0 {
		found = blocks(scope, genericArticleOpen, "article", ShapeGeneric)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})
	return found
}

func blocks(scope string, open *regexp.Regexp, tag string, shape Shape) []candidate {
	var result []candidate
	for _, loc := range open.FindAllStringIndex(scope, -1) {
		end := FindMatchingClose(scope, loc[1], tag)
		if end == NotFound {
			continue
		}
		if len(bullets(scope[loc[1]:end])) == 0 {
			continue
		}
		result = append(result, candidate{
			shape:        shape,
			start:        loc[0],
			contentStart: loc[1],
			contentEnd:   end,
		})
	}
	return result
}

func bullets(block string) []string {
	items := lo.Map(listItemPattern.FindAllStringSubmatch(block, -1), func(m []string, _ int) string {
		return cleanText(m[1])
	})
	return lo.Filter(items, func(item string, _ int) bool {
		return item != ""
	})
}

func companyBefore(scope string, offset int) string {
	matches := companyNamePattern.FindAllStringSubmatch(scope[:offset], -1)
	if len(matches) == 0 {
		return ""
	}
	return cleanText(matches[len(matches)-1][1])
}
