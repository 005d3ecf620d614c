package render

import (
	"fmt"
	"regexp"
	"strings"
)

type Density string

const (
	DensityNormal      Density = "normal"
	DensityCompact     Density = "compact"
	DensityVeryCompact Density = "very_compact"
)

func ParseDensity(s string) (Density, error) {
	switch d := Density(strings.ToLower(strings.TrimSpace(s))); d {
	case DensityNormal, DensityCompact, DensityVeryCompact:
		return d, nil
	case "":
		return DensityNormal, nil
	}
	return "", fmt.Errorf("invalid density %q, expected normal, compact or very_compact", s)
}

const compactCSS = `
<style data-layout="density">
    body { font-size: 10pt; line-height: 1.35; padding: 0.35in; }
    header { margin-bottom: 1rem; padding-bottom: 0.6rem; }
    h1 { font-size: 20pt; margin-bottom: 0.3rem; }
    h2 { font-size: 11pt; margin-bottom: 0.45rem; }
    section { margin-bottom: 0.8rem; }
    .entry, .role-entry, .company-group { margin-bottom: 0.6rem; }
    li { font-size: 9.5pt; margin-bottom: 0.1rem; }
</style>
`

const veryCompactCSS = `
<style data-layout="density">
    body { font-size: 9pt; line-height: 1.2; padding: 0.25in; }
    header { margin-bottom: 0.6rem; padding-bottom: 0.4rem; }
    h1 { font-size: 17pt; margin-bottom: 0.2rem; }
    h2 { font-size: 10pt; margin-bottom: 0.3rem; padding-bottom: 0.1rem; }
    section { margin-bottom: 0.5rem; }
    .entry, .role-entry, .company-group { margin-bottom: 0.35rem; }
    ul { margin-top: 0.1rem; }
    li { font-size: 8.5pt; margin-bottom: 0.05rem; }
</style>
`

const paginationCSS = `
<style data-layout="pagination">
    @page { size: letter; margin: 0.5in; }
    @media print {
        body { padding: 0; max-width: none; }
    }
    .entry, .role-entry, .company-header { break-inside: avoid; page-break-inside: avoid; }
    h2 { break-after: avoid; page-break-after: avoid; }
</style>
`

// LayoutCSS returns the style blocks for a density and pagination choice.
func LayoutCSS(density Density, paginate bool) string {
	var css string
	switch density {
	case DensityCompact:
		css = compactCSS
	case DensityVeryCompact:
		css = veryCompactCSS
	}
	if paginate {
		css += paginationCSS
	}
	return css
}

var (
	headClose = regexp.MustCompile(`(?i)</head\s*>`)
	bodyClose = regexp.MustCompile(`(?i)</body\s*>`)
)

// ApplyLayout injects the layout styles late in the document so they win over
// the template's own rules.
func ApplyLayout(doc string, density Density, paginate bool) string {
	return injectStyle(doc, LayoutCSS(density, paginate))
}

func injectStyle(doc, css string) string {
	if css == "" {
		return doc
	}
	for _, anchor := range []*regexp.Regexp{headClose, bodyClose} {
		if matches := anchor.FindAllStringIndex(doc, -1); len(matches) > 0 {
			at := matches[len(matches)-1][0]
			return doc[:at] + css + doc[at:]
		}
	}
	return doc + css
}
