package render

import (
	"github.com/orajb/cv-craft/internal/document"
	"github.com/orajb/cv-craft/internal/domain/models"
	"strings"
)

// DetectLayout picks grouped rendering for templates that ask for it.
func DetectLayout(template string) document.Shape {
	if strings.Contains(template, TokenExperienceGrouped) {
		return document.ShapeGrouped
	}
	return document.ShapeFlat
}

// Compose renders record with the layout the template was written for.
func Compose(template string, record models.Record, density Density, paginate bool) (string, document.Shape) {
	shape := DetectLayout(template)
	doc := Fill(template, record, Options{
		Density:        density,
		Paginate:       paginate,
		GroupByCompany: shape == document.ShapeGrouped,
	})
	return doc, shape
}

// QuickEditAvailable reports whether a document exposes a summary or at least
// one experience entry to edit in place.
func QuickEditAvailable(doc string) bool {
	return document.Editable(doc)
}
