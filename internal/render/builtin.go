package render

import (
	_ "embed"
	"github.com/orajb/cv-craft/internal/domain/models"
)

var (
	//go:embed templates/classic.html
	classicTemplate string
	//go:embed templates/career.html
	careerTemplate string
)

const (
	ClassicTemplateName = "Classic Professional"
	CareerTemplateName  = "Career Progression"
)

// Builtins returns the templates shipped with the tool. They carry no
// identifiers until they are saved.
func Builtins() []models.Template {
	return []models.Template{
		{
			Name:        ClassicTemplateName,
			Description: "Single column, one entry per role.",
			HTML:        classicTemplate,
		},
		{
			Name:        CareerTemplateName,
			Description: "Roles grouped under each employer with the overall tenure.",
			HTML:        careerTemplate,
		},
	}
}
