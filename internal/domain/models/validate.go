package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(currentRoleRule, WorkExperience{})
	return v
}

func currentRoleRule(sl validator.StructLevel) {
	exp := sl.Current().Interface().(WorkExperience)
	if exp.IsCurrent && exp.EndDate != Present {
		sl.ReportError(exp.EndDate, "EndDate", "end_date", "present_if_current", "")
	}
}

// Validate checks the struct tags of a model.
func Validate(model any) error {
	return validate.Struct(model)
}
