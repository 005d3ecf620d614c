package render

import (
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/samber/lo"
	"strings"
)

// OrderExperiences returns the roles in display order: current roles first,
// then the most recently added first within each part. The input is not modified.
func OrderExperiences(experiences []models.WorkExperience) []models.WorkExperience {
	newestFirst := lo.Reverse(append([]models.WorkExperience(nil), experiences...))
	isCurrent := func(exp models.WorkExperience, _ int) bool {
		return exp.IsCurrent
	}
	return append(lo.Filter(newestFirst, isCurrent), lo.Reject(newestFirst, isCurrent)...)
}

// CompanyGroup holds the roles of one employer in display order.
type CompanyGroup struct {
	Company string
	Roles   []models.WorkExperience
}

// Tenure pairs the start of the earliest listed role with the end of the
// latest one.
func (g CompanyGroup) Tenure() string {
	if len(g.Roles) == 0 {
		return ""
	}
	return dateRange(g.Roles[len(g.Roles)-1].StartDate, g.Roles[0].EndDate)
}

// GroupByCompany partitions already ordered roles by employer. Company names are
// compared case-insensitively after trimming, and groups keep the position of
// their first role.
func GroupByCompany(experiences []models.WorkExperience) []CompanyGroup {
	var groups []CompanyGroup
	index := map[string]int{}

	for _, exp := range experiences {
		key := strings.ToLower(strings.TrimSpace(exp.Company))
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CompanyGroup{Company: strings.TrimSpace(exp.Company)})
		}
		groups[i].Roles = append(groups[i].Roles, exp)
	}
	return groups
}
