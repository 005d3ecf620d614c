package render

import (
	"fmt"
	"github.com/orajb/cv-craft/internal/document"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/samber/lo"
	"html"
	"strings"
)

func escape(s string) string {
	return document.EscapeText(s)
}

func dateRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

// bulletList renders non-blank items as a list, or "" when there are none.
func bulletList(items []string, indent string) string {
	items = lo.Filter(items, func(item string, _ int) bool {
		return strings.TrimSpace(item) != ""
	})
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(indent + "<ul>\n")
	for _, item := range items {
		b.WriteString(indent + "    <li>" + escape(strings.TrimSpace(item)) + "</li>\n")
	}
	b.WriteString(indent + "</ul>\n")
	return b.String()
}

func experienceHTML(experiences []models.WorkExperience) string {
	parts := lo.Map(experiences, func(exp models.WorkExperience, _ int) string {
		return flatEntry(exp)
	})
	return strings.Join(parts, "\n")
}

func flatEntry(exp models.WorkExperience) string {
	var b strings.Builder
	b.WriteString("<article class=\"entry\">\n")
	b.WriteString("    <div class=\"entry-header\">\n")
	b.WriteString("        <span class=\"entry-title\">" + escape(exp.Role) + "</span>\n")
	b.WriteString("        <span class=\"entry-date\">" + escape(dateRange(exp.StartDate, exp.EndDate)) + "</span>\n")
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=\"entry-header\">\n")
	b.WriteString("        <span class=\"entry-subtitle\">" + escape(exp.Company) + "</span>\n")
	b.WriteString("        <span class=\"entry-location\">" + escape(exp.Location) + "</span>\n")
	b.WriteString("    </div>\n")
	b.WriteString(bulletList(exp.Bullets, "    "))
	b.WriteString("</article>")
	return b.String()
}

func groupedExperienceHTML(groups []CompanyGroup) string {
	parts := lo.Map(groups, func(group CompanyGroup, _ int) string {
		if len(group.Roles) == 1 {
			return flatEntry(group.Roles[0])
		}
		return companyBlock(group)
	})
	return strings.Join(parts, "\n")
}

func companyBlock(group CompanyGroup) string {
	var b strings.Builder
	b.WriteString("<div class=\"company-group\">\n")
	b.WriteString("    <div class=\"company-header\">\n")
	b.WriteString("        <span class=\"company-name\">" + escape(group.Company) + "</span>\n")
	b.WriteString("        <span class=\"company-tenure\">" + escape(group.Tenure()) + "</span>\n")
	b.WriteString("    </div>\n")
	if location := strings.TrimSpace(group.Roles[0].Location); location != "" {
		b.WriteString("    <div class=\"company-location\">" + escape(location) + "</div>\n")
	}
	for _, role := range group.Roles {
		b.WriteString("    <div class=\"role-entry\">\n")
		b.WriteString("        <div class=\"role-header\">\n")
		b.WriteString("            <span class=\"role-title\">" + escape(role.Role) + "</span>\n")
		b.WriteString("            <span class=\"role-date\">" + escape(dateRange(role.StartDate, role.EndDate)) + "</span>\n")
		b.WriteString("        </div>\n")
		b.WriteString(bulletList(role.Bullets, "        "))
		b.WriteString("    </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func educationHTML(education []models.Education) string {
	parts := lo.Map(education, func(edu models.Education, _ int) string {
		title := edu.Degree
		if edu.Degree != "" && edu.Field != "" {
			title = edu.Degree + " in " + edu.Field
		} else if edu.Degree == "" {
			title = edu.Field
		}

		subtitle := edu.Institution
		if edu.GPA != "" {
			subtitle += " | GPA: " + edu.GPA
		}

		var b strings.Builder
		b.WriteString("<article class=\"entry\">\n")
		b.WriteString("    <div class=\"entry-header\">\n")
		b.WriteString("        <span class=\"entry-title\">" + escape(title) + "</span>\n")
		b.WriteString("        <span class=\"entry-date\">" + escape(dateRange(edu.StartDate, edu.EndDate)) + "</span>\n")
		b.WriteString("    </div>\n")
		b.WriteString("    <div class=\"entry-header\">\n")
		b.WriteString("        <span class=\"entry-subtitle\">" + escape(subtitle) + "</span>\n")
		b.WriteString("    </div>\n")
		b.WriteString(bulletList(edu.Highlights, "    "))
		b.WriteString("</article>")
		return b.String()
	})
	return strings.Join(parts, "\n")
}

func nonEmptyCategories(skills models.Skills) []models.SkillCategory {
	return lo.FilterMap(skills.Categories(), func(c models.SkillCategory, _ int) (models.SkillCategory, bool) {
		c.Items = lo.Filter(c.Items, func(item string, _ int) bool {
			return strings.TrimSpace(item) != ""
		})
		return c, len(c.Items) > 0
	})
}

func skillsGridHTML(skills models.Skills) string {
	categories := nonEmptyCategories(skills)
	if len(categories) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"skills-grid\">\n")
	for _, c := range categories {
		b.WriteString("    <span class=\"skill-category\">" + escape(c.Name) + ":</span>\n")
		b.WriteString("    <span class=\"skill-items\">" + escape(strings.Join(c.Items, ", ")) + "</span>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func skillPillsHTML(skills models.Skills) string {
	categories := nonEmptyCategories(skills)
	if len(categories) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"skill-pills\">\n")
	for _, c := range categories {
		b.WriteString("    <div class=\"skill-group\">\n")
		b.WriteString("        <span class=\"skill-category\">" + escape(c.Name) + "</span>\n")
		for _, item := range c.Items {
			b.WriteString("        <span class=\"skill-pill\">" + escape(strings.TrimSpace(item)) + "</span>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func projectsHTML(projects []models.Project) string {
	if len(projects) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<ul class=\"projects-list\">\n")
	for _, p := range projects {
		name := escape(p.Name)
		if p.URL != "" {
			name = `<a href="` + html.EscapeString(p.URL) + `">` + name + `</a>`
		}

		b.WriteString("    <li>\n")
		b.WriteString("        <span class=\"project-name\">" + name + "</span>")
		if len(p.Technologies) > 0 {
			b.WriteString(" <span class=\"project-tech\">(" + escape(strings.Join(p.Technologies, ", ")) + ")</span>")
		}
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString("        <p>" + escape(p.Description) + "</p>\n")
		}
		b.WriteString(bulletList(p.Bullets, "        "))
		b.WriteString("    </li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

func certificationsHTML(certifications []models.Certification) string {
	if len(certifications) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<ul class=\"certs-list\">\n")
	for _, c := range certifications {
		line := "<span class=\"cert-name\">" + escape(c.Name) + "</span>"
		if c.Issuer != "" {
			line += " - " + escape(c.Issuer)
		}
		if c.Date != "" {
			line += fmt.Sprintf(" (%s)", escape(c.Date))
		}
		b.WriteString("    <li>" + line + "</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

func awardsHTML(awards []models.Award) string {
	awards = lo.Filter(awards, func(a models.Award, _ int) bool {
		return strings.TrimSpace(a.Text) != ""
	})
	if len(awards) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<ul class=\"certs-list\">\n")
	for _, a := range awards {
		b.WriteString("    <li>" + escape(strings.TrimSpace(a.Text)) + "</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}
