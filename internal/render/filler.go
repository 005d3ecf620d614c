package render

import (
	"github.com/orajb/cv-craft/internal/domain/models"
	"strings"
)

type Options struct {
	Density        Density
	Paginate       bool
	GroupByCompany bool
}

// Fill substitutes every placeholder token of template with record data in a
// single pass, drops sections left empty and appends the layout styles.
// Substituted text is never scanned for tokens again.
func Fill(template string, record models.Record, opts Options) string {
	contact := record.Contact
	experiences := OrderExperiences(record.WorkExperiences)

	flat := experienceHTML(experiences)
	grouped := flat
	if opts.GroupByCompany {
		grouped = groupedExperienceHTML(GroupByCompany(experiences))
	}

	replacer := strings.NewReplacer(
		TokenContactName, escape(contact.Name),
		TokenContactEmail, escape(contact.Email),
		TokenContactPhone, escape(contact.Phone),
		TokenContactLocation, escape(contact.Location),
		TokenContactLinks, contactLinks(contact.LinkedIn, contact.GitHub, contact.Website),
		TokenContactLinkedIn, escape(LinkedIn.URL(contact.LinkedIn)),
		TokenContactGitHub, escape(GitHub.URL(contact.GitHub)),
		TokenSummary, escape(strings.TrimSpace(record.Summary)),
		TokenExperience, flat,
		TokenExperienceGrouped, grouped,
		TokenEducation, educationHTML(record.Education),
		TokenSkills, skillsGridHTML(record.Skills),
		TokenSkillsPills, skillPillsHTML(record.Skills),
		TokenProjects, projectsHTML(record.Projects),
		TokenCertifications, certificationsHTML(record.Certifications),
		TokenAwards, awardsHTML(record.Awards),
	)

	doc := RemoveEmptySections(replacer.Replace(template))
	return ApplyLayout(doc, opts.Density, opts.Paginate)
}
