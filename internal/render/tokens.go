package render

// Placeholder tokens understood by Fill. Matching is literal and case-sensitive.
const (
	TokenContactName       = "{{CONTACT_NAME}}"
	TokenContactEmail      = "{{CONTACT_EMAIL}}"
	TokenContactPhone      = "{{CONTACT_PHONE}}"
	TokenContactLocation   = "{{CONTACT_LOCATION}}"
	TokenContactLinks      = "{{CONTACT_LINKS}}"
	TokenContactLinkedIn   = "{{CONTACT_LINKEDIN}}"
	TokenContactGitHub     = "{{CONTACT_GITHUB}}"
	TokenSummary           = "{{SUMMARY}}"
	TokenExperience        = "{{EXPERIENCE}}"
	TokenExperienceGrouped = "{{EXPERIENCE_GROUPED}}"
	TokenEducation         = "{{EDUCATION}}"
	TokenSkills            = "{{SKILLS}}"
	TokenSkillsPills       = "{{SKILLS_PILLS}}"
	TokenProjects          = "{{PROJECTS}}"
	TokenCertifications    = "{{CERTIFICATIONS}}"
	TokenAwards            = "{{AWARDS}}"
)

var Tokens = []string{
	TokenContactName, TokenContactEmail, TokenContactPhone, TokenContactLocation,
	TokenContactLinks, TokenContactLinkedIn, TokenContactGitHub, TokenSummary,
	TokenExperience, TokenExperienceGrouped, TokenEducation, TokenSkills,
	TokenSkillsPills, TokenProjects, TokenCertifications, TokenAwards,
}
