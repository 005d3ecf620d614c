package services

import (
	"fmt"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/samber/lo"
	"strings"
)

// SystemInstruction is sent with every tailoring request. The markup it asks
// for is what the quick-edit extractor understands.
const SystemInstruction = `You are an expert CV/resume writer specializing in ATS-optimized,
machine-readable resumes for tech professionals.

Your writing style:
- Concise, action-oriented bullet points
- Quantified achievements where possible
- Industry-relevant keywords naturally integrated
- Professional yet personable tone

Format requirements:
- Output clean, semantic HTML only (no markdown)
- Use proper heading hierarchy (h1, h2, h3)
- Use <section> tags for major sections with id attributes
- Use <ul> and <li> for bullet points
- No tables for layout

MANDATORY HTML STRUCTURE (must follow exactly for editing compatibility):

1. Summary section:
   <section id="summary">
     <h2>...</h2>
     <p class="summary">Summary text here</p>
   </section>

2. Each work experience entry, inside <section id="experience">:
   <article class="entry" data-type="experience">
     <div class="entry-header">
       <span class="entry-title">Role/Title</span>
       <span class="entry-date">Date Range</span>
     </div>
     <div class="entry-header">
       <span class="entry-subtitle">Company Name</span>
       <span class="entry-location">Location</span>
     </div>
     <ul>
       <li>Bullet point</li>
     </ul>
   </article>

3. Education entries use the same structure with data-type="education"

Content ordering rules:
- Experience MUST be ordered from newest to oldest
- Group multiple roles at the same company together under one company heading
- Education should also be reverse chronological

Link display rules (MUST follow exactly):
- LinkedIn: href="https://www.linkedin.com/in/USERNAME" with display text "linkedin.com/in/USERNAME"
- GitHub: href="https://github.com/USERNAME" with display text "github.com/USERNAME"
- Do NOT use generic text like "LinkedIn" or "GitHub"
`

const onePageGuidance = `STRICT 1-PAGE LIMIT:
- Be highly concise, this CV MUST fit on a single page
- Use 2-3 bullet points per role maximum
- Focus only on the most impactful achievements
- Omit less relevant experiences entirely`

const normalPageGuidance = `PAGE LENGTH:
- Target 1-2 pages
- Include comprehensive details for relevant experiences
- 3-5 bullet points per role is acceptable`

type PromptInput struct {
	Record         models.Record
	JobDescription string
	Instructions   string
	TemplateHTML   string
	OnePage        bool
}

func BuildTailorPrompt(in PromptInput) string {
	var sb strings.Builder

	sb.WriteString("Based on the candidate's experience and the target job description, " +
		"create a tailored CV that highlights the most relevant qualifications.\n\n")

	sb.WriteString("## CANDIDATE'S FULL EXPERIENCE BANK:\n")
	sb.WriteString(FormatRecord(in.Record))
	sb.WriteString("\n## TARGET JOB DESCRIPTION:\n")
	sb.WriteString(strings.TrimSpace(in.JobDescription))
	sb.WriteString("\n\n## ADDITIONAL INSTRUCTIONS FROM USER:\n")
	if instructions := strings.TrimSpace(in.Instructions); instructions != "" {
		sb.WriteString(instructions)
	} else {
		sb.WriteString("None provided.")
	}

	guidance := normalPageGuidance
	if in.OnePage {
		guidance = onePageGuidance
	}
	sb.WriteString("\n\n## " + guidance + "\n\n")

	sb.WriteString("## TASK:\n" +
		"1. Select the most relevant experiences, skills, and achievements for this specific role\n" +
		"2. Tailor bullet points to match the job requirements\n" +
		"3. Optimize for ATS keyword matching\n" +
		"4. Use professional, impactful language\n\n")

	if strings.TrimSpace(in.TemplateHTML) != "" {
		sb.WriteString("## TEMPLATE TO USE:\n" +
			"Fill in this template structure, replacing placeholders with tailored content:\n\n")
		sb.WriteString(in.TemplateHTML)
		sb.WriteString("\n\nOutput the complete HTML with all placeholders filled in.\n")
	} else {
		sb.WriteString("## OUTPUT FORMAT:\n" +
			"Generate complete, valid HTML for the CV. Include embedded CSS in a <style> tag.\n" +
			"Use semantic HTML5 elements. Make it print-friendly.\n")
	}
	return sb.String()
}

// FormatRecord writes the record as the plain text experience bank of a prompt.
// Empty parts are left out.
func FormatRecord(record models.Record) string {
	var sb strings.Builder

	contact := record.Contact
	contactLines := lo.Filter([][2]string{
		{"Name", contact.Name}, {"Email", contact.Email}, {"Phone", contact.Phone},
		{"Location", contact.Location}, {"LinkedIn", render.LinkedIn.URL(contact.LinkedIn)},
		{"GitHub", render.GitHub.URL(contact.GitHub)}, {"Website", contact.Website},
	}, func(line [2]string, _ int) bool {
		return strings.TrimSpace(line[1]) != ""
	})
	if len(contactLines) > 0 {
		sb.WriteString("### CONTACT INFORMATION:\n")
		for _, line := range contactLines {
			fmt.Fprintf(&sb, "- %s: %s\n", line[0], line[1])
		}
		sb.WriteString("\n")
	}

	if summary := strings.TrimSpace(record.Summary); summary != "" {
		sb.WriteString("### PROFESSIONAL SUMMARY:\n" + summary + "\n\n")
	}

	if experiences := render.OrderExperiences(record.WorkExperiences); len(experiences) > 0 {
		sb.WriteString("### WORK EXPERIENCE:\n")
		for _, exp := range experiences {
			fmt.Fprintf(&sb, "\n**%s** at **%s**\n", exp.Role, exp.Company)
			fmt.Fprintf(&sb, "   %s | %s - %s\n", exp.Location, exp.StartDate, exp.EndDate)
			writeBullets(&sb, exp.Bullets)
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("### EDUCATION:\n")
		for _, edu := range record.Education {
			fmt.Fprintf(&sb, "\n**%s** in %s\n", edu.Degree, edu.Field)
			fmt.Fprintf(&sb, "   %s | %s - %s\n", edu.Institution, edu.StartDate, edu.EndDate)
			if edu.GPA != "" {
				fmt.Fprintf(&sb, "   GPA: %s\n", edu.GPA)
			}
			writeBullets(&sb, edu.Highlights)
		}
		sb.WriteString("\n")
	}

	if !record.Skills.IsEmpty() {
		sb.WriteString("### SKILLS:\n")
		for _, category := range record.Skills.Categories() {
			if len(category.Items) > 0 {
				fmt.Fprintf(&sb, "   %s: %s\n", category.Name, strings.Join(category.Items, ", "))
			}
		}
		sb.WriteString("\n")
	}

	if len(record.Projects) > 0 {
		sb.WriteString("### PROJECTS:\n")
		for _, project := range record.Projects {
			fmt.Fprintf(&sb, "\n**%s**\n", project.Name)
			if project.Description != "" {
				fmt.Fprintf(&sb, "   %s\n", project.Description)
			}
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&sb, "   Technologies: %s\n", strings.Join(project.Technologies, ", "))
			}
			writeBullets(&sb, project.Bullets)
		}
		sb.WriteString("\n")
	}

	if len(record.Certifications) > 0 {
		sb.WriteString("### CERTIFICATIONS:\n")
		for _, cert := range record.Certifications {
			fmt.Fprintf(&sb, "   • %s - %s (%s)\n", cert.Name, cert.Issuer, cert.Date)
		}
		sb.WriteString("\n")
	}

	if len(record.Awards) > 0 {
		sb.WriteString("### AWARDS & HONORS:\n")
		writeBullets(&sb, lo.Map(record.Awards, func(a models.Award, _ int) string { return a.Text }))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeBullets(sb *strings.Builder, bullets []string) {
	for _, bullet := range bullets {
		if bullet = strings.TrimSpace(bullet); bullet != "" {
			sb.WriteString("   • " + bullet + "\n")
		}
	}
}
