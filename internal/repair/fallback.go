package repair

import (
	"fmt"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

const (
	maxFallbackSkills     = 10
	summarySnippetLength  = 50
	placeholderBulletText = "Contributed to team success"
)

// Fallback synthesizes resume content directly from the profile with no AI
// involvement. Pure field projection with defaults; it cannot fail.
func Fallback(profile *types.Profile, jobDescription string) *types.GeneratedResumeContent {
	summary := profile.Summary
	if summary == "" {
		snippet := jobDescription
		if len(snippet) > summarySnippetLength {
			snippet = snippet[:summarySnippetLength]
		}
		summary = fmt.Sprintf("Experienced professional seeking position in %s...", snippet)
	}

	skills := profile.Skills
	if len(skills) > maxFallbackSkills {
		skills = skills[:maxFallbackSkills]
	}
	if skills == nil {
		skills = []string{}
	}

	bullets := []string{}
	for _, job := range profile.Work {
		if job.Title == "" {
			continue
		}
		company := job.Company
		if company == "" {
			company = "Company"
		}
		lead := placeholderBulletText
		if len(job.Description) > 0 {
			lead = job.Description[0]
		}
		bullets = append(bullets, fmt.Sprintf("%s at %s - %s", job.Title, company, lead))
		bullets = append(bullets, job.Description...)
	}
	if len(bullets) == 0 {
		bullets = []string{"Experienced professional with relevant background"}
	}

	education := []types.EducationLine{}
	for _, ed := range profile.Education {
		if ed.Degree == "" && ed.Institution == "" {
			continue
		}
		institution := ed.Institution
		if institution == "" {
			institution = "University"
		}
		year := ed.GraduationDisplay()
		if year == "" {
			year = "N/A"
		}
		education = append(education, types.EducationLine{
			Degree:      ed.Degree,
			Institution: institution,
			Year:        year,
		})
	}

	return &types.GeneratedResumeContent{
		Summary:           summary,
		Skills:            skills,
		ExperienceBullets: bullets,
		Education:         education,
	}
}
