package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// rewriteSystemPrompt instructs the model to produce the full resume record.
const rewriteSystemPrompt = `You are a professional resume writer. Generate a tailored resume by selecting and highlighting the most relevant information from the user's profile based on the job description.

INSTRUCTIONS:
1. Extract work experience from the user's work history and create detailed bullet points for each relevant position
2. Select skills that match the job requirements
3. Use the user's education entries
4. Create a compelling summary that connects their background to the job
5. Use active voice, no first-person pronouns
6. Each experience bullet should be specific and achievement-focused
7. Include at least 5-8 experience bullet points from the user's work history
8. Tailor everything to match the job description

Return ONLY a valid JSON object with this exact structure:
{
  "summary": "A 2-3 sentence professional summary",
  "skills": ["skill1", "skill2", "skill3", "skill4", "skill5"],
  "experienceBullets": ["Detailed bullet point 1", "Detailed bullet point 2", "Detailed bullet point 3"],
  "education": [{"degree": "Degree Name", "institution": "School Name", "year": "Year"}]
}

Do NOT include markdown, explanations, or any text outside the JSON object.`

// buildRewritePrompt serializes the profile alongside the job target for the
// full-rewrite strategy.
func buildRewritePrompt(profile *types.Profile, job types.JobTarget) string {
	var sb strings.Builder

	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(job.Description)
	sb.WriteString("\n\n")

	if job.Responsibilities != "" {
		sb.WriteString("JOB RESPONSIBILITIES:\n")
		sb.WriteString(job.Responsibilities)
		sb.WriteString("\n\n")
	}

	name := strings.TrimSpace(profile.Personal.FirstName + " " + profile.Personal.LastName)
	sb.WriteString("USER PROFILE DATA:\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", orDefault(name, "Not provided")))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orDefault(profile.Personal.Email, "Not provided")))
	sb.WriteString(fmt.Sprintf("Summary: %s\n\n", orDefault(profile.Summary, "Not provided")))

	sb.WriteString(fmt.Sprintf("Skills: %s\n\n", mustJSON(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Work Experience: %s\n\n", mustJSON(profile.Work)))
	sb.WriteString(fmt.Sprintf("Education: %s\n\n", mustJSON(profile.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %s\n\n", mustJSON(profile.Certifications)))

	sb.WriteString("Now generate a tailored resume in valid JSON format.")
	return sb.String()
}

// rankRewriteSystemPrompt instructs the model to rewrite a fixed bullet
// list, not the full record.
const rankRewriteSystemPrompt = `You are a professional resume writer. Rewrite the provided resume bullets to target the given job description.

RULES:
1. Preserve the factual content of each bullet; do not invent achievements
2. Cap each bullet at 18 words
3. Use active voice, no first-person pronouns
4. Return ONLY a JSON array of strings, one rewritten bullet per input bullet, in the same order
5. Do NOT include markdown, explanations, or any text outside the JSON array`

// buildRankRewritePrompt lists the top-ranked bullets for targeted rewriting.
func buildRankRewritePrompt(job types.JobTarget, bullets []types.RankedBullet) string {
	var sb strings.Builder

	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(job.Description)
	sb.WriteString("\n\nBULLETS TO REWRITE:\n")
	for i, b := range bullets {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, b.SourceText))
	}
	sb.WriteString("\nReturn the rewritten bullets as a JSON array of strings.")
	return sb.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
