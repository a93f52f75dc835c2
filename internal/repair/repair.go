// Package repair recovers usable resume content from raw model output.
// Models return prose-wrapped, fenced, or outright broken JSON; repair
// attempts a strict parse, then substring extraction, then falls back to a
// deterministic profile-to-resume transform that cannot fail.
package repair

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// wireContent mirrors GeneratedResumeContent on the wire, accepting the
// legacy snake_case bullet key older prompts produced. The canonical key
// wins when both are present.
type wireContent struct {
	Summary           string                `json:"summary"`
	Skills            []string              `json:"skills"`
	ExperienceBullets []string              `json:"experienceBullets"`
	LegacyBullets     []string              `json:"experience_bullets"`
	Education         []types.EducationLine `json:"education"`
}

func (w *wireContent) toContent() *types.GeneratedResumeContent {
	bullets := w.ExperienceBullets
	if len(bullets) == 0 {
		bullets = w.LegacyBullets
	}
	content := &types.GeneratedResumeContent{
		Summary:           w.Summary,
		Skills:            w.Skills,
		ExperienceBullets: bullets,
		Education:         w.Education,
	}
	if content.Skills == nil {
		content.Skills = []string{}
	}
	if content.ExperienceBullets == nil {
		content.ExperienceBullets = []string{}
	}
	if content.Education == nil {
		content.Education = []types.EducationLine{}
	}
	return content
}

// Repair turns raw model output into resume content. Three tiers, first
// success wins; the final tier performs no parsing and cannot fail, so
// Repair never returns an error.
func Repair(rawText string, profile *types.Profile, jobDescription string) *types.GeneratedResumeContent {
	if content, ok := parseStrict(rawText); ok {
		return content
	}

	if content, ok := parseExtracted(rawText); ok {
		log.Printf("[REPAIR] strict parse failed, recovered embedded JSON object")
		return content
	}

	log.Printf("[REPAIR] model output unusable, using deterministic fallback")
	return Fallback(profile, jobDescription)
}

// parseStrict attempts to parse the whole trimmed text as a resume content
// record. Partial success is still success: a short summary or zero bullets
// only warrants a warning.
func parseStrict(rawText string) (*types.GeneratedResumeContent, bool) {
	cleaned := llm.CleanJSONBlock(rawText)

	var wire wireContent
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, false
	}

	content := wire.toContent()
	if len(content.Summary) < 10 {
		log.Printf("[REPAIR] warning: summary short or missing")
	}
	if len(content.ExperienceBullets) == 0 {
		log.Printf("[REPAIR] warning: no experience bullets generated")
	}
	return content, true
}

// parseExtracted locates the first '{' and the last '}' and parses the
// substring between them, recovering records wrapped in prose the model
// added despite instructions.
func parseExtracted(rawText string) (*types.GeneratedResumeContent, bool) {
	start := strings.Index(rawText, "{")
	end := strings.LastIndex(rawText, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var wire wireContent
	if err := json.Unmarshal([]byte(rawText[start:end+1]), &wire); err != nil {
		return nil, false
	}
	return wire.toContent(), true
}

// ParseBulletList parses model output expected to be a JSON array of
// strings, trying a direct parse and then a '['..']' substring extraction.
// Used by the rank-then-rewrite strategy, which asks for a bullet list
// rather than the full record.
func ParseBulletList(rawText string) ([]string, bool) {
	cleaned := llm.CleanJSONBlock(rawText)

	var bullets []string
	if err := json.Unmarshal([]byte(cleaned), &bullets); err == nil {
		return bullets, true
	}

	start := strings.Index(rawText, "[")
	end := strings.LastIndex(rawText, "]")
	if start < 0 || end <= start {
		return nil, false
	}
	if err := json.Unmarshal([]byte(rawText[start:end+1]), &bullets); err != nil {
		return nil, false
	}
	return bullets, true
}
