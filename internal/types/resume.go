package types

// EntityType identifies which part of the profile a ranked candidate came from.
type EntityType string

// Candidate source entity types.
const (
	EntityWork          EntityType = "work"
	EntityProject       EntityType = "project"
	EntitySkill         EntityType = "skill"
	EntityCertification EntityType = "certification"
)

// SourceRef points back at the profile entity a candidate was flattened from.
type SourceRef struct {
	EntityType EntityType `json:"entityType"`
	Index      int        `json:"index"`
}

// RankedBullet is one candidate text with its relevance score against the
// job description. Produced fresh per request and never cached, because the
// job description varies per request.
type RankedBullet struct {
	SourceText string    `json:"sourceText"`
	SourceRef  SourceRef `json:"sourceRef"`
	Score      float64   `json:"score"`
}

// EducationLine is the renderer-facing education row.
type EducationLine struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// GeneratedResumeContent is the normalized shape the renderer consumes,
// regardless of which path (LLM rewrite, ranking, or deterministic fallback)
// produced it. Request-scoped, never persisted.
type GeneratedResumeContent struct {
	Summary           string          `json:"summary"`
	Skills            []string        `json:"skills"`
	ExperienceBullets []string        `json:"experienceBullets"`
	Education         []EducationLine `json:"education"`
}
