// Package pipeline orchestrates resume content generation: load profile,
// rank and/or rewrite content against the target job, and produce the
// normalized content object the renderer consumes.
package pipeline

import (
	"context"

	"github.com/AdamPostMontjoie/resumefy/internal/config"
	"github.com/AdamPostMontjoie/resumefy/internal/embedding"
	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/ranking"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// Generator produces normalized resume content for a profile and job target.
type Generator interface {
	Generate(ctx context.Context, profile *types.Profile, job types.JobTarget) (*types.GeneratedResumeContent, error)
}

// New selects the generation strategy from configuration.
func New(strategy config.Strategy, completion llm.Client, embedder embedding.Embedder) Generator {
	if strategy == config.StrategyRank {
		return &RankGenerator{completion: completion, embedder: embedder}
	}
	return &RewriteGenerator{completion: completion}
}

// checkProfileContent fails fast when the profile has nothing rankable or
// rewritable, before any external service is called.
func checkProfileContent(profile *types.Profile) error {
	if len(ranking.FlattenCandidates(profile)) == 0 {
		return &EmptyProfileError{}
	}
	return nil
}
