package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/AdamPostMontjoie/resumefy/internal/embedding"
	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/ranking"
	"github.com/AdamPostMontjoie/resumefy/internal/repair"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

const (
	// topK is how many ranked candidates are sent for rewriting.
	topK = 8
	// embedConcurrency bounds the per-candidate embedding fan-out.
	embedConcurrency = 4
)

// RankGenerator implements the rank-then-rewrite strategy: embed the job
// description and every candidate bullet, rank by cosine similarity, and ask
// the completion service to rewrite only the top-K candidates.
type RankGenerator struct {
	completion llm.Client
	embedder   embedding.Embedder
}

// Generate implements Generator.
func (g *RankGenerator) Generate(ctx context.Context, profile *types.Profile, job types.JobTarget) (*types.GeneratedResumeContent, error) {
	flat := ranking.FlattenCandidates(profile)
	if len(flat) == 0 {
		return nil, &EmptyProfileError{}
	}

	query, err := g.embedder.Embed(ctx, job.Description)
	if err != nil {
		return nil, err
	}

	candidates, err := g.embedCandidates(ctx, flat)
	if err != nil {
		return nil, err
	}

	ranked := ranking.Rank(query, candidates)

	top := ranked
	if len(top) > topK {
		top = top[:topK]
	}

	bullets := g.rewrite(ctx, job, top)

	// The fallback projection supplies summary and education; ranking
	// determines skills and bullets.
	content := repair.Fallback(profile, job.Description)
	content.ExperienceBullets = bullets
	content.Skills = rankedSkills(ranked, profile)
	return content, nil
}

// embedCandidates embeds every candidate, fanning out concurrently. Results
// are re-associated with their originating index, so the final order never
// depends on completion order.
func (g *RankGenerator) embedCandidates(ctx context.Context, flat []ranking.FlatCandidate) ([]ranking.Candidate, error) {
	candidates := make([]ranking.Candidate, len(flat))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(embedConcurrency)
	for i, fc := range flat {
		eg.Go(func() error {
			vec, err := g.embedder.Embed(ctx, fc.Text)
			if err != nil {
				return err
			}
			candidates[i] = ranking.Candidate{Text: fc.Text, Ref: fc.Ref, Vector: vec}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// rewrite asks the completion service to rewrite the top-ranked bullets. On
// any completion or parse failure the ranked original texts are kept; a
// degraded resume is still a resume.
func (g *RankGenerator) rewrite(ctx context.Context, job types.JobTarget, top []types.RankedBullet) []string {
	originals := make([]string, len(top))
	for i, b := range top {
		originals[i] = b.SourceText
	}

	prompt := buildRankRewritePrompt(job, top)
	out, err := g.completion.Complete(ctx, rankRewriteSystemPrompt, prompt, llm.DefaultOptions())
	if err != nil {
		log.Printf("[PIPELINE] completion unavailable, keeping ranked originals: %v", err)
		return originals
	}

	rewritten, ok := repair.ParseBulletList(out)
	if !ok || len(rewritten) == 0 {
		log.Printf("[PIPELINE] rewrite output unusable, keeping ranked originals")
		return originals
	}
	return rewritten
}

// rankedSkills returns the profile's skills in ranked order, capped at ten.
func rankedSkills(ranked []types.RankedBullet, profile *types.Profile) []string {
	skills := make([]string, 0, len(profile.Skills))
	for _, b := range ranked {
		if b.SourceRef.EntityType == types.EntitySkill {
			skills = append(skills, b.SourceText)
		}
		if len(skills) == 10 {
			break
		}
	}
	if len(skills) == 0 {
		skills = profile.Skills
		if len(skills) > 10 {
			skills = skills[:10]
		}
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}
