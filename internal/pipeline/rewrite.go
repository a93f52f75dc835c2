package pipeline

import (
	"context"
	"log"

	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/repair"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// RewriteGenerator implements the full-rewrite strategy: one prompt
// embedding the job target and the serialized profile, one completion call,
// repair on the result. One round trip total.
type RewriteGenerator struct {
	completion llm.Client
}

// Generate implements Generator.
func (g *RewriteGenerator) Generate(ctx context.Context, profile *types.Profile, job types.JobTarget) (*types.GeneratedResumeContent, error) {
	if err := checkProfileContent(profile); err != nil {
		return nil, err
	}

	prompt := buildRewritePrompt(profile, job)
	out, err := g.completion.Complete(ctx, rewriteSystemPrompt, prompt, llm.DefaultOptions())
	if err != nil {
		// Completion failure and unusable text are the same case: repair's
		// fallback tier produces a resume either way.
		log.Printf("[PIPELINE] completion unavailable, falling back: %v", err)
		out = ""
	}

	return repair.Repair(out, profile, job.Description), nil
}
