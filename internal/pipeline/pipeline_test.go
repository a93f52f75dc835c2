package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamPostMontjoie/resumefy/internal/config"
	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// fakeClient implements llm.Client with a canned response or error.
type fakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) Complete(_ context.Context, _, userPrompt string, _ llm.Options) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, userPrompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

// fakeEmbedder returns vectors from a lookup table, with a default for
// unknown texts.
type fakeEmbedder struct {
	vectors map[string][]float64
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float64{0.1, 0.1}, nil
}

func pipelineProfile() *types.Profile {
	return &types.Profile{
		Personal: types.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Work: []types.WorkItem{
			{
				Title:       "Engineer",
				Company:     "Acme",
				Description: []string{"Built the billing service", "Maintained legacy reports"},
			},
		},
		Skills: []string{"Go", "COBOL"},
	}
}

func TestNew_SelectsStrategy(t *testing.T) {
	client := &fakeClient{}
	embedder := &fakeEmbedder{}

	assert.IsType(t, &RewriteGenerator{}, New(config.StrategyRewrite, client, embedder))
	assert.IsType(t, &RankGenerator{}, New(config.StrategyRank, client, embedder))
}

func TestRewriteGenerator_UsesModelOutput(t *testing.T) {
	client := &fakeClient{
		response: `{"summary": "Tailored summary for the role.", "skills": ["Go"], "experienceBullets": ["Rewrote billing for scale"], "education": []}`,
	}
	gen := &RewriteGenerator{completion: client}

	content, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.NoError(t, err)

	assert.Equal(t, "Tailored summary for the role.", content.Summary)
	assert.Equal(t, []string{"Rewrote billing for scale"}, content.ExperienceBullets)
	assert.Equal(t, 1, client.calls)
}

func TestRewriteGenerator_PromptCarriesJobAndProfile(t *testing.T) {
	client := &fakeClient{response: `{}`}
	gen := &RewriteGenerator{completion: client}

	_, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{
		Description:      "Go backend role",
		Responsibilities: "Own the billing stack",
	})
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Go backend role")
	assert.Contains(t, prompt, "Own the billing stack")
	assert.Contains(t, prompt, "Built the billing service")
}

func TestRewriteGenerator_FallsBackOnCompletionFailure(t *testing.T) {
	client := &fakeClient{err: &llm.UnavailableError{Message: "endpoint down"}}
	gen := &RewriteGenerator{completion: client}

	content, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.NoError(t, err)

	require.NotEmpty(t, content.ExperienceBullets)
	assert.Contains(t, content.ExperienceBullets[0], "Engineer at Acme")
}

func TestRewriteGenerator_EmptyProfile(t *testing.T) {
	client := &fakeClient{}
	gen := &RewriteGenerator{completion: client}

	_, err := gen.Generate(context.Background(), types.EmptyProfile(), types.JobTarget{Description: "any"})

	var emptyErr *EmptyProfileError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, 0, client.calls, "completion service must not be called for an empty profile")
}

func TestRankGenerator_RanksAndRewrites(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			"Go backend role":           {1, 0},
			"Built the billing service": {0.9, 0.1},
			"Maintained legacy reports": {0.1, 0.9},
			"Go":                        {0.8, 0.2},
			"COBOL":                     {0, 1},
		},
	}
	client := &fakeClient{response: `["Scaled the billing service for new markets"]`}
	gen := &RankGenerator{completion: client, embedder: embedder}

	content, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Scaled the billing service for new markets"}, content.ExperienceBullets)
	// Skills come back in ranked order: Go aligns with the query, COBOL does not.
	require.GreaterOrEqual(t, len(content.Skills), 2)
	assert.Equal(t, "Go", content.Skills[0])
	assert.Equal(t, "COBOL", content.Skills[1])

	// The rewrite prompt carries the top-ranked original first.
	require.Len(t, client.prompts, 1)
	assert.Less(t,
		strings.Index(client.prompts[0], "Built the billing service"),
		strings.Index(client.prompts[0], "Maintained legacy reports"))
}

func TestRankGenerator_KeepsOriginalsWhenRewriteFails(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			"Go backend role":           {1, 0},
			"Built the billing service": {0.9, 0.1},
		},
	}
	client := &fakeClient{err: &llm.UnavailableError{Message: "down"}}
	gen := &RankGenerator{completion: client, embedder: embedder}

	content, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.NoError(t, err)

	assert.Contains(t, content.ExperienceBullets, "Built the billing service")
	assert.Contains(t, content.ExperienceBullets, "Maintained legacy reports")
}

func TestRankGenerator_KeepsOriginalsOnUnparseableRewrite(t *testing.T) {
	client := &fakeClient{response: "sorry, I cannot help with that"}
	gen := &RankGenerator{completion: client, embedder: &fakeEmbedder{}}

	content, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.NoError(t, err)

	assert.Contains(t, content.ExperienceBullets, "Built the billing service")
}

func TestRankGenerator_EmbeddingFailureSurfaces(t *testing.T) {
	gen := &RankGenerator{
		completion: &fakeClient{},
		embedder:   &fakeEmbedder{err: fmt.Errorf("model not pulled")},
	}

	_, err := gen.Generate(context.Background(), pipelineProfile(), types.JobTarget{Description: "Go backend role"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not pulled")
}

func TestRankGenerator_EmptyProfile(t *testing.T) {
	gen := &RankGenerator{completion: &fakeClient{}, embedder: &fakeEmbedder{}}

	_, err := gen.Generate(context.Background(), types.EmptyProfile(), types.JobTarget{Description: "any"})

	var emptyErr *EmptyProfileError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestRankGenerator_CapsAtTopK(t *testing.T) {
	profile := &types.Profile{
		Work: []types.WorkItem{{Title: "Engineer", Company: "Acme"}},
	}
	for i := 0; i < 15; i++ {
		profile.Work[0].Description = append(profile.Work[0].Description, fmt.Sprintf("Achievement number %d", i))
	}

	client := &fakeClient{err: &llm.UnavailableError{Message: "down"}}
	gen := &RankGenerator{completion: client, embedder: &fakeEmbedder{}}

	content, err := gen.Generate(context.Background(), profile, types.JobTarget{Description: "role"})
	require.NoError(t, err)

	assert.Len(t, content.ExperienceBullets, topK)
}
