// Package ranking scores candidate resume bullets against a job description
// using embedding cosine similarity.
package ranking

import (
	"math"
	"sort"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// CosineSimilarity computes the directional alignment of two vectors, in
// [-1, 1]. A zero-norm vector or a length mismatch yields 0, never NaN;
// empty-text candidates embed to zero-effort vectors and must rank neutrally
// rather than blow up the sort.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// Candidate pairs a flattened profile text with its embedding vector.
type Candidate struct {
	Text   string
	Ref    types.SourceRef
	Vector []float64
}

// Rank orders candidates by descending cosine similarity to the query
// vector. The sort is stable: candidates with equal scores keep their input
// order, which makes output deterministic. Pure function; inputs are not
// mutated.
func Rank(query []float64, candidates []Candidate) []types.RankedBullet {
	ranked := make([]types.RankedBullet, len(candidates))
	for i, c := range candidates {
		ranked[i] = types.RankedBullet{
			SourceText: c.Text,
			SourceRef:  c.Ref,
			Score:      CosineSimilarity(query, c.Vector),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
