package ranking

import (
	"strings"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// FlatCandidate is one rankable text flattened out of a profile, before
// embedding.
type FlatCandidate struct {
	Text string
	Ref  types.SourceRef
}

// FlattenCandidates collects every rankable text from a profile: all skills,
// every work-entry bullet, and all certifications, in profile order.
// Blank entries are skipped.
func FlattenCandidates(profile *types.Profile) []FlatCandidate {
	var out []FlatCandidate

	for i, skill := range profile.Skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		out = append(out, FlatCandidate{
			Text: skill,
			Ref:  types.SourceRef{EntityType: types.EntitySkill, Index: i},
		})
	}

	for i, work := range profile.Work {
		for _, bullet := range work.Description {
			if strings.TrimSpace(bullet) == "" {
				continue
			}
			out = append(out, FlatCandidate{
				Text: bullet,
				Ref:  types.SourceRef{EntityType: types.EntityWork, Index: i},
			})
		}
	}

	for i, cert := range profile.Certifications {
		if strings.TrimSpace(cert) == "" {
			continue
		}
		out = append(out, FlatCandidate{
			Text: cert,
			Ref:  types.SourceRef{EntityType: types.EntityCertification, Index: i},
		})
	}

	return out
}
