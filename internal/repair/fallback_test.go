package repair

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

func TestFallback_UsesProfileSummaryWhenPresent(t *testing.T) {
	profile := testProfile()
	profile.Summary = "Hand-written summary."

	content := Fallback(profile, "some job")

	assert.Equal(t, "Hand-written summary.", content.Summary)
}

func TestFallback_SynthesizesSummaryFromJobDescription(t *testing.T) {
	profile := testProfile()
	profile.Summary = ""
	long := strings.Repeat("a", 80)

	content := Fallback(profile, long)

	assert.Contains(t, content.Summary, "Experienced professional seeking position in")
	assert.Contains(t, content.Summary, strings.Repeat("a", 50))
	assert.NotContains(t, content.Summary, strings.Repeat("a", 51))
	assert.True(t, strings.HasSuffix(content.Summary, "..."))
}

func TestFallback_CapsSkillsAtTen(t *testing.T) {
	profile := testProfile()
	profile.Skills = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	content := Fallback(profile, "")

	assert.Len(t, content.Skills, 10)
	assert.Equal(t, "j", content.Skills[9])
}

func TestFallback_BulletFormat(t *testing.T) {
	content := Fallback(testProfile(), "")

	require.NotEmpty(t, content.ExperienceBullets)
	assert.Equal(t, "Engineer at Acme - Built X", content.ExperienceBullets[0])
	assert.Contains(t, content.ExperienceBullets, "Built X")
	assert.Contains(t, content.ExperienceBullets, "Shipped Y")
}

func TestFallback_DefaultsForSparseWork(t *testing.T) {
	profile := &types.Profile{
		Work: []types.WorkItem{{Title: "Analyst"}},
	}

	content := Fallback(profile, "")

	require.NotEmpty(t, content.ExperienceBullets)
	assert.Equal(t, "Analyst at Company - Contributed to team success", content.ExperienceBullets[0])
}

func TestFallback_PlaceholderBulletWhenNoWork(t *testing.T) {
	content := Fallback(types.EmptyProfile(), "")

	assert.Equal(t, []string{"Experienced professional with relevant background"}, content.ExperienceBullets)
}

func TestFallback_EducationDefaults(t *testing.T) {
	profile := &types.Profile{
		Education: []types.EducationItem{
			{Degree: "BS", EndDate: "2021-06"},
			{Degree: "MS"},
			{},
		},
	}

	content := Fallback(profile, "")

	require.Len(t, content.Education, 2)
	assert.Equal(t, "University", content.Education[0].Institution)
	assert.Equal(t, "2021", content.Education[0].Year)
	assert.Equal(t, "N/A", content.Education[1].Year)
}

func TestFallback_OngoingEducationUsesPresent(t *testing.T) {
	profile := &types.Profile{
		Education: []types.EducationItem{
			{Degree: "PhD", Institution: "Tech", EndDate: types.PresentSentinel},
		},
	}

	content := Fallback(profile, "")

	require.Len(t, content.Education, 1)
	assert.Equal(t, types.PresentSentinel, content.Education[0].Year)
}
