package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_WorkLegacyFields(t *testing.T) {
	p := &Profile{
		Work: []WorkItem{
			{
				Title:            "Engineer",
				BeginningDate:    "2019-01",
				FinishDate:       "2021-06",
				Responsibilities: []string{"Did the work"},
			},
		},
	}

	p.Normalize()

	w := p.Work[0]
	assert.Equal(t, "2019-01", w.StartDate)
	assert.Equal(t, "2021-06", w.EndDate)
	assert.Equal(t, []string{"Did the work"}, w.Description)
	assert.Empty(t, w.BeginningDate)
	assert.Empty(t, w.FinishDate)
	assert.Nil(t, w.Responsibilities)
}

func TestNormalize_CanonicalWinsOverLegacy(t *testing.T) {
	p := &Profile{
		Work: []WorkItem{
			{
				StartDate:        "2020-01",
				BeginningDate:    "1999-01",
				Description:      []string{"canonical"},
				Responsibilities: []string{"legacy"},
			},
		},
		Education: []EducationItem{
			{Institution: "Canonical U", School: "Legacy School", EndDate: "2020", Year: "1999"},
		},
	}

	p.Normalize()

	assert.Equal(t, "2020-01", p.Work[0].StartDate)
	assert.Equal(t, []string{"canonical"}, p.Work[0].Description)
	assert.Equal(t, "Canonical U", p.Education[0].Institution)
	assert.Equal(t, "2020", p.Education[0].EndDate)
}

func TestNormalize_EducationYearPrecedence(t *testing.T) {
	p := &Profile{
		Education: []EducationItem{
			{Year: "2018", GraduationYear: "2017"},
			{GraduationYear: "2017"},
		},
	}

	p.Normalize()

	assert.Equal(t, "2018", p.Education[0].EndDate)
	assert.Equal(t, "2017", p.Education[1].EndDate)
}

func TestNormalize_ProjectLegacyFields(t *testing.T) {
	p := &Profile{
		Projects: []ProjectItem{
			{Title: "Tool", Stack: []string{"Go"}, Details: []string{"CLI for things"}},
		},
	}

	p.Normalize()

	pr := p.Projects[0]
	assert.Equal(t, []string{"Go"}, pr.Tools)
	assert.Equal(t, []string{"CLI for things"}, pr.Descriptions)
	assert.Nil(t, pr.Stack)
	assert.Nil(t, pr.Details)
}

func TestNormalize_ReserializedDocumentDropsLegacyKeys(t *testing.T) {
	doc := `{
		"personal": {"firstName": "Jane", "lastName": "Doe", "email": "j@example.com"},
		"work": [{"title": "Engineer", "company": "Acme", "beginningdate": "2019", "finishdate": "2021", "responsibilities": ["Built X"]}],
		"education": [{"degree": "BS", "school": "State", "graduationYear": "2019"}]
	}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(doc), &p))
	p.Normalize()

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "beginningdate")
	assert.NotContains(t, string(out), "responsibilities")
	assert.NotContains(t, string(out), "school")
	assert.Contains(t, string(out), `"startDate":"2019"`)
	assert.Contains(t, string(out), `"institution":"State"`)
}

func TestGraduationDisplay(t *testing.T) {
	tests := []struct {
		name     string
		endDate  string
		expected string
	}{
		{"empty", "", ""},
		{"present sentinel", PresentSentinel, PresentSentinel},
		{"full date", "2020-05-15", "2020"},
		{"year month", "2020-05", "2020"},
		{"year only", "2020", "2020"},
		{"short value passes through", "20", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EducationItem{EndDate: tt.endDate}
			assert.Equal(t, tt.expected, e.GraduationDisplay())
		})
	}
}

func TestEmptyProfile_AllListsInitialized(t *testing.T) {
	p := EmptyProfile()

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"skills":[]`)
	assert.Contains(t, string(out), `"work":[]`)
	assert.Contains(t, string(out), `"education":[]`)
	assert.NotContains(t, string(out), "null")
}
