package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_ValidDocument(t *testing.T) {
	doc := `{
		"personal": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com"},
		"summary": "Engineer.",
		"education": [{"institution": "State", "degree": "BS", "startDate": "2014", "endDate": "2018"}],
		"work": [{"title": "Engineer", "company": "Acme", "description": ["Built X"]}],
		"projects": [],
		"skills": ["Go"],
		"certifications": [],
		"websites": []
	}`

	assert.NoError(t, ValidateProfile([]byte(doc)))
}

func TestValidateProfile_LegacyFieldNamesAccepted(t *testing.T) {
	doc := `{
		"work": [{"title": "Engineer", "responsibilities": ["Did things"]}],
		"projects": [{"title": "Tool", "stack": ["Go"], "details": ["CLI"]}]
	}`

	assert.NoError(t, ValidateProfile([]byte(doc)))
}

func TestValidateProfile_UnknownFieldsTolerated(t *testing.T) {
	doc := `{"skills": ["Go"], "futureField": {"anything": true}}`

	assert.NoError(t, ValidateProfile([]byte(doc)))
}

func TestValidateProfile_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "skills as string",
			doc:   `{"skills": "Go"}`,
			field: "skills",
		},
		{
			name:  "work as object",
			doc:   `{"work": {"title": "Engineer"}}`,
			field: "work",
		},
		{
			name:  "summary as number",
			doc:   `{"summary": 42}`,
			field: "summary",
		},
		{
			name:  "description items not strings",
			doc:   `{"work": [{"description": [1, 2]}]}`,
			field: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateProfile_MalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{not json`))
	assert.Error(t, err)
}
