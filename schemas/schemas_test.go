package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range []string{CatalogSchema, ReportSchema} {
		t.Run(schemaFile, func(t *testing.T) {
			content, err := Load(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(content), &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare type and $schema")
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("missing.schema.json")
	assert.Error(t, err)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLoad("missing.schema.json") })
}

func TestCatalogSchema_RejectsBadRoleKey(t *testing.T) {
	doc := `{
		"roles": [{"key": "Software Developer", "core_skills": ["Go"]}],
		"keywords": {"action_verbs": ["built"], "skill_categories": [], "achievement_classes": []},
		"patterns": {"email": "x", "phones": ["x"], "skills_headings": [{"heading": "x"}], "year_range": "x"},
		"limits": {},
		"market": {"salary_brackets": [{"min_years": 0, "low": 1, "high": 2}], "compatibility_multipliers": [{"min_score": 0, "factor": 1}]}
	}`

	err := schemas.ValidateJSONString(MustLoad(CatalogSchema), doc)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "roles.0.key", validationErr.Errors[0].Field)
}

func TestReportSchema_RejectsIncompleteReport(t *testing.T) {
	err := schemas.ValidateJSONString(MustLoad(ReportSchema), `{"report_id": "abc"}`)
	require.Error(t, err)

	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok)
}
