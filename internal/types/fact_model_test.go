package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactModel_EmptyCollectionsSerialize(t *testing.T) {
	data, err := json.Marshal(NewFactModel())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Nil(t, raw["email"])
	assert.Nil(t, raw["gpa_value"])
	assert.Equal(t, []interface{}{}, raw["individual_skills"])
	assert.Equal(t, []interface{}{}, raw["phone_numbers"])
	assert.Equal(t, map[string]interface{}{}, raw["skill_categories"])
	assert.Equal(t, map[string]interface{}{}, raw["technical_categories"])
}

func TestFactModel_HasEmailAndPhone(t *testing.T) {
	f := NewFactModel()
	assert.False(t, f.HasEmail())
	assert.False(t, f.HasPhone())

	empty := ""
	f.Email = &empty
	assert.False(t, f.HasEmail())

	email := "jane@example.com"
	phone := "555-123-4567"
	f.Email = &email
	f.Phone = &phone
	assert.True(t, f.HasEmail())
	assert.True(t, f.HasPhone())
}

func TestFactModel_NonEmptySkillCategories(t *testing.T) {
	f := NewFactModel()
	assert.Empty(t, f.NonEmptySkillCategories())

	f.SkillCategories[SkillMethodologies] = []string{"agile"}
	f.SkillCategories[SkillDatabases] = []string{}
	f.SkillCategories[SkillProgrammingLanguages] = []string{"python", "go"}

	assert.Equal(t, []string{SkillProgrammingLanguages, SkillMethodologies}, f.NonEmptySkillCategories())
}
