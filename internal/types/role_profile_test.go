package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleProfile_KeywordCount(t *testing.T) {
	r := RoleProfile{
		Key:           "data_scientist",
		CoreSkills:    []string{"Python", "SQL", "Statistics"},
		Frameworks:    []string{"Pandas"},
		Methodologies: []string{"A/B Testing", "Experimentation"},
	}
	assert.Equal(t, 6, r.KeywordCount())
}

func TestRoleProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    RoleProfile
		wantErr bool
	}{
		{
			name: "valid",
			role: RoleProfile{Key: "ai_engineer", CoreSkills: []string{"Python"}},
		},
		{
			name:    "missing key",
			role:    RoleProfile{CoreSkills: []string{"Python"}},
			wantErr: true,
		},
		{
			name:    "upper case key",
			role:    RoleProfile{Key: "AI_Engineer", CoreSkills: []string{"Python"}},
			wantErr: true,
		},
		{
			name:    "no core skills",
			role:    RoleProfile{Key: "ai_engineer"},
			wantErr: true,
		},
		{
			name:    "empty framework entry",
			role:    RoleProfile{Key: "ai_engineer", CoreSkills: []string{"Python"}, Frameworks: []string{""}},
			wantErr: true,
		},
		{
			name: "short career ladder",
			role: RoleProfile{
				Key:           "ai_engineer",
				CoreSkills:    []string{"Python"},
				RoleNarrative: RoleNarrative{CareerLadder: &CareerLadder{Stages: []string{"Junior", "Senior"}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
