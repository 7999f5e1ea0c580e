package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/types"
	sch "github.com/jonathan/resume-ats/schemas"
)

func TestAnalyze_JSONOutput(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	stdout, _, err := executeCommand(t, "analyze", "-r", resume, "--role", "data scientist", "--year", "2024", "-f", "json")
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "data scientist", report.TargetRole)
	assert.Equal(t, 2024, report.CurrentYear)
	assert.Equal(t, 100, report.Score.Max)
	require.NotNil(t, report.JobAnalysis)
	assert.NotEmpty(t, report.JobAnalysis.RoleSuggestions)

	assert.NoError(t, schemas.ValidateJSONString(sch.MustLoad(sch.ReportSchema), stdout))
}

func TestAnalyze_TextOutput(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	stdout, _, err := executeCommand(t, "analyze", "-r", resume, "--year", "2024")
	require.NoError(t, err)

	assert.Contains(t, stdout, "ATS SCORE")
	assert.Contains(t, stdout, "SCORE BREAKDOWN")
	assert.Contains(t, stdout, "ROLE MATCHES")
	assert.Contains(t, stdout, "JOB MARKET READINESS")
}

func TestAnalyze_OutFile(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)
	out := filepath.Join(t.TempDir(), "reports", "report.json")

	stdout, _, err := executeCommand(t, "analyze", "-r", resume, "--year", "2024", "-f", "json", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateJSONString(sch.MustLoad(sch.ReportSchema), string(content)))
}

func TestAnalyze_Deterministic(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	first, _, err := executeCommand(t, "analyze", "-r", resume, "--year", "2024", "-f", "json")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "analyze", "-r", resume, "--year", "2024", "-f", "json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_MissingResume(t *testing.T) {
	clearEnv(t)

	_, _, err := executeCommand(t, "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a résumé is required")
}

func TestAnalyze_ResumeNotFound(t *testing.T) {
	clearEnv(t)

	_, _, err := executeCommand(t, "analyze", "-r", "/nonexistent/resume.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestAnalyze_NotAResume(t *testing.T) {
	clearEnv(t)
	notes := writeFile(t, "notes.txt", "Grocery list: apples, bread, milk.")

	_, _, err := executeCommand(t, "analyze", "-r", notes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a résumé")

	_, _, err = executeCommand(t, "analyze", "-r", notes, "--skip-validation", "-f", "json")
	assert.NoError(t, err)
}

func TestAnalyze_InvalidFormat(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	_, _, err := executeCommand(t, "analyze", "-r", resume, "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestAnalyze_ConfigFile(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)
	cfg := writeFile(t, "config.yaml", "resume: "+resume+"\nrole: devops engineer\nyear: 2024\nformat: json\n")

	stdout, _, err := executeCommand(t, "analyze", "--config", cfg)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "devops engineer", report.TargetRole)
}

func TestAnalyze_FlagsOverrideConfig(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)
	cfg := writeFile(t, "config.json", `{"resume": "`+resume+`", "format": "json"}`)

	stdout, _, err := executeCommand(t, "analyze", "-c", cfg, "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ATS SCORE")
}

func TestAnalyze_FalseFlagOverridesConfig(t *testing.T) {
	clearEnv(t)
	notes := writeFile(t, "notes.txt", "Grocery list: apples, bread, milk.")
	cfg := writeFile(t, "config.yaml", "resume: "+notes+"\nskip_validation: true\nformat: json\n")

	_, _, err := executeCommand(t, "analyze", "-c", cfg)
	require.NoError(t, err)

	_, _, err = executeCommand(t, "analyze", "-c", cfg, "--skip-validation=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a résumé")
}

func TestAnalyze_EnvironmentConfig(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)
	t.Setenv("RESUME_ATS_RESUME", resume)
	t.Setenv("RESUME_ATS_FORMAT", "json")
	t.Setenv("RESUME_ATS_ROLE", "ai engineer")

	stdout, _, err := executeCommand(t, "analyze")
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "ai engineer", report.TargetRole)
}

func TestAnalyze_Interactive(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	original := selectRole
	t.Cleanup(func() { selectRole = original })
	selectRole = func(cat *catalog.Catalog) (string, error) {
		return cat.Roles()[2].Key, nil
	}

	stdout, _, err := executeCommand(t, "analyze", "-r", resume, "-i", "-f", "json")
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "ai_engineer", report.TargetRole)

	flagged := false
	for _, s := range report.JobAnalysis.RoleSuggestions {
		flagged = flagged || (s.IsTarget && s.RoleKey == "ai_engineer")
	}
	assert.True(t, flagged)
}

func TestAnalyze_DebugLogsPipelineProgress(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	_, stderr, err := executeCommand(t, "analyze", "-r", resume, "-f", "json", "--debug", "--json-logs", "--skip-validation")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"step":"extract_facts"`)
	assert.Contains(t, stderr, `"next":["analyze_findings","match_roles","score"]`)
	assert.Contains(t, stderr, `"msg":"running without optional steps"`)
	assert.Contains(t, stderr, `"skipped":["validate_content"]`)
	assert.Contains(t, stderr, `"msg":"analysis complete"`)
}

func TestAnalyze_InfoLogsByDefault(t *testing.T) {
	clearEnv(t)
	resume := writeFile(t, "resume.txt", testResume)

	_, stderr, err := executeCommand(t, "analyze", "-r", resume, "-f", "json")
	require.NoError(t, err)

	assert.Contains(t, stderr, "analysis complete")
	assert.NotContains(t, stderr, "extract_facts")
}
