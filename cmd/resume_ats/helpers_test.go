package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testResume = `JANE DOE
jane.doe@example.com | (555) 123-4567 | github.com/janedoe

SUMMARY
Software engineer building backend services and developer tooling since 2018.

SKILLS
Python, Java, JavaScript, SQL, Git, Docker, Kubernetes, AWS, Linux, PostgreSQL, React, Node.js

EXPERIENCE
Senior Software Engineer and Team Lead, Acme Corp, 2018 - Present
- Led a team of 5 engineers and designed a microservice architecture for billing.
- Improved API latency by 40% and served 50,000 users across three regions.
- Implemented CI/CD pipelines with Docker and Kubernetes, reducing deploy time by 60%.
Software Engineer Intern, Initech, 2017 - 2018
- Developed internal dashboards using React and optimized SQL queries.

PROJECTS
- Built a deployment dashboard using React with live demo on GitHub
- Developed a Python API for analytics and improved query speed with caching

EDUCATION
Bachelor of Science in Computer Science, State University, GPA: 3.8
`

// writeFile creates a file with content in a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag of cmd and its children to its default so
// that package-level flag variables do not leak between executions
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// clearEnv unsets every RESUME_ATS_* variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RESUME", "ROLE", "YEAR", "CATALOG", "FORMAT", "OUT", "SUGGESTIONS", "SKIP_VALIDATION", "DEBUG", "JSON_LOGS"} {
		t.Setenv("RESUME_ATS_"+key, "")
		require.NoError(t, os.Unsetenv("RESUME_ATS_"+key))
	}
}

// executeCommand runs the root command in-process and captures its output
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
