package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	result := CleanText("# Jane Doe\n  ## Experience\nBackend engineer")

	assert.Contains(t, result, "# Jane Doe")
	assert.Contains(t, result, "\n## Experience\n")
	assert.Contains(t, result, "Backend engineer")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	result := CleanText("- Built APIs\n- Led team\n* Shipped   v2\n• Reduced cost")

	assert.Contains(t, result, "- Built APIs")
	assert.Contains(t, result, "- Led team")
	assert.Contains(t, result, "* Shipped   v2")
	assert.Contains(t, result, "• Reduced cost")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Python,    Java,\tSQL")

	assert.Equal(t, "Python, Java, SQL", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("SKILLS\n\n\n\n\nEXPERIENCE")

	assert.Equal(t, "SKILLS\n\nEXPERIENCE", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"

	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	result := CleanText("José   Müller 🚀 résumé")

	assert.Equal(t, "José Müller 🚀 résumé", result)
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	result := CleanText("EXPERIENCE\n    Acme   Corp\n  - Built tools")

	assert.Contains(t, result, "\n    Acme Corp\n")
	assert.Contains(t, result, "  - Built tools")
}

func TestIngestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("Jane Doe\r\n\r\nSKILLS:   Go, SQL"), 0644))

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n\nSKILLS: Go, SQL", cleanedText)
	require.NotNil(t, metadata)
	assert.Equal(t, testFile, metadata.Source)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, 5, metadata.WordCount)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/resume.txt")

	require.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIngestFromFile_HashStableAcrossReads(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Content 2"), 0644))

	_, m1, err := IngestFromFile(a)
	require.NoError(t, err)
	_, m2, err := IngestFromFile(a)
	require.NoError(t, err)
	_, m3, err := IngestFromFile(b)
	require.NoError(t, err)

	assert.Equal(t, m1.Hash, m2.Hash)
	assert.NotEqual(t, m1.Hash, m3.Hash)
}

func TestWriteOutput_CreatesFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	meta := NewMetadata("cleaned text", "resume.txt")

	require.NoError(t, WriteOutput(outDir, "cleaned text", meta))

	text, err := os.ReadFile(filepath.Join(outDir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cleaned text", string(text))

	raw, err := os.ReadFile(filepath.Join(outDir, "resume.meta.json"))
	require.NoError(t, err)
	var got Metadata
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, meta.Hash, got.Hash)
	assert.Equal(t, 2, got.WordCount)
}
