package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_ToJSON(t *testing.T) {
	metadata := &Metadata{
		Source:    "resume.txt",
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		WordCount: 420,
		CharCount: 2600,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
	assert.Contains(t, string(jsonBytes), `"word_count": 420`)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	metadata := NewMetadata("Go engineer, résumé", "cv.txt")

	assert.Equal(t, "cv.txt", metadata.Source)
	assert.Equal(t, computeHash("Go engineer, résumé"), metadata.Hash)
	assert.Equal(t, 3, metadata.WordCount)
	assert.Equal(t, 19, metadata.CharCount)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_EmptySource(t *testing.T) {
	metadata := NewMetadata("", "")

	assert.Empty(t, metadata.Source)
	assert.Zero(t, metadata.WordCount)
	assert.NotEmpty(t, metadata.Hash)
}
