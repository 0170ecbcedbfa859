package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"policy": "hybrid",
		"semantic_score": 0.7,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hybrid", cfg.Policy)
	assert.Equal(t, 0.7, cfg.SemanticScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"policy": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownPolicy(t *testing.T) {
	cfg := Config{Policy: "best-effort"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsOutOfRangeSemanticScore(t *testing.T) {
	cfg := Config{SemanticScore: 1.5}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsMissingFile(t *testing.T) {
	cfg := Config{JD: "/nonexistent/jd.json"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestLoadSynonyms_DefaultTable(t *testing.T) {
	table, err := LoadSynonyms("")
	require.NoError(t, err)
	assert.Contains(t, table, "machine learning")
}

func TestLoadSynonyms_CustomTable(t *testing.T) {
	path := writeTempFile(t, "synonyms.json", `{"golang": ["go lang"]}`)

	table, err := LoadSynonyms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go lang"}, table["golang"])
}
