package main

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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJD_PlainJSON(t *testing.T) {
	path := writeTempFile(t, "jd.json", `{"must_have_skills": ["python"], "seniority": "mid"}`)

	jd, err := loadJD(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, jd.MustHaveSkills)
	assert.Equal(t, "mid", jd.Seniority)
}

func TestLoadJD_RawModelOutputDecodesDirectly(t *testing.T) {
	matchFromRaw = true
	defer func() { matchFromRaw = false }()

	// Fenced and truncated model output: recovery repairs the missing brace.
	path := writeTempFile(t, "jd.txt",
		"```json\n{\"must_have_skills\": [\"python\"], \"seniority\": \"mid\"\n```")

	jd, err := loadJD(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, jd.MustHaveSkills)
	assert.Equal(t, "mid", jd.Seniority)
}

func TestLoadResume_RawModelOutput(t *testing.T) {
	matchFromRaw = true
	defer func() { matchFromRaw = false }()

	path := writeTempFile(t, "resume.txt",
		"Here you go:\n{\"tools\": [\"docker\"], \"projects\": [\"etl pipeline\"]}")

	resume, err := loadResume(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"docker"}, resume.Tools)
	assert.Equal(t, []string{"etl pipeline"}, resume.Projects)
}

func TestLoadResume_SchemaRejectsWrongShape(t *testing.T) {
	path := writeTempFile(t, "resume.json", `{"tools": "docker"}`)

	_, err := loadResume(path)
	assert.Error(t, err)
}

func TestLoadJD_MissingFileFails(t *testing.T) {
	_, err := loadJD(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
