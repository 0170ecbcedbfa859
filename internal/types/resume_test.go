package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillNames_SortedAndComplete(t *testing.T) {
	resume := &StructuredResume{
		SkillsWithEvidence: map[string][]string{
			"sql":    {"wrote queries"},
			"python": {"built an app"},
			"go":     nil,
		},
	}

	assert.Equal(t, []string{"go", "python", "sql"}, resume.SkillNames())
}

func TestSkillPool_IncludesTools(t *testing.T) {
	resume := &StructuredResume{
		SkillsWithEvidence: map[string][]string{"python": {"built an app"}},
		Tools:              []string{"docker", "git"},
	}

	assert.Equal(t, []string{"python", "docker", "git"}, resume.SkillPool())
}

func TestEvidenceText_FlattensWithSkillNames(t *testing.T) {
	resume := &StructuredResume{
		SkillsWithEvidence: map[string][]string{
			"python": {"built an app", "automated reports"},
			"sql":    nil,
		},
	}

	assert.Equal(t, []string{
		"python: built an app",
		"python: automated reports",
		"sql",
	}, resume.EvidenceText())
}

func TestStrongEvidenceCount(t *testing.T) {
	resume := &StructuredResume{
		SkillsWithEvidence: map[string][]string{
			"python": {"a", "b"},
			"sql":    {"a"},
			"go":     {"a", "b", "c"},
			"bash":   nil,
		},
	}

	assert.Equal(t, 2, resume.StrongEvidenceCount(2))
	assert.Equal(t, 1, resume.StrongEvidenceCount(3))
	assert.Equal(t, 3, resume.StrongEvidenceCount(1))
}

func TestHasEvidence(t *testing.T) {
	assert.False(t, (&StructuredResume{}).HasEvidence())
	assert.False(t, (&StructuredResume{
		SkillsWithEvidence: map[string][]string{"python": nil},
	}).HasEvidence())
	assert.True(t, (&StructuredResume{
		SkillsWithEvidence: map[string][]string{"python": {"built an app"}},
	}).HasEvidence())
}

func TestJDCategoryList(t *testing.T) {
	jd := &StructuredJD{
		HardSkills:         []string{"python"},
		ToolsAndFrameworks: []string{"docker"},
	}

	assert.Equal(t, []string{"python"}, jd.CategoryList("hard_skills"))
	assert.Equal(t, []string{"docker"}, jd.CategoryList("tools_and_frameworks"))
	assert.Nil(t, jd.CategoryList("certifications"))
}

func TestJDSkillText_ConcatenatesMustAndNice(t *testing.T) {
	jd := &StructuredJD{
		MustHaveSkills:   []string{"python", "sql"},
		NiceToHaveSkills: []string{"docker"},
	}

	assert.Equal(t, []string{"python", "sql", "docker"}, jd.SkillText())
}

func TestNilReceiversAreSafe(t *testing.T) {
	var jd *StructuredJD
	var resume *StructuredResume

	assert.Nil(t, jd.CategoryList("hard_skills"))
	assert.Nil(t, jd.SkillText())
	assert.Nil(t, resume.SkillNames())
	assert.Nil(t, resume.SkillPool())
	assert.Equal(t, 0, resume.StrongEvidenceCount(2))
	assert.False(t, resume.HasEvidence())
}
