package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(DefaultSynonyms(), nil)
}

func TestClean_StripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "c++ go", Clean("C++ / Go!!"))
	assert.Equal(t, "node js", Clean("Node.js"))
	assert.Equal(t, "data structures algorithms", Clean("Data Structures & Algorithms"))
	assert.Equal(t, "", Clean("   \t  "))
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "machine learning", Clean("  Machine    Learning  "))
}

func TestNormalize_SynonymFold(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "machine learning", n.Normalize("ML"))
	assert.Equal(t, "machine learning", n.Normalize("machine-learning"))
	assert.Equal(t, "kubernetes", n.Normalize("K8s"))
	assert.Equal(t, "python", n.Normalize("Py"))
	assert.Equal(t, "data structures", n.Normalize("DSA"))
}

func TestNormalize_CanonicalKeyPassesThrough(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "machine learning", n.Normalize("Machine Learning"))
}

func TestNormalize_UnknownSkillPassesThroughCleaned(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "terraform", n.Normalize("Terraform"))
	assert.Equal(t, "react native", n.Normalize("React-Native"))
}

func TestNormalize_NoSubstringFalsePositives(t *testing.T) {
	n := newTestNormalizer()

	// "java" must never fold into "javascript": lookup is exact equality only.
	assert.Equal(t, "java", n.Normalize("Java"))
	assert.Equal(t, "javascript", n.Normalize("JS"))
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newTestNormalizer()

	inputs := []string{"ML", "Data Structures & Algorithms", "C++", "  Spark!! ", "k8s", ""}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeList_DedupAndDrop(t *testing.T) {
	n := newTestNormalizer()

	got := n.NormalizeList([]string{"ML", "machine learning", "  ", "", "Python", "py"})

	assert.Equal(t, []string{"machine learning", "python"}, got)
}

func TestNormalizeList_SortedOutput(t *testing.T) {
	n := newTestNormalizer()

	got := n.NormalizeList([]string{"zsh", "bash", "awk"})

	assert.Equal(t, []string{"awk", "bash", "zsh"}, got)
}

func TestDisplayMap_KeepsFirstOriginalCasing(t *testing.T) {
	n := newTestNormalizer()

	display := n.DisplayMap([]string{"Machine Learning", "ML", "Python"})

	assert.Equal(t, "Machine Learning", display["machine learning"])
	assert.Equal(t, "Python", display["python"])
}

func TestNewNormalizer_AliasConflictIsDeterministic(t *testing.T) {
	table := SynonymTable{
		"beta":  {"x"},
		"alpha": {"x"},
	}

	// Conflicting aliases resolve to the lexicographically first canonical key.
	n := NewNormalizer(table, nil)
	assert.Equal(t, "alpha", n.Normalize("x"))
}
