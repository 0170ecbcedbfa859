package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_SplitsOnDelimiters(t *testing.T) {
	m := newTestMatcher()

	tokens := m.Tokenize("data-pipelines/etl_jobs, streaming")

	assert.Equal(t, map[string]bool{
		"data":      true,
		"pipelines": true,
		"etl":       true,
		"jobs":      true,
		"streaming": true,
	}, tokens)
}

func TestTokenize_DropsStopwords(t *testing.T) {
	m := newTestMatcher()

	tokens := m.Tokenize("experience with Python and SQL")

	assert.Equal(t, map[string]bool{"python": true, "sql": true}, tokens)
}

func TestTokenize_DuplicatesCollapse(t *testing.T) {
	m := newTestMatcher()

	tokens := m.Tokenize("go go go")

	assert.Equal(t, map[string]bool{"go": true}, tokens)
}

func TestFuzzyScore_SelfIsOne(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 1.0, m.FuzzyScore("software engineering", "software engineering"))
}

func TestFuzzyScore_PartialOverlap(t *testing.T) {
	m := newTestMatcher()

	// {software, engineering} vs {software, engineer}: intersection 1, union 3.
	// No stemming: "engineer" and "engineering" are distinct tokens.
	assert.InDelta(t, 1.0/3.0, m.FuzzyScore("software engineering", "software engineer"), 1e-9)
}

func TestFuzzyScore_DisjointIsZero(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 0.0, m.FuzzyScore("rust embedded", "marketing analytics"))
}

func TestFuzzyScore_Symmetric(t *testing.T) {
	m := newTestMatcher()

	a, b := "big data pipelines", "data pipelines"
	assert.Equal(t, m.FuzzyScore(a, b), m.FuzzyScore(b, a))
}

func TestFuzzyScore_Bounded(t *testing.T) {
	m := newTestMatcher()

	pairs := [][2]string{
		{"python scripting", "python development"},
		{"machine learning", "ml"},
		{"data structures", "data structure"},
	}
	for _, pair := range pairs {
		score := m.FuzzyScore(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestFuzzyScore_EmptyTokenSetIsZero(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 0.0, m.FuzzyScore("", "python"))
	assert.Equal(t, 0.0, m.FuzzyScore("and with the", "python"))
}
