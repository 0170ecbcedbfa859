package matching

import (
	"testing"

	"github.com/matchmyjd/engine/internal/skills"
	"github.com/stretchr/testify/assert"
)

func newTestMatcher() *Matcher {
	norm := skills.NewNormalizer(skills.DefaultSynonyms(), nil)
	return NewMatcher(norm, nil, nil)
}

func TestExactScore_Reflexive(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 1.0, m.ExactScore("python", "python"))
	assert.Equal(t, 1.0, m.ExactScore("Machine Learning", "Machine Learning"))
}

func TestExactScore_NormalizedMatch(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 1.0, m.ExactScore("Python", "  python "))
	assert.Equal(t, 1.0, m.ExactScore("ML", "machine learning"))
	assert.Equal(t, 1.0, m.ExactScore("C++", "cpp"))
}

func TestExactScore_Mismatch(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 0.0, m.ExactScore("java", "javascript"))
	assert.Equal(t, 0.0, m.ExactScore("python", "sql"))
}

func TestExactScore_Symmetric(t *testing.T) {
	m := newTestMatcher()

	pairs := [][2]string{{"python", "py"}, {"go", "golang"}, {"sql", "nosql"}}
	for _, pair := range pairs {
		assert.Equal(t, m.ExactScore(pair[0], pair[1]), m.ExactScore(pair[1], pair[0]))
	}
}

func TestExactScore_EmptyInputDegradesToZero(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 0.0, m.ExactScore("", "python"))
	assert.Equal(t, 0.0, m.ExactScore("python", ""))
	assert.Equal(t, 0.0, m.ExactScore("", ""))
	assert.Equal(t, 0.0, m.ExactScore("!!!", "???"))
}
