package matching

import (
	"strings"

	"github.com/matchmyjd/engine/internal/skills"
	"go.uber.org/zap"
)

// Tokenize cleans a string and splits it into a token set. Delimiters are
// spaces, hyphens, slashes, underscores, and commas; stopwords and empty
// tokens are dropped, and duplicates within one string collapse. No stemming
// is applied: "engineer" and "engineering" are distinct tokens.
func (m *Matcher) Tokenize(s string) map[string]bool {
	cleaned := skills.Clean(s)
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == '_' || r == ','
	})

	tokens := make(map[string]bool, len(fields))
	for _, tok := range fields {
		if tok == "" || m.stopwords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

// FuzzyScore returns the Jaccard index of the two strings' token sets,
// in [0, 1]. Either side tokenizing to the empty set yields 0.0, which also
// guards the division.
func (m *Matcher) FuzzyScore(a, b string) float64 {
	aTokens := m.Tokenize(a)
	bTokens := m.Tokenize(b)

	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range aTokens {
		if bTokens[tok] {
			intersection++
		}
	}
	union := len(aTokens) + len(bTokens) - intersection

	score := float64(intersection) / float64(union)
	m.log.Debug("fuzzy signal", zap.String("a", a), zap.String("b", b), zap.Float64("score", score))
	return score
}
