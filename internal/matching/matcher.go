// Package matching provides the pairwise matching signals used by the hybrid
// scorer: exact string equality, token-set overlap, and embedding similarity.
package matching

import (
	"github.com/matchmyjd/engine/internal/skills"
	"go.uber.org/zap"
)

// Matcher computes the deterministic (non-embedding) signals. It holds the
// normalizer and stopword set as read-only collaborators and is safe for
// concurrent use.
type Matcher struct {
	norm      *skills.Normalizer
	stopwords map[string]bool
	log       *zap.Logger
}

// NewMatcher creates a Matcher. A nil stopwords map falls back to
// DefaultStopwords; a nil logger disables tracing.
func NewMatcher(norm *skills.Normalizer, stopwords map[string]bool, log *zap.Logger) *Matcher {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{norm: norm, stopwords: stopwords, log: log}
}

// Normalizer exposes the matcher's normalizer so callers can normalize skill
// lists with the same synonym table the signals use.
func (m *Matcher) Normalizer() *skills.Normalizer {
	return m.norm
}

// DefaultStopwords returns the built-in stopword set stripped during
// fuzzy tokenization.
func DefaultStopwords() map[string]bool {
	return map[string]bool{
		"and":        true,
		"or":         true,
		"the":        true,
		"with":       true,
		"basic":      true,
		"knowledge":  true,
		"experience": true,
	}
}
