package matching

import "go.uber.org/zap"

// ExactScore returns 1.0 when both strings normalize to the same skill token,
// 0.0 otherwise. Empty input degrades to 0.0 rather than erroring.
func (m *Matcher) ExactScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	na := m.norm.Normalize(a)
	nb := m.norm.Normalize(b)
	if na == "" || nb == "" {
		return 0.0
	}

	score := 0.0
	if na == nb {
		score = 1.0
	}

	m.log.Debug("exact signal", zap.String("a", na), zap.String("b", nb), zap.Float64("score", score))
	return score
}
