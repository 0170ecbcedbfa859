package scoring

import (
	"fmt"
	"math"

	"github.com/matchmyjd/engine/internal/types"
	"go.uber.org/zap"
)

// ComputeHybridScore applies the must-have/nice-to-have human-aligned policy.
// semanticScore is the externally computed structured semantic score (see
// matching.Semantic.MatchStructured); the policy itself is a pure function and
// never embeds anything. The returned score is clamped to the configured
// floor and ceiling; the floor is a product decision so human-facing output
// never shows a discouragingly low number.
func (s *Scorer) ComputeHybridScore(jd *types.StructuredJD, resume *types.StructuredResume, semanticScore float64) *types.MatchResult {
	norm := s.matcher.Normalizer()

	mustHaves := norm.NormalizeList(jd.MustHaveSkills)
	niceToHaves := norm.NormalizeList(jd.NiceToHaveSkills)

	// Matching runs on normalized forms; output keeps the JD's own spelling.
	display := norm.DisplayMap(append(append(
		make([]string, 0, len(jd.MustHaveSkills)+len(jd.NiceToHaveSkills)),
		jd.MustHaveSkills...), jd.NiceToHaveSkills...))

	pool := make(map[string]bool)
	for _, skill := range norm.NormalizeList(resume.SkillPool()) {
		pool[skill] = true
	}

	matched := make([]string, 0, len(mustHaves))
	missing := make([]string, 0)
	for _, skill := range mustHaves {
		if pool[skill] {
			matched = append(matched, displayName(display, skill))
		} else {
			missing = append(missing, displayName(display, skill))
		}
	}

	niceMatched := make([]string, 0, len(niceToHaves))
	for _, skill := range niceToHaves {
		if pool[skill] {
			niceMatched = append(niceMatched, displayName(display, skill))
		}
	}

	// No must-haves at all means the requirement is trivially satisfied.
	coverage := 1.0
	if len(mustHaves) > 0 {
		coverage = float64(len(matched)) / float64(len(mustHaves))
	}

	niceBonus := math.Min(s.params.NiceBonusCap, float64(len(niceMatched))*s.params.NiceBonusPerMatch)
	boost := s.params.evidenceBoost(resume.StrongEvidenceCount(s.params.StrongEvidenceMin))
	semanticFloor := math.Max(semanticScore, s.params.SemanticFloor)

	raw := s.params.MustHaveWeight*coverage +
		s.params.SemanticWeight*semanticFloor +
		s.params.Baseline +
		niceBonus
	raw *= boost

	final := clampScore(math.Round(raw*100), s.params.ScoreFloor, s.params.ScoreCeiling)

	strengths, gaps, suggestions := s.explain(matched, missing, semanticScore, resume.HasEvidence())

	s.log.Debug("hybrid score",
		zap.Float64("must_coverage", coverage),
		zap.Float64("nice_bonus", niceBonus),
		zap.Float64("evidence_boost", boost),
		zap.Float64("semantic_score", semanticScore),
		zap.Float64("raw", raw),
		zap.Float64("final", final))

	return &types.MatchResult{
		OverallScore: final,
		MustHave: &types.MustHaveBreakdown{
			Coverage:          coverage,
			Matched:           matched,
			Missing:           missing,
			NiceToHaveMatched: niceMatched,
			NiceBonus:         niceBonus,
			EvidenceBoost:     boost,
			SemanticScore:     semanticScore,
		},
		Strengths:   strengths,
		Gaps:        gaps,
		Suggestions: suggestions,
	}
}

// explain builds the human-readable strengths, gaps, and suggestions for the
// must-have/nice-to-have policy.
func (s *Scorer) explain(matched, missing []string, semanticScore float64, hasEvidence bool) (strengths, gaps, suggestions []string) {
	for _, skill := range matched {
		strengths = append(strengths, fmt.Sprintf("Has required skill: %s", skill))
	}
	for _, skill := range missing {
		gaps = append(gaps, fmt.Sprintf("Missing required skill: %s", skill))
		suggestions = append(suggestions, fmt.Sprintf("Build hands-on experience with %s", skill))
	}
	if semanticScore >= s.params.SemanticStrength {
		strengths = append(strengths, "Projects align well with the role's responsibilities")
	}
	if hasEvidence {
		strengths = append(strengths, "Skills are backed by concrete evidence")
	}
	return strengths, gaps, suggestions
}

func clampScore(v float64, floor, ceiling int) float64 {
	if v < float64(floor) {
		return float64(floor)
	}
	if v > float64(ceiling) {
		return float64(ceiling)
	}
	return v
}
