package scoring

import (
	"context"

	"github.com/matchmyjd/engine/internal/matching"
	"github.com/matchmyjd/engine/internal/types"
	"go.uber.org/zap"
)

// Scorer orchestrates the matching signals into the two scoring policies.
// All collaborators are read-only after construction, so a Scorer is safe for
// concurrent use; both policies are pure functions of their inputs.
type Scorer struct {
	matcher  *matching.Matcher
	semantic *matching.Semantic
	params   Params
	log      *zap.Logger
}

// NewScorer creates a Scorer. semantic may be nil, in which case the semantic
// signal of the category policy degrades to 0.0.
func NewScorer(matcher *matching.Matcher, semantic *matching.Semantic, params Params, log *zap.Logger) (*Scorer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{matcher: matcher, semantic: semantic, params: params, log: log}, nil
}

// scoreSkill blends the three signals for one JD skill against one resume skill.
func (s *Scorer) scoreSkill(ctx context.Context, jdSkill, resumeSkill string) types.SkillScore {
	exact := s.matcher.ExactScore(jdSkill, resumeSkill)
	fuzzy := s.matcher.FuzzyScore(jdSkill, resumeSkill)
	semantic := 0.0
	if s.semantic != nil {
		semantic = s.semantic.Score(ctx, jdSkill, resumeSkill)
	}

	combined := s.params.Signals.Exact*exact +
		s.params.Signals.Fuzzy*fuzzy +
		s.params.Signals.Semantic*semantic

	s.log.Debug("skill pair signals",
		zap.String("jd_skill", jdSkill),
		zap.String("resume_skill", resumeSkill),
		zap.Float64("exact", exact),
		zap.Float64("fuzzy", fuzzy),
		zap.Float64("semantic", semantic),
		zap.Float64("combined", combined))

	return types.SkillScore{Exact: exact, Fuzzy: fuzzy, Semantic: semantic, Combined: combined}
}

// displayName resolves a normalized skill back to the spelling the input
// document used, falling back to the normalized form for synthetic entries.
func displayName(display map[string]string, normalized string) string {
	if name, ok := display[normalized]; ok {
		return name
	}
	return normalized
}
