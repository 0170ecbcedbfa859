package matching

import (
	"context"
	"math"

	"github.com/matchmyjd/engine/internal/types"
	"go.uber.org/zap"
)

// Weights for the structured semantic score. Responsibility-to-project
// alignment dominates because raw keyword overlap is already covered by the
// exact and fuzzy signals.
const (
	responsibilityWeight = 0.65
	skillTextWeight      = 0.35
)

// EmbedFunc embeds a string into a fixed-dimension vector. The embedding model
// is an external collaborator; the engine imposes no retry or timeout policy
// on it.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// Semantic computes embedding-based similarity signals. A nil Semantic (or one
// built with a nil EmbedFunc) degrades every score to 0.0 instead of erroring.
type Semantic struct {
	embed EmbedFunc
	log   *zap.Logger
}

// NewSemantic creates a Semantic matcher around an embedding function.
func NewSemantic(embed EmbedFunc, log *zap.Logger) *Semantic {
	if log == nil {
		log = zap.NewNop()
	}
	return &Semantic{embed: embed, log: log}
}

// CosineSimilarity returns the cosine similarity of two vectors. A zero-norm
// vector (the failure fallback of embedding providers) scores 0.0 against
// anything, guarding the division.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score returns the clamped cosine similarity of two strings' embeddings.
// Embedding failures degrade to 0.0 so one bad string cannot abort a scoring run.
func (s *Semantic) Score(ctx context.Context, a, b string) float64 {
	return s.PairwiseMax(ctx, []string{a}, []string{b})
}

// PairwiseMax embeds every string in each group, computes cosine similarity
// for every cross-pair, and returns the maximum, clamped to [0, 1].
// Either group being empty yields 0.0.
func (s *Semantic) PairwiseMax(ctx context.Context, groupA, groupB []string) float64 {
	if s == nil || s.embed == nil || len(groupA) == 0 || len(groupB) == 0 {
		return 0.0
	}

	cache := make(map[string][]float32)
	vecsA := s.embedGroup(ctx, groupA, cache)
	vecsB := s.embedGroup(ctx, groupB, cache)

	best := 0.0
	for _, va := range vecsA {
		for _, vb := range vecsB {
			if sim := CosineSimilarity(va, vb); sim > best {
				best = sim
			}
		}
	}
	return clamp01(best)
}

// MatchStructured produces the single structured semantic score for a JD and
// resume pair: responsibilities against project/evidence text, blended with JD
// skill text against resume skill and tool names.
func (s *Semantic) MatchStructured(ctx context.Context, jd *types.StructuredJD, resume *types.StructuredResume) float64 {
	if s == nil || s.embed == nil || jd == nil || resume == nil {
		return 0.0
	}

	responsibilities := jd.Responsibilities
	jdSkillText := jd.SkillText()

	projectText := append(append([]string{}, resume.Projects...), resume.EvidenceText()...)
	resumeSkillText := append(append([]string{}, resume.SkillNames()...), resume.Tools...)

	s1 := s.PairwiseMax(ctx, responsibilities, projectText)
	s2 := s.PairwiseMax(ctx, jdSkillText, resumeSkillText)

	score := clamp01(responsibilityWeight*s1 + skillTextWeight*s2)
	s.log.Debug("structured semantic score",
		zap.Float64("responsibility_alignment", s1),
		zap.Float64("skill_text_alignment", s2),
		zap.Float64("score", score))
	return score
}

// embedGroup embeds each string through the shared per-call cache so a string
// appearing in both groups is embedded once. Failed embeddings become nil
// vectors, which cosine scores as 0.0.
func (s *Semantic) embedGroup(ctx context.Context, group []string, cache map[string][]float32) [][]float32 {
	vecs := make([][]float32, 0, len(group))
	for _, text := range group {
		if vec, ok := cache[text]; ok {
			vecs = append(vecs, vec)
			continue
		}
		vec, err := s.embed(ctx, text)
		if err != nil {
			s.log.Debug("embedding failed", zap.String("text", text), zap.Error(err))
			vec = nil
		}
		cache[text] = vec
		vecs = append(vecs, vec)
	}
	return vecs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
