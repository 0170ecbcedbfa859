package scoring

import (
	"context"
	"fmt"

	"github.com/matchmyjd/engine/internal/types"
	"golang.org/x/sync/errgroup"
)

// Policy selects which scoring policy a batch run applies.
type Policy string

const (
	// PolicyCategory is the generic category-coverage aggregator.
	PolicyCategory Policy = "category"
	// PolicyHybrid is the must-have/nice-to-have human-aligned aggregator.
	PolicyHybrid Policy = "hybrid"
)

// Pair is one JD/resume pair to score. SemanticScore carries a precomputed
// structured semantic score for the hybrid policy; nil means none was
// precomputed, so a genuine 0.0 is honored rather than recomputed. When nil
// and the scorer was built with a semantic matcher, the score is computed
// from the pair's own text groups.
type Pair struct {
	JD            *types.StructuredJD
	Resume        *types.StructuredResume
	SemanticScore *float64
}

// ScoreBatch scores many pairs concurrently. Scoring is embarrassingly
// parallel across pairs (no shared mutable state), so the only coordination
// is the concurrency limit. Results are returned in input order.
func (s *Scorer) ScoreBatch(ctx context.Context, pairs []Pair, policy Policy, concurrency int) ([]*types.MatchResult, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]*types.MatchResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			switch policy {
			case PolicyCategory:
				results[i] = s.ScoreCategories(ctx, pair.JD, pair.Resume)
			case PolicyHybrid:
				semanticScore := 0.0
				switch {
				case pair.SemanticScore != nil:
					semanticScore = *pair.SemanticScore
				case s.semantic != nil:
					semanticScore = s.semantic.MatchStructured(ctx, pair.JD, pair.Resume)
				}
				results[i] = s.ComputeHybridScore(pair.JD, pair.Resume, semanticScore)
			default:
				return fmt.Errorf("unknown scoring policy %q", policy)
			}
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
