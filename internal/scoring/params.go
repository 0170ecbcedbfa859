// Package scoring implements the two hybrid scoring policies over the shared
// matching signals: a generic category-coverage aggregator and a must-have/
// nice-to-have human-aligned aggregator.
package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SignalWeights blends the per-pair signals into one combined score.
type SignalWeights struct {
	Exact    float64 `json:"exact" validate:"gte=0,lte=1"`
	Fuzzy    float64 `json:"fuzzy" validate:"gte=0,lte=1"`
	Semantic float64 `json:"semantic" validate:"gte=0,lte=1"`
}

// EvidenceTier maps a strong-evidence skill count to a score multiplier.
type EvidenceTier struct {
	MinSkills  int     `json:"min_skills" validate:"gte=0"`
	Multiplier float64 `json:"multiplier" validate:"gte=1"`
}

// Params holds every tunable constant of both policies. The 0.5 match
// threshold, the 35-100 clamp, and the 0.35 semantic floor are product
// constants carried over from the original scoring behavior; they live here
// rather than as literals at use sites so they can be revisited.
type Params struct {
	Signals        SignalWeights `json:"signals"`
	MatchThreshold float64       `json:"match_threshold" validate:"gte=0,lte=1"`

	// Category-coverage policy
	CategoryWeights map[string]float64 `json:"category_weights"`
	CategoryAliases map[string]string  `json:"category_aliases"`

	// Must-have/nice-to-have policy
	MustHaveWeight    float64        `json:"must_have_weight" validate:"gte=0,lte=1"`
	SemanticWeight    float64        `json:"semantic_weight" validate:"gte=0,lte=1"`
	Baseline          float64        `json:"baseline" validate:"gte=0,lte=1"`
	NiceBonusPerMatch float64        `json:"nice_bonus_per_match" validate:"gte=0,lte=1"`
	NiceBonusCap      float64        `json:"nice_bonus_cap" validate:"gte=0,lte=1"`
	SemanticFloor     float64        `json:"semantic_floor" validate:"gte=0,lte=1"`
	StrongEvidenceMin int            `json:"strong_evidence_min" validate:"gte=1"`
	EvidenceTiers     []EvidenceTier `json:"evidence_tiers" validate:"dive"`
	SemanticStrength  float64        `json:"semantic_strength" validate:"gte=0,lte=1"`
	ScoreFloor        int            `json:"score_floor" validate:"gte=0,lte=100"`
	ScoreCeiling      int            `json:"score_ceiling" validate:"gte=0,lte=100"`
}

// DefaultParams returns the product defaults.
func DefaultParams() Params {
	return Params{
		Signals:        SignalWeights{Exact: 0.5, Fuzzy: 0.3, Semantic: 0.2},
		MatchThreshold: 0.5,
		CategoryWeights: map[string]float64{
			"hard_skills":          0.40,
			"soft_skills":          0.15,
			"tools_and_frameworks": 0.30,
			"domains":              0.15,
		},
		CategoryAliases: map[string]string{
			"hard_skills":          "technical_skills",
			"tools_and_frameworks": "tools",
		},
		MustHaveWeight:    0.55,
		SemanticWeight:    0.30,
		Baseline:          0.15,
		NiceBonusPerMatch: 0.05,
		NiceBonusCap:      0.15,
		SemanticFloor:     0.35,
		StrongEvidenceMin: 2,
		EvidenceTiers: []EvidenceTier{
			{MinSkills: 4, Multiplier: 1.12},
			{MinSkills: 2, Multiplier: 1.07},
		},
		SemanticStrength: 0.6,
		ScoreFloor:       35,
		ScoreCeiling:     100,
	}
}

// Validate checks all numeric ranges. Category weights are not required to sum
// to 1; when they do, the overall score ceiling of the category policy is 100.
func (p *Params) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid scoring params: %w", err)
	}
	for name, weight := range p.CategoryWeights {
		if weight < 0 {
			return fmt.Errorf("invalid scoring params: category %q has negative weight %v", name, weight)
		}
	}
	if p.ScoreFloor > p.ScoreCeiling {
		return fmt.Errorf("invalid scoring params: score floor %d above ceiling %d", p.ScoreFloor, p.ScoreCeiling)
	}
	return nil
}

// evidenceBoost returns the multiplier for a strong-evidence skill count,
// picking the highest tier whose minimum is met.
func (p *Params) evidenceBoost(strongSkills int) float64 {
	boost := 1.0
	for _, tier := range p.EvidenceTiers {
		if strongSkills >= tier.MinSkills && tier.Multiplier > boost {
			boost = tier.Multiplier
		}
	}
	return boost
}
