// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillScore is the per-pair signal breakdown for one JD skill against one
// resume skill.
type SkillScore struct {
	Exact    float64 `json:"exact"`
	Fuzzy    float64 `json:"fuzzy"`
	Semantic float64 `json:"semantic"`
	Combined float64 `json:"combined"`
}

// SkillDetail records the best resume-side match found for a JD skill.
type SkillDetail struct {
	MatchedWith string      `json:"matched_with,omitempty"`
	Scores      *SkillScore `json:"scores,omitempty"`
}

// CategoryResult is the per-category outcome of the category-coverage policy.
type CategoryResult struct {
	Coverage float64                `json:"coverage"`
	Score    float64                `json:"score"`
	Matched  []string               `json:"matched"`
	Missing  []string               `json:"missing"`
	Extra    []string               `json:"extra"`
	Details  map[string]SkillDetail `json:"details"`
}

// MustHaveBreakdown is the must-have/nice-to-have outcome of the
// human-aligned policy.
type MustHaveBreakdown struct {
	Coverage          float64  `json:"coverage"`
	Matched           []string `json:"matched"`
	Missing           []string `json:"missing"`
	NiceToHaveMatched []string `json:"nice_to_have_matched"`
	NiceBonus         float64  `json:"nice_bonus"`
	EvidenceBoost     float64  `json:"evidence_boost"`
	SemanticScore     float64  `json:"semantic_score"`
}

// MatchResult is the final scoring output. Exactly one of Categories or
// MustHave is populated, depending on the policy that produced it.
// The value is never mutated once returned.
type MatchResult struct {
	OverallScore float64                   `json:"overall_score"`
	Categories   map[string]CategoryResult `json:"categories,omitempty"`
	MustHave     *MustHaveBreakdown        `json:"must_have,omitempty"`
	Strengths    []string                  `json:"strengths,omitempty"`
	Gaps         []string                  `json:"gaps,omitempty"`
	Suggestions  []string                  `json:"suggestions,omitempty"`
}
