package scoring

import (
	"context"
	"math"
	"sort"

	"github.com/matchmyjd/engine/internal/types"
	"go.uber.org/zap"
)

// ScoreCategories applies the category-coverage policy: for every configured
// category, each distinct JD skill is matched against the resume skill with
// the highest blended signal, and coverage is weighted by the category weight.
// The overall score is 100 times the sum of category scores.
func (s *Scorer) ScoreCategories(ctx context.Context, jd *types.StructuredJD, resume *types.StructuredResume) *types.MatchResult {
	categories := make([]string, 0, len(s.params.CategoryWeights))
	for name := range s.params.CategoryWeights {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	results := make(map[string]types.CategoryResult, len(categories))
	total := 0.0
	for _, category := range categories {
		jdList := jd.CategoryList(category)
		resumeList := resume.CategoryList(category)
		if alias, ok := s.params.CategoryAliases[category]; ok && len(resumeList) == 0 {
			resumeList = resume.CategoryList(alias)
		}

		res := s.scoreCategory(ctx, category, jdList, resumeList)
		results[category] = res
		total += res.Score
	}

	overall := math.Round(total*100*100) / 100 // percentage, two decimals

	return &types.MatchResult{
		OverallScore: overall,
		Categories:   results,
	}
}

// scoreCategory scores one category's JD list against the resume list.
// Resume candidates are iterated in sorted order and must score strictly above
// the incumbent best, so ties resolve to the lexicographically smallest
// resume skill.
func (s *Scorer) scoreCategory(ctx context.Context, category string, jdList, resumeList []string) types.CategoryResult {
	norm := s.matcher.Normalizer()
	jdSet := norm.NormalizeList(jdList)
	resumeSet := norm.NormalizeList(resumeList)

	// Matching runs on normalized forms; reported skill names keep the
	// spelling of the document they came from.
	jdDisplay := norm.DisplayMap(jdList)
	resumeDisplay := norm.DisplayMap(resumeList)

	jdLookup := make(map[string]bool, len(jdSet))
	for _, skill := range jdSet {
		jdLookup[skill] = true
	}

	extra := make([]string, 0)
	for _, skill := range resumeSet {
		if !jdLookup[skill] {
			extra = append(extra, displayName(resumeDisplay, skill))
		}
	}

	matched := make([]string, 0, len(jdSet))
	missing := make([]string, 0)
	details := make(map[string]types.SkillDetail, len(jdSet))
	matchCount := 0

	for _, jdSkill := range jdSet {
		var bestDetail *types.SkillScore
		bestResume := ""
		bestScore := 0.0

		for _, resumeSkill := range resumeSet {
			sc := s.scoreSkill(ctx, jdSkill, resumeSkill)
			if sc.Combined > bestScore {
				bestScore = sc.Combined
				bestResume = resumeSkill
				detail := sc
				bestDetail = &detail
			}
		}

		if bestScore >= s.params.MatchThreshold {
			matched = append(matched, displayName(jdDisplay, jdSkill))
			matchCount++
		} else {
			missing = append(missing, displayName(jdDisplay, jdSkill))
		}

		details[jdSkill] = types.SkillDetail{
			MatchedWith: displayName(resumeDisplay, bestResume),
			Scores:      bestDetail,
		}
	}

	// An empty JD category is trivially covered: absence of a requirement
	// in a category never penalizes a candidate.
	coverage := 1.0
	if len(jdSet) > 0 {
		coverage = float64(matchCount) / float64(len(jdSet))
	}
	weighted := coverage * s.params.CategoryWeights[category]

	s.log.Debug("category coverage",
		zap.String("category", category),
		zap.Float64("coverage", coverage),
		zap.Float64("weighted_score", weighted))

	return types.CategoryResult{
		Coverage: coverage,
		Score:    weighted,
		Matched:  matched,
		Missing:  missing,
		Extra:    extra,
		Details:  details,
	}
}
