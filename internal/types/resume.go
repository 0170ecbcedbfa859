// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"
)

// StructuredResume represents a structured resume produced by the upstream
// extraction step. SkillsWithEvidence maps a claimed skill name to the evidence
// snippets that substantiate it; a skill may have no evidence at all.
type StructuredResume struct {
	SkillsWithEvidence   map[string][]string `json:"skills_with_evidence"`
	Projects             []string            `json:"projects"`
	Tools                []string            `json:"tools"`
	TechnicalSkills      []string            `json:"technical_skills,omitempty"`
	ProgrammingLanguages []string            `json:"programming_languages,omitempty"`
	Domains              []string            `json:"domains,omitempty"`
}

// CategoryList returns the resume-side skill list for a category name,
// or nil when the category is unknown or absent.
func (r *StructuredResume) CategoryList(category string) []string {
	if r == nil {
		return nil
	}
	switch category {
	case "technical_skills":
		return r.TechnicalSkills
	case "programming_languages":
		return r.ProgrammingLanguages
	case "tools":
		return r.Tools
	case "domains":
		return r.Domains
	case "skills":
		return r.SkillNames()
	default:
		return nil
	}
}

// SkillNames returns the claimed skill names from the evidence mapping,
// sorted for deterministic iteration.
func (r *StructuredResume) SkillNames() []string {
	if r == nil || len(r.SkillsWithEvidence) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.SkillsWithEvidence))
	for name := range r.SkillsWithEvidence {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SkillPool returns the raw candidate pool for must-have matching:
// claimed skill names plus declared tools.
func (r *StructuredResume) SkillPool() []string {
	if r == nil {
		return nil
	}
	pool := r.SkillNames()
	return append(pool, r.Tools...)
}

// EvidenceText flattens the evidence mapping into "skill: evidence" strings.
// Skills without evidence pass through as bare skill names.
func (r *StructuredResume) EvidenceText() []string {
	if r == nil || len(r.SkillsWithEvidence) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.SkillsWithEvidence))
	for _, name := range r.SkillNames() {
		snippets := r.SkillsWithEvidence[name]
		if len(snippets) == 0 {
			out = append(out, name)
			continue
		}
		for _, snippet := range snippets {
			out = append(out, fmt.Sprintf("%s: %s", name, snippet))
		}
	}
	return out
}

// StrongEvidenceCount returns how many claimed skills carry at least
// minSnippets evidence snippets.
func (r *StructuredResume) StrongEvidenceCount(minSnippets int) int {
	if r == nil {
		return 0
	}
	count := 0
	for _, snippets := range r.SkillsWithEvidence {
		if len(snippets) >= minSnippets {
			count++
		}
	}
	return count
}

// HasEvidence reports whether any claimed skill carries at least one
// evidence snippet.
func (r *StructuredResume) HasEvidence() bool {
	if r == nil {
		return false
	}
	for _, snippets := range r.SkillsWithEvidence {
		if len(snippets) > 0 {
			return true
		}
	}
	return false
}
