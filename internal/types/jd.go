// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuredJD represents a structured job description produced by the upstream
// extraction step. All fields are read-only inputs; missing fields are treated
// as empty collections by the scorers.
type StructuredJD struct {
	MustHaveSkills     []string `json:"must_have_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	Responsibilities   []string `json:"responsibilities"`
	Seniority          string   `json:"seniority,omitempty"`
	HardSkills         []string `json:"hard_skills,omitempty"`
	SoftSkills         []string `json:"soft_skills,omitempty"`
	ToolsAndFrameworks []string `json:"tools_and_frameworks,omitempty"`
	Domains            []string `json:"domains,omitempty"`
}

// CategoryList returns the JD-side skill list for a category name,
// or nil when the category is unknown or absent.
func (jd *StructuredJD) CategoryList(category string) []string {
	if jd == nil {
		return nil
	}
	switch category {
	case "hard_skills":
		return jd.HardSkills
	case "soft_skills":
		return jd.SoftSkills
	case "tools_and_frameworks":
		return jd.ToolsAndFrameworks
	case "domains":
		return jd.Domains
	case "must_have_skills":
		return jd.MustHaveSkills
	case "nice_to_have_skills":
		return jd.NiceToHaveSkills
	default:
		return nil
	}
}

// SkillText returns must-have and nice-to-have skills as a single list.
// This is the JD skill-text group of the structured semantic score.
func (jd *StructuredJD) SkillText() []string {
	if jd == nil {
		return nil
	}
	out := make([]string, 0, len(jd.MustHaveSkills)+len(jd.NiceToHaveSkills))
	out = append(out, jd.MustHaveSkills...)
	out = append(out, jd.NiceToHaveSkills...)
	return out
}
