package types

import "time"

// Scores bundles the four quality signals computed from a resume.
type Scores struct {
	ATS          int    `json:"ats"`
	Completeness int    `json:"completeness"`
	FormatGrade  string `json:"format_grade"`
	Overall      int    `json:"overall"`
}

// Recommendations splits review output into prioritized action buckets.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	Advanced  []string `json:"advanced"`
}

// Review is the structured output of the rule-based resume critic.
type Review struct {
	Strengths       []string        `json:"strengths"`
	Suggestions     []string        `json:"suggestions"`
	CriticalIssues  []string        `json:"critical_issues"`
	OverallScore    int             `json:"overall_score"`
	Recommendations Recommendations `json:"recommendations"`
}

// ResumeSnapshot is the persisted form of a resume: the aggregate plus the
// scores that were current at save time and a timestamp. Each save overwrites
// the prior snapshot for the same identity.
type ResumeSnapshot struct {
	Resume  Resume    `json:"resume"`
	Scores  Scores    `json:"scores"`
	SavedAt time.Time `json:"saved_at"`
}
