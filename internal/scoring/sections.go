// Package scoring computes resume quality signals: ATS score, completeness
// score, format grade, and a rule-based structured review. Every function in
// this package is a pure, total function of the resume value. Missing or
// empty input scores zero for that term, nothing throws.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Section name keywords the scoring engine matches case-insensitively.
const (
	keywordExperience = "experience"
	keywordSkill      = "skill"
	keywordEducation  = "education"
)

// hasSectionWithContent reports whether the resume contains a section whose
// name contains the keyword (case-insensitive) and that has at least one
// bullet point with non-empty text.
func hasSectionWithContent(r *types.Resume, keyword string) bool {
	if r == nil {
		return false
	}
	for _, sec := range r.Sections {
		if !strings.Contains(strings.ToLower(sec.Name), keyword) {
			continue
		}
		for _, pt := range sec.Points {
			if strings.TrimSpace(pt.Text) != "" {
				return true
			}
		}
	}
	return false
}

// totalBullets counts bullet points with non-empty text across all sections.
func totalBullets(r *types.Resume) int {
	if r == nil {
		return 0
	}
	count := 0
	for _, sec := range r.Sections {
		for _, pt := range sec.Points {
			if strings.TrimSpace(pt.Text) != "" {
				count++
			}
		}
	}
	return count
}

// totalBulletWords counts words across all bullet text.
func totalBulletWords(r *types.Resume) int {
	if r == nil {
		return 0
	}
	words := 0
	for _, sec := range r.Sections {
		for _, pt := range sec.Points {
			words += len(strings.Fields(pt.Text))
		}
	}
	return words
}
