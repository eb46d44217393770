package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Overall score blend weights.
const (
	blendATSWeight          = 0.30
	blendContentWeight      = 0.25
	blendCompletenessWeight = 0.25
	blendStructureWeight    = 0.20
)

// Content sub-score components.
const (
	contentQuantifiedPoints = 40
	contentActionVerbPoints = 30
	contentSummaryPoints    = 30

	// adequateSummaryLength is the minimum summary length, in characters,
	// considered a real overview rather than a placeholder.
	adequateSummaryLength = 50
)

// Structure sub-score components.
const (
	structureExperiencePoints = 40
	structureSkillsPoints     = 30
	structureEducationPoints  = 30
)

// Recommendation bucket sizes.
const (
	immediateBucketSize = 3
	shortTermBucketSize = 5
)

// advancedTips is the fixed advanced-recommendations list every review gets.
var advancedTips = []string{
	"Tailor section keywords to each job description before applying",
	"Add a projects or certifications section for extra signal",
	"Keep the resume to a single page unless you have 10+ years of experience",
	"Use consistent verb tense across all bullet points",
}

// Review runs the rule-based critic over the resume and produces strengths,
// suggestions, critical issues, an overall score and prioritized
// recommendations. Like every function in this package it is total: an empty
// resume produces a low score and a long issue list, never an error.
func Review(r *types.Resume) types.Review {
	quantified := 0
	actionVerbs := 0
	if r != nil {
		for _, sec := range r.Sections {
			for _, pt := range sec.Points {
				if IsQuantified(pt.Text) {
					quantified++
				}
				if StartsWithActionVerb(pt.Text) {
					actionVerbs++
				}
			}
		}
	}

	review := types.Review{
		Strengths:      collectStrengths(r, quantified, actionVerbs),
		Suggestions:    collectSuggestions(r, quantified, actionVerbs),
		CriticalIssues: collectCriticalIssues(r),
	}
	review.OverallScore = overallScore(r, quantified, actionVerbs)
	review.Recommendations = buildRecommendations(review.CriticalIssues, review.Suggestions)
	return review
}

func overallScore(r *types.Resume, quantified, actionVerbs int) int {
	content := 0
	if quantified > 0 {
		content += contentQuantifiedPoints
	}
	if actionVerbs > 0 {
		content += contentActionVerbPoints
	}
	if hasAdequateSummary(r) {
		content += contentSummaryPoints
	}

	structure := 0
	if hasSectionWithContent(r, keywordExperience) {
		structure += structureExperiencePoints
	}
	if hasSectionWithContent(r, keywordSkill) {
		structure += structureSkillsPoints
	}
	if hasSectionWithContent(r, keywordEducation) {
		structure += structureEducationPoints
	}

	blended := blendATSWeight*float64(ATSScore(r)) +
		blendContentWeight*float64(content) +
		blendCompletenessWeight*float64(CompletenessScore(r)) +
		blendStructureWeight*float64(structure)
	return int(math.Round(blended))
}

func hasAdequateSummary(r *types.Resume) bool {
	return r != nil && len(strings.TrimSpace(r.PersonalInfo.Summary)) >= adequateSummaryLength
}

func collectStrengths(r *types.Resume, quantified, actionVerbs int) []string {
	strengths := []string{}
	if quantified > 0 {
		strengths = append(strengths,
			fmt.Sprintf("Quantified achievements appear in %d bullet point(s)", quantified))
	}
	if actionVerbs > 0 {
		strengths = append(strengths,
			fmt.Sprintf("%d bullet point(s) open with strong action verbs", actionVerbs))
	}
	if hasAdequateSummary(r) {
		strengths = append(strengths, "Professional summary gives a solid overview")
	}
	if totalBullets(r) >= atsBulletTierTwo {
		strengths = append(strengths, "Sections carry a rich level of detail")
	}
	return strengths
}

func collectCriticalIssues(r *types.Resume) []string {
	issues := []string{}
	if !hasSectionWithContent(r, keywordExperience) {
		issues = append(issues, "Missing Experience/Work History section")
	}
	if !hasSectionWithContent(r, keywordSkill) {
		issues = append(issues, "Missing Skills section")
	}
	if !hasSectionWithContent(r, keywordEducation) {
		issues = append(issues, "Missing Education section")
	}
	if r == nil || strings.TrimSpace(r.PersonalInfo.Email) == "" {
		issues = append(issues, "No email address provided")
	}
	if r != nil && r.Settings.FontSize > 0 && r.Settings.FontSize < 10 {
		issues = append(issues,
			fmt.Sprintf("Font size %d is too small for comfortable reading", r.Settings.FontSize))
	}
	return issues
}

func collectSuggestions(r *types.Resume, quantified, actionVerbs int) []string {
	suggestions := []string{}
	if quantified == 0 {
		suggestions = append(suggestions,
			"Add measurable results (percentages, amounts, counts) to your bullet points")
	}
	bullets := totalBullets(r)
	if actionVerbs < bullets {
		suggestions = append(suggestions,
			"Start more bullet points with strong action verbs like led, built or improved")
	}
	if !hasAdequateSummary(r) {
		suggestions = append(suggestions,
			"Expand your professional summary into a few full sentences")
	}
	if bullets < atsBulletTierOne {
		suggestions = append(suggestions,
			"Add more achievement bullet points across your sections")
	}
	if r == nil || strings.TrimSpace(r.PersonalInfo.Location) == "" {
		suggestions = append(suggestions, "Add your location to the contact details")
	}
	if r != nil && r.Settings.FontSize > 14 {
		suggestions = append(suggestions, "Reduce the font size toward the 11-12pt range")
	}
	if r != nil && (r.Settings.Spacing < 1.2 || r.Settings.Spacing > 1.8) {
		suggestions = append(suggestions, "Adjust line spacing toward 1.4-1.6 for readability")
	}
	return suggestions
}

// buildRecommendations splits review output into prioritized buckets: the
// first 3 critical issues, the first 5 suggestions, and the fixed advanced
// tips list.
func buildRecommendations(critical, suggestions []string) types.Recommendations {
	rec := types.Recommendations{
		Immediate: firstN(critical, immediateBucketSize),
		ShortTerm: firstN(suggestions, shortTermBucketSize),
		Advanced:  append([]string{}, advancedTips...),
	}
	return rec
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
