package scoring

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Font family tiers for the format grade. Sans-serif professional fonts rate
// highest with ATS parsers, classic serif fonts slightly lower, decorative
// and display fonts lowest. Matching is case-insensitive on the full family
// name with surrounding quotes and whitespace stripped.
var (
	fontTierSans = []string{
		"arial", "calibri", "helvetica", "verdana", "tahoma", "lato", "open sans",
	}
	fontTierSerif = []string{
		"times new roman", "georgia", "garamond", "cambria", "book antiqua",
	}
	fontTierDisplay = []string{
		"impact", "futura", "rockwell",
	}
)

// Format grade component weights, out of 100 total.
const (
	fontScoreSans    = 35
	fontScoreSerif   = 28
	fontScoreDisplay = 15
	fontScoreUnknown = 10

	sizeScoreSweetSpot = 25 // 11-12pt
	sizeScoreGood      = 18 // 10-14pt
	sizeScorePoor      = 8

	spacingScoreSweetSpot = 25 // 1.4-1.6
	spacingScoreGood      = 18 // 1.2-1.8
	spacingScorePoor      = 8

	sectionCountBonus = 15 // 3-6 sections
	sectionCountBase  = 5
)

// FormatGrade maps the resume's typography settings and section count to an
// ordinal grade: A+, A, B+, B, C+ or C.
func FormatGrade(r *types.Resume) string {
	score := FormatScore(r)
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C+"
	default:
		return "C"
	}
}

// FormatScore returns the weighted format score out of 100 behind the grade.
// It depends only on settings and section count, never on content, so an
// all-empty resume still grades cleanly.
func FormatScore(r *types.Resume) int {
	if r == nil {
		return fontScoreUnknown + sizeScorePoor + spacingScorePoor + sectionCountBase
	}

	score := fontFamilyScore(r.Settings.FontFamily)

	size := r.Settings.FontSize
	switch {
	case size >= 11 && size <= 12:
		score += sizeScoreSweetSpot
	case size >= 10 && size <= 14:
		score += sizeScoreGood
	default:
		score += sizeScorePoor
	}

	spacing := r.Settings.Spacing
	switch {
	case spacing >= 1.4 && spacing <= 1.6:
		score += spacingScoreSweetSpot
	case spacing >= 1.2 && spacing <= 1.8:
		score += spacingScoreGood
	default:
		score += spacingScorePoor
	}

	if n := len(r.Sections); n >= 3 && n <= 6 {
		score += sectionCountBonus
	} else {
		score += sectionCountBase
	}

	return score
}

func fontFamilyScore(family string) int {
	normalized := strings.ToLower(strings.TrimSpace(family))
	normalized = strings.Trim(normalized, `"'`)

	for _, f := range fontTierSans {
		if normalized == f {
			return fontScoreSans
		}
	}
	for _, f := range fontTierSerif {
		if normalized == f {
			return fontScoreSerif
		}
	}
	for _, f := range fontTierDisplay {
		if normalized == f {
			return fontScoreDisplay
		}
	}
	return fontScoreUnknown
}
