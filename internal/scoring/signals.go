package scoring

import "github.com/jonathan/resume-studio/internal/types"

// Signals computes all four quality signals for the resume in one pass.
// This is what gets recomputed after every edit and what save persists
// alongside the resume snapshot.
func Signals(r *types.Resume) types.Scores {
	return types.Scores{
		ATS:          ATSScore(r),
		Completeness: CompletenessScore(r),
		FormatGrade:  FormatGrade(r),
		Overall:      Review(r).OverallScore,
	}
}
