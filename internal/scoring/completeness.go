package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// trackedFieldCount is the number of fields the completeness score tracks:
// the five personal-info fields plus content-bearing experience, skills and
// education sections.
const trackedFieldCount = 8

// CompletenessScore returns the fraction of tracked fields that are filled,
// as a percentage rounded to the nearest integer.
func CompletenessScore(r *types.Resume) int {
	if r == nil {
		return 0
	}

	filled := 0
	for _, field := range []string{
		r.PersonalInfo.Name,
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Location,
		r.PersonalInfo.Summary,
	} {
		if strings.TrimSpace(field) != "" {
			filled++
		}
	}

	for _, keyword := range []string{keywordExperience, keywordSkill, keywordEducation} {
		if hasSectionWithContent(r, keyword) {
			filled++
		}
	}

	return int(math.Round(float64(filled) / trackedFieldCount * 100))
}
