package scoring

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// ATS score weights. The values are fixed product constants; the worked
// examples in the test suite depend on them, so they are not tuned here.
const (
	atsContactFieldWeight      = 10 // each of name, email, phone, summary
	atsExperienceSectionWeight = 15
	atsSkillsSectionWeight     = 15
	atsEducationSectionWeight  = 10
	atsBulletTierWeight        = 10 // granted at >=5 bullets, again at >=10
	atsBulletTierOne           = 5
	atsBulletTierTwo           = 10
)

// ATSScore estimates how an applicant tracking system would rate the resume,
// as a weighted sum over presence checks, clamped to [0,100].
func ATSScore(r *types.Resume) int {
	if r == nil {
		return 0
	}

	score := 0
	for _, field := range []string{
		r.PersonalInfo.Name,
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Summary,
	} {
		if strings.TrimSpace(field) != "" {
			score += atsContactFieldWeight
		}
	}

	if hasSectionWithContent(r, keywordExperience) {
		score += atsExperienceSectionWeight
	}
	if hasSectionWithContent(r, keywordSkill) {
		score += atsSkillsSectionWeight
	}
	if hasSectionWithContent(r, keywordEducation) {
		score += atsEducationSectionWeight
	}

	bullets := totalBullets(r)
	if bullets >= atsBulletTierOne {
		score += atsBulletTierWeight
	}
	if bullets >= atsBulletTierTwo {
		score += atsBulletTierWeight
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
