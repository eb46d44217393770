package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// Seed builds the default sample resume a new session starts from. The
// content is realistic enough to exercise every scoring rule and layout.
func Seed() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			Name:     "Jordan Avery",
			Email:    "jordan.avery@example.com",
			Phone:    "+1 (555) 010-0199",
			Location: "Portland, OR",
			Summary:  "Software engineer with six years of experience building data pipelines and internal platforms, focused on reliability and measurable impact.",
		},
		Sections: []types.ResumeSection{
			{
				ID:   uuid.NewString(),
				Name: "Experience",
				Points: []types.BulletPoint{
					{ID: uuid.NewString(), Text: "Led migration of the billing pipeline to an event-driven design, reducing settlement latency by 40%"},
					{ID: uuid.NewString(), Text: "Developed an internal deployment tool adopted by 12 teams"},
					{ID: uuid.NewString(), Text: "Reduced infrastructure spend by $85,000 a year through workload right-sizing"},
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "Skills",
				Points: []types.BulletPoint{
					{ID: uuid.NewString(), Text: "Go, PostgreSQL, Kubernetes, Terraform"},
					{ID: uuid.NewString(), Text: "Distributed systems, observability, incident response"},
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "Education",
				Points: []types.BulletPoint{
					{ID: uuid.NewString(), Text: "B.S. Computer Science, Oregon State University, 2018"},
				},
			},
		},
		Settings: types.ResumeSettings{
			FontFamily: "Arial",
			FontSize:   12,
			Spacing:    1.5,
		},
	}
}
