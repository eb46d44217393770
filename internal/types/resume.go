// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the contact block of a resume. All fields are free text;
// presence checks are the only constraint the scoring engine applies.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// BulletPoint is a single achievement line within a section.
// ID is unique within its parent section; display order is array order.
type BulletPoint struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ResumeSection is a user-named, ordered group of bullet points.
// The name is matched case-insensitively against keywords like "experience",
// "skill" and "education" by the scoring engine and the academic layout.
type ResumeSection struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Points []BulletPoint `json:"points"`
}

// ResumeSettings parameterizes both the format grade and the base typography
// of every rendered layout. Mutated as a whole-object merge.
type ResumeSettings struct {
	FontFamily string  `json:"font_family"`
	FontSize   int     `json:"font_size"`
	Spacing    float64 `json:"spacing"`
}

// Resume is the aggregate the whole system operates on: the single unit
// persisted to storage and the single input to scoring and rendering.
type Resume struct {
	PersonalInfo PersonalInfo    `json:"personal_info"`
	Sections     []ResumeSection `json:"sections"`
	Settings     ResumeSettings  `json:"settings"`
}

// Clone returns a deep copy of the resume. Update operations work on clones
// so that every edit produces a new snapshot and prior snapshots stay
// immutable; scoring and rendering rely on that.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}

	out := &Resume{
		PersonalInfo: r.PersonalInfo,
		Settings:     r.Settings,
	}

	if r.Sections != nil {
		out.Sections = make([]ResumeSection, len(r.Sections))
		for i, sec := range r.Sections {
			copied := ResumeSection{
				ID:   sec.ID,
				Name: sec.Name,
			}
			if sec.Points != nil {
				copied.Points = make([]BulletPoint, len(sec.Points))
				copy(copied.Points, sec.Points)
			}
			out.Sections[i] = copied
		}
	}

	return out
}
