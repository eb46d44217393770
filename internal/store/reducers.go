package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// PersonalInfoPatch carries optional replacements for contact fields.
// Nil fields leave the current value untouched; empty strings clear it.
type PersonalInfoPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// SettingsPatch carries optional replacements for typography settings.
type SettingsPatch struct {
	FontFamily *string  `json:"font_family,omitempty"`
	FontSize   *int     `json:"font_size,omitempty"`
	Spacing    *float64 `json:"spacing,omitempty"`
}

// cloneOrSeed gives every reducer a non-nil snapshot to work on. A nil input
// behaves like a brand-new session, matching New(nil).
func cloneOrSeed(r *types.Resume) *types.Resume {
	if r == nil {
		return Seed()
	}
	return r.Clone()
}

// UpdatePersonalInfo applies a contact patch and returns a fresh snapshot.
func UpdatePersonalInfo(r *types.Resume, patch PersonalInfoPatch) *types.Resume {
	out := cloneOrSeed(r)
	if patch.Name != nil {
		out.PersonalInfo.Name = *patch.Name
	}
	if patch.Email != nil {
		out.PersonalInfo.Email = *patch.Email
	}
	if patch.Phone != nil {
		out.PersonalInfo.Phone = *patch.Phone
	}
	if patch.Location != nil {
		out.PersonalInfo.Location = *patch.Location
	}
	if patch.Summary != nil {
		out.PersonalInfo.Summary = *patch.Summary
	}
	return out
}

// UpdateSettings applies a typography patch and returns a fresh snapshot.
func UpdateSettings(r *types.Resume, patch SettingsPatch) *types.Resume {
	out := cloneOrSeed(r)
	if patch.FontFamily != nil {
		out.Settings.FontFamily = *patch.FontFamily
	}
	if patch.FontSize != nil {
		out.Settings.FontSize = *patch.FontSize
	}
	if patch.Spacing != nil {
		out.Settings.Spacing = *patch.Spacing
	}
	return out
}

// AddSection appends a new empty section with the given name.
func AddSection(r *types.Resume, name string) *types.Resume {
	out := cloneOrSeed(r)
	out.Sections = append(out.Sections, types.ResumeSection{
		ID:     uuid.NewString(),
		Name:   name,
		Points: []types.BulletPoint{},
	})
	return out
}

// RenameSection changes the display name of a section. Unknown IDs are a
// no-op; the returned snapshot is still a fresh clone.
func RenameSection(r *types.Resume, sectionID, name string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			out.Sections[i].Name = name
			break
		}
	}
	return out
}

// DeleteSection removes a section by ID, preserving the order of the rest.
func DeleteSection(r *types.Resume, sectionID string) *types.Resume {
	out := cloneOrSeed(r)
	kept := out.Sections[:0]
	for _, sec := range out.Sections {
		if sec.ID != sectionID {
			kept = append(kept, sec)
		}
	}
	out.Sections = kept
	return out
}

// MoveSectionUp swaps a section with its predecessor. The first section and
// unknown IDs are no-ops.
func MoveSectionUp(r *types.Resume, sectionID string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			if i > 0 {
				out.Sections[i-1], out.Sections[i] = out.Sections[i], out.Sections[i-1]
			}
			break
		}
	}
	return out
}

// MoveSectionDown swaps a section with its successor. The last section and
// unknown IDs are no-ops.
func MoveSectionDown(r *types.Resume, sectionID string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			if i < len(out.Sections)-1 {
				out.Sections[i], out.Sections[i+1] = out.Sections[i+1], out.Sections[i]
			}
			break
		}
	}
	return out
}

// AddBullet appends a bullet to the named section.
func AddBullet(r *types.Resume, sectionID, text string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			out.Sections[i].Points = append(out.Sections[i].Points, types.BulletPoint{
				ID:   uuid.NewString(),
				Text: text,
			})
			break
		}
	}
	return out
}

// UpdateBullet replaces the text of one bullet.
func UpdateBullet(r *types.Resume, sectionID, bulletID, text string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		for j := range out.Sections[i].Points {
			if out.Sections[i].Points[j].ID == bulletID {
				out.Sections[i].Points[j].Text = text
				break
			}
		}
		break
	}
	return out
}

// DeleteBullet removes one bullet from its section.
func DeleteBullet(r *types.Resume, sectionID, bulletID string) *types.Resume {
	out := cloneOrSeed(r)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		kept := out.Sections[i].Points[:0]
		for _, p := range out.Sections[i].Points {
			if p.ID != bulletID {
				kept = append(kept, p)
			}
		}
		out.Sections[i].Points = kept
		break
	}
	return out
}
