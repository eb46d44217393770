package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Typography defaults applied when settings are unset, so a partially
// initialized resume still renders a legible document.
const (
	defaultFontFamily = "Arial"
	defaultFontSize   = 12
	defaultSpacing    = 1.5
)

// templateData is the projection every layout template receives.
type templateData struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Summary  string
	Sections []sectionData
	Font     template.CSS
	FontSize int
	Spacing  float64
	Theme    Theme
}

// sectionData is one rendered section. Table is set only by the academic
// family for education-named sections; everywhere else sections are bullet
// lists.
type sectionData struct {
	Name    string
	Bullets []string
	Table   bool
	Rows    []EducationRow
}

// EducationRow is one row of the academic layout's education table. The
// bullet text fills the Degree column; the remaining columns are
// placeholder-filled.
type EducationRow struct {
	Degree      string
	Institution string
	Year        string
	Grade       string
}

const tablePlaceholder = "—"

// HasContactLine reports whether any secondary contact field is present, so
// layouts can skip the contact row entirely instead of leaving a gap.
func (d *templateData) HasContactLine() bool {
	return d.Email != "" || d.Phone != "" || d.Location != ""
}

func buildTemplateData(r *types.Resume, layout Layout, dark bool) *templateData {
	data := &templateData{
		Font:     fontStack(""),
		FontSize: defaultFontSize,
		Spacing:  defaultSpacing,
		Theme:    ThemeFor(dark),
	}
	if r == nil {
		return data
	}

	data.Name = strings.TrimSpace(r.PersonalInfo.Name)
	data.Email = strings.TrimSpace(r.PersonalInfo.Email)
	data.Phone = strings.TrimSpace(r.PersonalInfo.Phone)
	data.Location = strings.TrimSpace(r.PersonalInfo.Location)
	data.Summary = strings.TrimSpace(r.PersonalInfo.Summary)

	data.Font = fontStack(r.Settings.FontFamily)
	if r.Settings.FontSize > 0 {
		data.FontSize = r.Settings.FontSize
	}
	if r.Settings.Spacing > 0 {
		data.Spacing = r.Settings.Spacing
	}

	for _, sec := range r.Sections {
		rendered := sectionData{Name: sec.Name}
		for _, pt := range sec.Points {
			if strings.TrimSpace(pt.Text) == "" {
				continue
			}
			rendered.Bullets = append(rendered.Bullets, pt.Text)
		}

		// The academic family renders education-named sections as a grid.
		// This is the one place section name, not position, changes shape:
		// a deliberate data-driven branch.
		if layout == LayoutAcademic && strings.Contains(strings.ToLower(sec.Name), "education") {
			rendered.Table = true
			for _, text := range rendered.Bullets {
				rendered.Rows = append(rendered.Rows, EducationRow{
					Degree:      text,
					Institution: tablePlaceholder,
					Year:        tablePlaceholder,
					Grade:       tablePlaceholder,
				})
			}
		}

		data.Sections = append(data.Sections, rendered)
	}

	return data
}

// fontStack builds a safe CSS font-family value from the user setting. The
// family name passes through a character allow-list so the value can be typed
// template.CSS without escaping surprises.
func fontStack(family string) template.CSS {
	cleaned := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		case c == ' ' || c == '-':
			return c
		}
		return -1
	}, strings.TrimSpace(family))
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = defaultFontFamily
	}
	return template.CSS(fmt.Sprintf("%q, sans-serif", cleaned))
}
