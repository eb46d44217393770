package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "555-1234",
			Location: "Portland, OR",
			Summary:  "Engineer focused on resilient backend systems.",
		},
		Sections: []types.ResumeSection{
			{
				ID:   "sec_exp",
				Name: "Experience",
				Points: []types.BulletPoint{
					{ID: "p1", Text: "Increased revenue by 30%"},
					{ID: "p2", Text: "Led a team of five"},
				},
			},
			{
				ID:   "sec_edu",
				Name: "Education",
				Points: []types.BulletPoint{
					{ID: "p3", Text: "BS Computer Science, MIT (2018)"},
				},
			},
		},
		Settings: types.ResumeSettings{FontFamily: "Helvetica", FontSize: 12, Spacing: 1.5},
	}
}

func TestRender_StructuralGuarantees(t *testing.T) {
	for _, layout := range []string{"classic", "modern", "minimal", "creative", "tech", "academic", "executive"} {
		html, err := Render(sampleResume(), layout, false)
		require.NoError(t, err, layout)

		outline, err := Outline(html)
		require.NoError(t, err, layout)

		assert.Equal(t, "Jane Doe", outline.Headline, layout)
		assert.Equal(t, "Engineer focused on resilient backend systems.", outline.Summary, layout)
		require.Len(t, outline.Sections, 2, layout)
		assert.Equal(t, "Experience", outline.Sections[0].Heading, layout)
		assert.Equal(t, []string{"Increased revenue by 30%", "Led a team of five"}, outline.Sections[0].Bullets, layout)
		assert.Equal(t, "Education", outline.Sections[1].Heading, layout)
	}
}

func TestRender_Idempotent(t *testing.T) {
	r := sampleResume()

	first, err := Render(r, "modern", true)
	require.NoError(t, err)
	second, err := Render(r, "modern", true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_DoesNotMutateResume(t *testing.T) {
	r := sampleResume()
	want := r.Clone()

	_, err := Render(r, "academic", false)
	require.NoError(t, err)

	assert.Equal(t, want, r)
}

func TestRender_UnknownTemplateFallsBackToDefault(t *testing.T) {
	r := sampleResume()

	fallback, err := Render(r, "unknown-id-123", false)
	require.NoError(t, err)
	classic, err := Render(r, DefaultTemplateID, false)
	require.NoError(t, err)

	assert.Equal(t, classic, fallback)
}

func TestRender_DarkModeChangesColorsOnly(t *testing.T) {
	r := sampleResume()

	light, err := Render(r, "tech", false)
	require.NoError(t, err)
	dark, err := Render(r, "tech", true)
	require.NoError(t, err)

	assert.NotEqual(t, light, dark)

	lightOutline, err := Outline(light)
	require.NoError(t, err)
	darkOutline, err := Outline(dark)
	require.NoError(t, err)
	assert.Equal(t, lightOutline, darkOutline)
}

func TestRender_OmitsEmptyContactFields(t *testing.T) {
	r := sampleResume()
	r.PersonalInfo.Phone = ""
	r.PersonalInfo.Location = ""

	html, err := Render(r, "classic", false)
	require.NoError(t, err)

	assert.NotContains(t, html, `data-role="phone"`)
	assert.NotContains(t, html, `data-role="location"`)
	assert.Contains(t, html, `data-role="email"`)
}

func TestRender_OmitsEmptySummary(t *testing.T) {
	r := sampleResume()
	r.PersonalInfo.Summary = "   "

	html, err := Render(r, "classic", false)
	require.NoError(t, err)

	assert.NotContains(t, html, `data-role="summary"`)
}

func TestRender_EmptyResume(t *testing.T) {
	html, err := Render(&types.Resume{}, "classic", false)
	require.NoError(t, err)

	outline, err := Outline(html)
	require.NoError(t, err)
	assert.Empty(t, outline.Headline)
	assert.Empty(t, outline.Sections)
}

func TestRender_NilResume(t *testing.T) {
	html, err := Render(nil, "classic", false)
	require.NoError(t, err)
	assert.Contains(t, html, "<body>")
}

func TestRender_EscapesUserContent(t *testing.T) {
	r := sampleResume()
	r.Sections[0].Points[0].Text = `<script>alert("x")</script>`

	html, err := Render(r, "classic", false)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
}

func TestRender_AcademicEducationTable(t *testing.T) {
	r := sampleResume()

	html, err := Render(r, "academic", false)
	require.NoError(t, err)

	outline, err := Outline(html)
	require.NoError(t, err)

	require.Len(t, outline.Sections, 2)
	assert.False(t, outline.Sections[0].Table, "Experience stays a bullet list")
	assert.True(t, outline.Sections[1].Table, "Education renders as a grid")
	assert.Equal(t, []string{"BS Computer Science, MIT (2018)"}, outline.Sections[1].Bullets)
	assert.Contains(t, html, "<th>Degree</th>")
	assert.Contains(t, html, "<th>Institution</th>")
}

func TestRender_NonAcademicLayoutKeepsEducationAsList(t *testing.T) {
	html, err := Render(sampleResume(), "classic", false)
	assert.NoError(t, err)
	assert.NotContains(t, html, "<table>")
}

func TestRender_AppliesTypographySettings(t *testing.T) {
	r := sampleResume()
	r.Settings = types.ResumeSettings{FontFamily: "Georgia", FontSize: 14, Spacing: 1.8}

	html, err := Render(r, "classic", false)
	assert.NoError(t, err)

	assert.Contains(t, html, "font-size: 14pt")
	assert.Contains(t, html, "line-height: 1.8")
	assert.True(t, strings.Contains(html, "Georgia"))
}
