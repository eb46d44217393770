package rendering

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFontStack_QuotesAndFallback(t *testing.T) {
	assert.Contains(t, string(fontStack("Times New Roman")), `"Times New Roman"`)
	assert.Contains(t, string(fontStack("")), `"Arial"`)
}

func TestFontStack_StripsUnsafeCharacters(t *testing.T) {
	stack := string(fontStack(`Arial"; } body { display:none`))
	assert.NotContains(t, stack, ";")
	assert.NotContains(t, stack, "{")
	assert.NotContains(t, stack, "}")
}

func TestBuildTemplateData_DefaultsForZeroSettings(t *testing.T) {
	data := buildTemplateData(&types.Resume{}, LayoutClassic, false)

	assert.Equal(t, defaultFontSize, data.FontSize)
	assert.Equal(t, defaultSpacing, data.Spacing)
}

func TestBuildTemplateData_SkipsBlankBullets(t *testing.T) {
	r := &types.Resume{
		Sections: []types.ResumeSection{
			{ID: "s1", Name: "Experience", Points: []types.BulletPoint{
				{ID: "p1", Text: "Shipped a feature"},
				{ID: "p2", Text: "   "},
			}},
		},
	}

	data := buildTemplateData(r, LayoutClassic, false)

	assert.Equal(t, []string{"Shipped a feature"}, data.Sections[0].Bullets)
}

func TestBuildTemplateData_EducationRowsOnlyForAcademic(t *testing.T) {
	r := &types.Resume{
		Sections: []types.ResumeSection{
			{ID: "s1", Name: "Education", Points: []types.BulletPoint{
				{ID: "p1", Text: "BS Computer Science"},
			}},
		},
	}

	academic := buildTemplateData(r, LayoutAcademic, false)
	assert.True(t, academic.Sections[0].Table)
	assert.Equal(t, "BS Computer Science", academic.Sections[0].Rows[0].Degree)
	assert.Equal(t, tablePlaceholder, academic.Sections[0].Rows[0].Institution)

	classic := buildTemplateData(r, LayoutClassic, false)
	assert.False(t, classic.Sections[0].Table)
	assert.Empty(t, classic.Sections[0].Rows)
}

func TestHasContactLine(t *testing.T) {
	assert.False(t, (&templateData{}).HasContactLine())
	assert.True(t, (&templateData{Email: "a@b.c"}).HasContactLine())
	assert.True(t, (&templateData{Location: "Portland"}).HasContactLine())
}

func TestThemeFor_ModesDiffer(t *testing.T) {
	assert.NotEqual(t, ThemeFor(false), ThemeFor(true))
}
