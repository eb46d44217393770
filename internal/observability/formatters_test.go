package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScores(types.Scores{
		ATS:          85,
		Completeness: 90,
		FormatGrade:  "A",
		Overall:      88,
	})

	output := buf.String()
	assert.Contains(t, output, "RESUME SCORES")
	assert.Contains(t, output, "ATS Compatibility:  85 / 100")
	assert.Contains(t, output, "Format Grade:       A")
	assert.Contains(t, output, "Overall:            88 / 100")
	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
}

func TestPrintReview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReview(types.Review{
		OverallScore:   72,
		Strengths:      []string{"Quantified impact in bullets"},
		CriticalIssues: []string{"Missing contact email"},
		Recommendations: types.Recommendations{
			Immediate: []string{"Add an email address"},
			ShortTerm: []string{"Expand the skills section"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "RESUME REVIEW")
	assert.Contains(t, output, "Overall score: 72 / 100")
	assert.Contains(t, output, "⚠ Missing contact email")
	assert.Contains(t, output, "✓ Quantified impact in bullets")
	assert.Contains(t, output, "Fix now:")
	assert.Contains(t, output, "This week:")
}

func TestPrintReviewTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	issues := []string{"one", "two", "three", "four", "five", "six", "seven"}
	p.PrintReview(types.Review{CriticalIssues: issues})

	output := buf.String()
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "⚠ six")
}

func TestPrintTemplates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplates([]types.TemplateDescriptor{
		{ID: "classic", Name: "Classic", Category: types.CategoryProfessional, Glyph: "▤"},
		{ID: "terminal", Name: "Terminal", Category: types.CategoryTechnical, Glyph: "▥"},
	})

	output := buf.String()
	assert.Contains(t, output, "TEMPLATE CATALOG")
	assert.Contains(t, output, "2 templates available")
	assert.Contains(t, output, "PROFESSIONAL:")
	assert.Contains(t, output, "TECHNICAL:")
	assert.Contains(t, output, "classic")
}

func TestPrintTemplatesEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplates(nil)

	assert.Empty(t, buf.String())
}

func TestPrintNarrative(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNarrative("This resume shows strong impact but the summary could be tightened.")

	output := buf.String()
	assert.Contains(t, output, "NARRATIVE ASSESSMENT")
	assert.Contains(t, output, "strong impact")
}

func TestPrintNarrativeEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNarrative("")

	assert.Empty(t, buf.String())
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("alpha beta gamma delta", 11)
	lines := strings.Split(wrapped, "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 11)
	}
	assert.Equal(t, "alpha beta gamma delta", strings.ReplaceAll(wrapped, "\n", " "))
}
