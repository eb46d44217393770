// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the quality signals for a resume.
func (p *Printer) PrintScores(scores types.Scores) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Compatibility:  %d / 100\n", scores.ATS))
	sb.WriteString(fmt.Sprintf("Completeness:       %d / 100\n", scores.Completeness))
	sb.WriteString(fmt.Sprintf("Format Grade:       %s\n", scores.FormatGrade))
	sb.WriteString(fmt.Sprintf("Overall:            %d / 100", scores.Overall))

	p.printBox("RESUME SCORES", sb.String())
}

// PrintReview outputs the rule-based review with its recommendation buckets.
func (p *Printer) PrintReview(review types.Review) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score: %d / 100\n", review.OverallScore))

	if len(review.CriticalIssues) > 0 {
		sb.WriteString("\nCritical issues:\n")
		count := min(len(review.CriticalIssues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", review.CriticalIssues[i]))
		}
		if len(review.CriticalIssues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(review.CriticalIssues)-maxItemsToShow))
		}
	}

	if len(review.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(review.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", review.Strengths[i]))
		}
	}

	if len(review.Recommendations.Immediate) > 0 {
		sb.WriteString("\nFix now:\n")
		for _, rec := range review.Recommendations.Immediate {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if len(review.Recommendations.ShortTerm) > 0 {
		sb.WriteString("\nThis week:\n")
		count := min(len(review.Recommendations.ShortTerm), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", review.Recommendations.ShortTerm[i]))
		}
	}

	p.printBox("RESUME REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs a category's template descriptors.
func (p *Printer) PrintTemplates(descriptors []types.TemplateDescriptor) {
	if len(descriptors) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d templates available:\n\n", len(descriptors)))

	current := types.TemplateCategory("")
	for _, d := range descriptors {
		if d.Category != current {
			if current != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(string(d.Category))))
			current = d.Category
		}
		sb.WriteString(fmt.Sprintf("  %s %-14s %s\n", d.Glyph, d.ID, d.Name))
	}

	p.printBox("TEMPLATE CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNarrative outputs the model-written assessment when one was produced.
func (p *Printer) PrintNarrative(narrative string) {
	if narrative == "" {
		return
	}
	p.printBox("NARRATIVE ASSESSMENT", wrapText(narrative, boxWidth-4))
}

// wrapText soft-wraps text at the given width for box display.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
