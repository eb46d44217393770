package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// buildPrompt flattens a resume into a compact plain-text form the model can
// critique. Only user-entered text is included; settings and IDs are not.
func buildPrompt(r *types.Resume) string {
	var b strings.Builder

	b.WriteString("You are a career coach reviewing a resume. ")
	b.WriteString("Write a short assessment (3-5 sentences) of its strengths and the single most impactful improvement. ")
	b.WriteString("Be specific and reference the content below. Do not use markdown.\n\n")

	if r == nil {
		b.WriteString("The resume is empty.\n")
		return b.String()
	}

	if r.PersonalInfo.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", r.PersonalInfo.Name)
	}
	if r.PersonalInfo.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", r.PersonalInfo.Summary)
	}

	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Name)
		for _, p := range sec.Points {
			if strings.TrimSpace(p.Text) == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s\n", p.Text)
		}
	}

	return b.String()
}
