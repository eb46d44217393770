package export

import "strings"

// fallbackName is used when the resume has no name to build a filename from.
const fallbackName = "Resume"

// Filename builds the deterministic artifact name for an export:
// {name}_Resume_{templateID}.pdf with whitespace collapsed to underscores
// and path-hostile characters stripped.
func Filename(name, templateID string) string {
	base := sanitize(name)
	if base == "" {
		base = fallbackName
	}

	tmpl := sanitize(templateID)
	if tmpl == "" {
		tmpl = "classic"
	}

	return base + "_Resume_" + tmpl + ".pdf"
}

func sanitize(s string) string {
	fields := strings.Fields(s)
	joined := strings.Join(fields, "_")
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		case c == '_' || c == '-':
			return c
		}
		return -1
	}, joined)
}
