package rendering

import "html/template"

// Theme is the set of color tokens a layout may use. Light and dark themes
// differ only here; structure and content are identical across modes.
type Theme struct {
	Background template.CSS
	Surface    template.CSS
	Text       template.CSS
	Muted      template.CSS
	Accent     template.CSS
	Border     template.CSS
	Inverse    template.CSS
}

var lightTheme = Theme{
	Background: "#ffffff",
	Surface:    "#f6f7f9",
	Text:       "#1f2933",
	Muted:      "#6b7280",
	Accent:     "#2563eb",
	Border:     "#d1d5db",
	Inverse:    "#ffffff",
}

var darkTheme = Theme{
	Background: "#111827",
	Surface:    "#1f2937",
	Text:       "#f9fafb",
	Muted:      "#9ca3af",
	Accent:     "#60a5fa",
	Border:     "#374151",
	Inverse:    "#111827",
}

// ThemeFor returns the color tokens for the requested presentation mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}
