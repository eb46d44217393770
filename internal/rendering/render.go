package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var layoutTemplates = func() map[Layout]*template.Template {
	layouts := []Layout{
		LayoutClassic, LayoutModern, LayoutMinimal, LayoutCreative,
		LayoutTech, LayoutAcademic, LayoutExecutive,
	}
	m := make(map[Layout]*template.Template, len(layouts))
	for _, layout := range layouts {
		name := string(layout) + ".tmpl"
		m[layout] = template.Must(template.ParseFS(templateFS, "templates/"+name))
	}
	return m
}()

// Render projects the resume through the layout registered for templateID,
// in light or dark presentation mode, and returns a complete HTML document.
// Unknown template IDs render through the default layout. Missing optional
// fields are omitted; an empty resume produces an empty document, never an
// error.
func Render(r *types.Resume, templateID string, dark bool) (string, error) {
	layout := Resolve(templateID)
	tmpl, ok := layoutTemplates[layout]
	if !ok {
		// Registry and embedded templates are defined together; a miss here
		// means a layout constant without a template file.
		return "", &RenderError{Message: fmt.Sprintf("no template for layout %q", layout)}
	}

	data := buildTemplateData(r, layout, dark)

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute %s layout", layout),
			Cause:   err,
		}
	}
	return out.String(), nil
}
