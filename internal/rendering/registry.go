// Package rendering projects resume content into printable HTML layouts.
// Rendering is a pure projection: the resume is never mutated, missing
// optional fields are omitted, and an empty resume renders an empty document
// rather than failing.
package rendering

import "github.com/jonathan/resume-studio/internal/types"

// Layout identifies one of the distinct rendering implementations. Many
// template IDs alias onto each layout; the many-to-few mapping is deliberate
// reuse, not duplication.
type Layout string

// Layout implementations.
const (
	LayoutClassic   Layout = "classic"
	LayoutModern    Layout = "modern"
	LayoutMinimal   Layout = "minimal"
	LayoutCreative  Layout = "creative"
	LayoutTech      Layout = "tech"
	LayoutAcademic  Layout = "academic"
	LayoutExecutive Layout = "executive"
)

// DefaultLayout is the recovery target for unknown template IDs.
const DefaultLayout = LayoutClassic

// DefaultTemplateID is the template ID of the default layout.
const DefaultTemplateID = "classic"

type catalogEntry struct {
	desc   types.TemplateDescriptor
	layout Layout
}

func entry(id, name, description string, category types.TemplateCategory, glyph string, layout Layout) catalogEntry {
	return catalogEntry{
		desc: types.TemplateDescriptor{
			ID:          id,
			Name:        name,
			Description: description,
			Category:    category,
			Glyph:       glyph,
		},
		layout: layout,
	}
}

// catalog lists every selectable template. Descriptors within a group differ
// only in presentation copy; they all render through the group's layout.
var catalog = []catalogEntry{
	// Classic family
	entry("classic", "Classic", "Time-tested single column with centered header", types.CategoryProfessional, "📄", LayoutClassic),
	entry("professional", "Professional", "Straightforward layout for corporate roles", types.CategoryProfessional, "💼", LayoutClassic),
	entry("corporate", "Corporate", "Conservative styling for enterprise applications", types.CategoryProfessional, "🏢", LayoutClassic),
	entry("traditional", "Traditional", "Familiar structure recruiters expect", types.CategoryProfessional, "📋", LayoutClassic),
	entry("formal", "Formal", "Understated and typographically quiet", types.CategoryProfessional, "🎩", LayoutClassic),
	entry("standard", "Standard", "A safe default for any industry", types.CategoryProfessional, "📑", LayoutClassic),
	entry("refined", "Refined", "Classic bones with lighter rules", types.CategoryProfessional, "🖋️", LayoutClassic),
	entry("timeless", "Timeless", "Looks right today and in ten years", types.CategoryProfessional, "⏳", LayoutClassic),

	// Modern family
	entry("modern", "Modern", "Accent bar and confident sans-serif headings", types.CategoryModern, "✨", LayoutModern),
	entry("sleek", "Sleek", "Tight spacing with a bold accent", types.CategoryModern, "🚀", LayoutModern),
	entry("contemporary", "Contemporary", "Current without being trendy", types.CategoryModern, "🌆", LayoutModern),
	entry("urban", "Urban", "Sharp edges and strong contrast", types.CategoryModern, "🏙️", LayoutModern),
	entry("metro", "Metro", "Grid-inspired modern layout", types.CategoryModern, "🚇", LayoutModern),
	entry("edge", "Edge", "Modern layout with an assertive header", types.CategoryModern, "📐", LayoutModern),
	entry("prime", "Prime", "Clean modern look for any seniority", types.CategoryModern, "🔷", LayoutModern),
	entry("nova", "Nova", "Bright accents over a modern skeleton", types.CategoryModern, "🌟", LayoutModern),

	// Minimal family
	entry("minimal", "Minimal", "Whitespace-first, nothing decorative", types.CategoryMinimal, "⚪", LayoutMinimal),
	entry("clean", "Clean", "Every element earns its place", types.CategoryMinimal, "🧼", LayoutMinimal),
	entry("simple", "Simple", "Reads fast, scans faster", types.CategoryMinimal, "➖", LayoutMinimal),
	entry("whitespace", "Whitespace", "Generous margins and quiet type", types.CategoryMinimal, "⬜", LayoutMinimal),
	entry("bare", "Bare", "Content and nothing else", types.CategoryMinimal, "📃", LayoutMinimal),
	entry("crisp", "Crisp", "Minimal with a little more structure", types.CategoryMinimal, "❄️", LayoutMinimal),
	entry("airy", "Airy", "Light, open, uncluttered", types.CategoryMinimal, "🕊️", LayoutMinimal),

	// Creative family
	entry("creative", "Creative", "Expressive header for design roles", types.CategoryCreative, "🎨", LayoutCreative),
	entry("designer", "Designer", "Made for portfolios and visual work", types.CategoryCreative, "🖌️", LayoutCreative),
	entry("portfolio", "Portfolio", "Lets personality show through", types.CategoryCreative, "🗂️", LayoutCreative),
	entry("artistic", "Artistic", "Color-forward creative layout", types.CategoryCreative, "🎭", LayoutCreative),
	entry("vivid", "Vivid", "Saturated accents, same clean content", types.CategoryCreative, "🌈", LayoutCreative),
	entry("studio", "Studio", "Creative layout with editorial touches", types.CategoryCreative, "📸", LayoutCreative),
	entry("canvas", "Canvas", "A creative frame around your story", types.CategoryCreative, "🖼️", LayoutCreative),

	// Technical family
	entry("tech", "Tech", "Built for engineering resumes", types.CategoryTechnical, "💻", LayoutTech),
	entry("developer", "Developer", "Code-adjacent styling, readable output", types.CategoryTechnical, "⌨️", LayoutTech),
	entry("engineer", "Engineer", "Systems-minded structure", types.CategoryTechnical, "⚙️", LayoutTech),
	entry("data-scientist", "Data Scientist", "For analytics and ML roles", types.CategoryTechnical, "📊", LayoutTech),
	entry("devops", "DevOps", "Infrastructure and platform roles", types.CategoryTechnical, "🔧", LayoutTech),
	entry("fullstack", "Full Stack", "Front to back in one page", types.CategoryTechnical, "🧩", LayoutTech),
	entry("architect", "Architect", "For senior technical leadership", types.CategoryTechnical, "🏗️", LayoutTech),
	entry("analyst", "Analyst", "Data-first technical layout", types.CategoryTechnical, "🔍", LayoutTech),

	// Academic family
	entry("academic", "Academic", "CV conventions with an education table", types.CategoryAcademic, "🎓", LayoutAcademic),
	entry("research", "Research", "For research positions and grants", types.CategoryAcademic, "🔬", LayoutAcademic),
	entry("scholar", "Scholar", "Serif type, scholarly tone", types.CategoryAcademic, "📚", LayoutAcademic),
	entry("phd", "PhD", "Doctoral applications and postdocs", types.CategoryAcademic, "🧪", LayoutAcademic),
	entry("professor", "Professor", "Teaching and faculty roles", types.CategoryAcademic, "🏛️", LayoutAcademic),
	entry("lab", "Lab", "Lab and field research positions", types.CategoryAcademic, "⚗️", LayoutAcademic),
	entry("thesis", "Thesis", "Academic layout, compact footprint", types.CategoryAcademic, "📖", LayoutAcademic),

	// Executive family
	entry("executive", "Executive", "Commanding header for senior leaders", types.CategoryExecutive, "👔", LayoutExecutive),
	entry("leadership", "Leadership", "For people who run the org chart", types.CategoryExecutive, "🧭", LayoutExecutive),
	entry("director", "Director", "Director and VP level roles", types.CategoryExecutive, "🎯", LayoutExecutive),
	entry("manager", "Manager", "People and program management", types.CategoryExecutive, "🗃️", LayoutExecutive),
	entry("chairman", "Chairman", "Board-level presentation", types.CategoryExecutive, "🏆", LayoutExecutive),
	entry("consultant", "Consultant", "Advisory and client-facing roles", types.CategoryExecutive, "📈", LayoutExecutive),
	entry("strategist", "Strategist", "Strategy and operations leadership", types.CategoryExecutive, "♟️", LayoutExecutive),
}

var layoutByID = func() map[string]Layout {
	m := make(map[string]Layout, len(catalog))
	for _, e := range catalog {
		m[e.desc.ID] = e.layout
	}
	return m
}()

// Resolve maps a template ID to its layout. Unknown or empty IDs fall back to
// the default layout; this is a defined recovery path, not an error.
func Resolve(templateID string) Layout {
	if layout, ok := layoutByID[templateID]; ok {
		return layout
	}
	return DefaultLayout
}

// Known reports whether the template ID is registered.
func Known(templateID string) bool {
	_, ok := layoutByID[templateID]
	return ok
}

// Catalog returns every template descriptor, optionally filtered by category.
// An empty category returns the full catalog.
func Catalog(category types.TemplateCategory) []types.TemplateDescriptor {
	out := make([]types.TemplateDescriptor, 0, len(catalog))
	for _, e := range catalog {
		if category != "" && e.desc.Category != category {
			continue
		}
		out = append(out, e.desc)
	}
	return out
}

// Descriptor returns the descriptor for a template ID.
func Descriptor(templateID string) (types.TemplateDescriptor, bool) {
	for _, e := range catalog {
		if e.desc.ID == templateID {
			return e.desc, true
		}
	}
	return types.TemplateDescriptor{}, false
}
