package types

// TemplateCategory groups template descriptors in the template picker.
// The set is closed; descriptors are defined at build time.
type TemplateCategory string

// Template categories.
const (
	CategoryProfessional TemplateCategory = "professional"
	CategoryModern       TemplateCategory = "modern"
	CategoryMinimal      TemplateCategory = "minimal"
	CategoryCreative     TemplateCategory = "creative"
	CategoryTechnical    TemplateCategory = "technical"
	CategoryAcademic     TemplateCategory = "academic"
	CategoryExecutive    TemplateCategory = "executive"
)

// TemplateDescriptor describes one selectable template. Many descriptors map
// onto a much smaller set of layout implementations; the aliasing is a
// deliberate reuse strategy, not duplication.
type TemplateDescriptor struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    TemplateCategory `json:"category"`
	Glyph       string           `json:"glyph"`
}
