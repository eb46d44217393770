package rendering

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownIDs(t *testing.T) {
	assert.Equal(t, LayoutClassic, Resolve("classic"))
	assert.Equal(t, LayoutTech, Resolve("devops"))
	assert.Equal(t, LayoutAcademic, Resolve("phd"))
	assert.Equal(t, LayoutExecutive, Resolve("chairman"))
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, DefaultLayout, Resolve("unknown-id-123"))
	assert.Equal(t, DefaultLayout, Resolve(""))
}

func TestCatalog_HasOverFiftyDescriptors(t *testing.T) {
	all := Catalog("")
	assert.Greater(t, len(all), 50)
}

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, desc := range Catalog("") {
		assert.False(t, seen[desc.ID], "duplicate template id %s", desc.ID)
		seen[desc.ID] = true
	}
}

func TestCatalog_EveryDescriptorResolvesToARealLayout(t *testing.T) {
	for _, desc := range Catalog("") {
		layout := Resolve(desc.ID)
		_, ok := layoutTemplates[layout]
		assert.True(t, ok, "template id %s resolves to layout %s without a template", desc.ID, layout)
	}
}

func TestCatalog_CategoryFilter(t *testing.T) {
	technical := Catalog(types.CategoryTechnical)
	assert.Len(t, technical, 8)
	for _, desc := range technical {
		assert.Equal(t, types.CategoryTechnical, desc.Category)
	}
}

func TestCatalog_ManyToFewAliasing(t *testing.T) {
	layouts := map[Layout]bool{}
	for _, desc := range Catalog("") {
		layouts[Resolve(desc.ID)] = true
	}

	// Over fifty descriptors share a handful of layout implementations
	assert.Len(t, layouts, 7)
}

func TestDescriptor_Lookup(t *testing.T) {
	desc, ok := Descriptor("tech")
	assert.True(t, ok)
	assert.Equal(t, "Tech", desc.Name)

	_, ok = Descriptor("nope")
	assert.False(t, ok)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("modern"))
	assert.False(t, Known("unknown-id-123"))
}
