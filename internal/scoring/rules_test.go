package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuantified_Percentage(t *testing.T) {
	assert.True(t, IsQuantified("Increased revenue by 30%"))
	assert.True(t, IsQuantified("cut costs 15 %"))
}

func TestIsQuantified_PlusFigure(t *testing.T) {
	assert.True(t, IsQuantified("Supported 200+ enterprise customers"))
}

func TestIsQuantified_Currency(t *testing.T) {
	assert.True(t, IsQuantified("Managed a $2M budget"))
	assert.True(t, IsQuantified("Saved €40000 annually"))
}

func TestIsQuantified_ImpactVerb(t *testing.T) {
	assert.True(t, IsQuantified("Reduced deployment time significantly"))
	assert.True(t, IsQuantified("improved onboarding flow"))
}

func TestIsQuantified_PlainText(t *testing.T) {
	assert.False(t, IsQuantified("Responsible for various tasks"))
	assert.False(t, IsQuantified(""))
}

func TestStartsWithActionVerb_Matches(t *testing.T) {
	assert.True(t, StartsWithActionVerb("Led a team of five"))
	assert.True(t, StartsWithActionVerb("  designed the billing schema"))
	assert.True(t, StartsWithActionVerb("OPTIMIZED query latency"))
}

func TestStartsWithActionVerb_OnlyAtStart(t *testing.T) {
	assert.False(t, StartsWithActionVerb("The team was led by me"))
	assert.False(t, StartsWithActionVerb("Development of new features"))
	assert.False(t, StartsWithActionVerb(""))
}

func TestQuantifiedRules_EachRuleHasNameAndPattern(t *testing.T) {
	for _, rule := range QuantifiedRules {
		assert.NotEmpty(t, rule.Name)
		assert.NotNil(t, rule.Pattern)
	}
}
