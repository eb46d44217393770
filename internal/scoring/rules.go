package scoring

import "regexp"

// ContentRule is a single heuristic the review critic applies to bullet text.
// Rules are kept in an explicit table so each pattern is independently
// testable rather than buried in conditionals.
type ContentRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// QuantifiedRules detect quantified achievements: digits followed by a
// percent sign, a plus, a currency amount, or an impact verb anywhere in the
// bullet.
var QuantifiedRules = []ContentRule{
	{Name: "percentage", Pattern: regexp.MustCompile(`\d+\s*%`)},
	{Name: "plus_figure", Pattern: regexp.MustCompile(`\d+\s*\+`)},
	{Name: "currency", Pattern: regexp.MustCompile(`[$€£]\s*\d`)},
	{Name: "impact_verb", Pattern: regexp.MustCompile(`(?i)\b(increased|improved|reduced|saved)\b`)},
}

// ActionVerbRule matches bullets that open with a strong action verb.
var ActionVerbRule = ContentRule{
	Name:    "leading_action_verb",
	Pattern: regexp.MustCompile(`(?i)^\s*(led|managed|developed|created|implemented|designed|optimized|achieved)\b`),
}

// IsQuantified reports whether the bullet text contains a quantified
// achievement under any rule in QuantifiedRules.
func IsQuantified(text string) bool {
	for _, rule := range QuantifiedRules {
		if rule.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// StartsWithActionVerb reports whether the bullet text opens with a strong
// action verb.
func StartsWithActionVerb(text string) bool {
	return ActionVerbRule.Pattern.MatchString(text)
}
