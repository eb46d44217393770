// Package llm provides the model client used for narrative resume analysis.
package llm

// Config holds the model configuration for the analysis step.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. Analysis favors a
// fast model and low temperature so repeated runs stay close to each other.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.1,
	}
}

// WithModel returns a copy of the config using a specific model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
