package fixattr

// Option configures a single Apply or Extract call.
type Option func(*config)

type config struct {
	tagName    string
	ignoreSpec bool
}

func defaultConfig() *config {
	return &config{tagName: "fix"}
}

// WithTagName sets the struct tag name fixattr reads. Default "fix".
func WithTagName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.tagName = name
		}
	}
}

// WithIgnoreSpec allows Extract to set fields the section's template does
// not declare, the same escape hatch fix.WithIgnoreSpec provides on
// Section.Set directly.
func WithIgnoreSpec(ignore bool) Option {
	return func(c *config) { c.ignoreSpec = ignore }
}
