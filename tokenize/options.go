package tokenize

// Default delimiter: SOH (0x01), the standard FIX tag/value separator.
const defaultDelimiter = 0x01

// tokenizerConfig holds the tokenizer configuration.
type tokenizerConfig struct {
	delimiter byte
}

func defaultConfig() tokenizerConfig {
	return tokenizerConfig{delimiter: defaultDelimiter}
}

// Option is a functional option for configuring a Tokenizer.
type Option func(*tokenizerConfig)

// WithDelimiter sets the tag/value pair delimiter. The default is SOH
// (0x01); some human-readable logs and fixtures substitute '|' instead.
func WithDelimiter(delim byte) Option {
	return func(c *tokenizerConfig) {
		c.delimiter = delim
	}
}
