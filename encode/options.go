package encode

// Default delimiter: SOH (0x01).
const defaultDelimiter = 0x01

type encoderConfig struct {
	delimiter byte
}

func defaultConfig() encoderConfig {
	return encoderConfig{delimiter: defaultDelimiter}
}

// Option is a functional option for configuring an Encoder.
type Option func(*encoderConfig)

// WithDelimiter sets the tag/value pair delimiter written between
// fields. The default is SOH (0x01); WithDelimiter('|') produces the
// pipe-delimited form used in logs and fixtures.
func WithDelimiter(delim byte) Option {
	return func(c *encoderConfig) {
		c.delimiter = delim
	}
}
