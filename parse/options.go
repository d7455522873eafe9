package parse

// parserConfig holds the parser configuration.
type parserConfig struct {
	delimiter           byte
	forceMsgType        string
	allowUnknownMsgType bool
}

func defaultConfig() parserConfig {
	return parserConfig{delimiter: 0x01}
}

// Option is a functional option for configuring a Parser.
type Option func(*parserConfig)

// WithDelimiter sets the tag/value pair delimiter passed through to the
// tokenizer. The default is SOH (0x01).
func WithDelimiter(delim byte) Option {
	return func(c *parserConfig) {
		c.delimiter = delim
	}
}

// WithForceMsgType overrides the MsgType (tag 35) read from the message
// itself, for parsing fixtures or test data carrying a MsgType the
// schema doesn't declare, or messages damaged badly enough that tag 35
// is missing or unreadable.
func WithForceMsgType(msgType string) Option {
	return func(c *parserConfig) {
		c.forceMsgType = msgType
	}
}

// WithAllowUnknownMsgType allows Parse to proceed when MsgType names no
// message the schema declares, building the body against an empty
// template so every body field is admitted as an off-template entry.
// Without this option, an unknown MsgType is a parse error.
func WithAllowUnknownMsgType(allow bool) Option {
	return func(c *parserConfig) {
		c.allowUnknownMsgType = allow
	}
}
