package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwhart/fixgo/dictionary"
	"github.com/jwhart/fixgo/fix"
	"github.com/jwhart/fixgo/tokenize"
)

// Parser turns raw FIX wire bytes into a fix.Message, resolving the
// message's version and MsgType against a dictionary.Catalog.
type Parser struct {
	catalog *dictionary.Catalog
	config  parserConfig
}

// New creates a Parser that resolves versions against catalog.
func New(catalog *dictionary.Catalog, opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{catalog: catalog, config: cfg}
}

// Parse decodes raw FIX wire bytes into a fix.Message.
func (p *Parser) Parse(data []byte) (*fix.Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	version, err := peekBeginString(data, p.config.delimiter)
	if err != nil {
		return nil, err
	}

	schema, err := p.catalog.Version(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}

	tk := tokenize.New(schema, tokenize.WithDelimiter(p.config.delimiter))
	tokens := tk.Tokenize(data)

	msgType := p.config.forceMsgType
	if msgType == "" {
		msgType, err = peekMsgType(tokens)
		if err != nil {
			return nil, err
		}
	}

	def, ok := schema.MessageByType(msgType)
	if !ok {
		if !p.config.allowUnknownMsgType {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMsgType, msgType)
		}
		def = &dictionary.MessageDef{Name: "Unknown" + msgType, MsgType: msgType}
	}

	msg := fix.NewMessage(schema, def)

	idx := 0
	idx = fillSection(tokens, idx, schema.Header, msg.Header, schema, headerBoundary(schema))
	idx = fillSection(tokens, idx, def.Body, msg.Body, schema, bodyBoundary(schema))
	fillSection(tokens, idx, schema.Trailer, msg.Trailer, schema, neverBoundary)

	return msg, nil
}

// peekBeginString extracts the BeginString (tag 8) value from the very
// start of the wire data, without requiring a version schema — the
// schema itself is what BeginString identifies.
func peekBeginString(data []byte, delim byte) (string, error) {
	const prefix = "8="
	if len(data) < len(prefix) || string(data[:len(prefix)]) != prefix {
		return "", ErrMissingBeginString
	}
	end := strings.IndexByte(string(data), delim)
	if end < 0 {
		end = len(data)
	}
	return string(data[len(prefix):end]), nil
}

// peekMsgType scans decoded tokens for the first tag 35 (MsgType).
func peekMsgType(tokens []tokenize.Token) (string, error) {
	for _, tok := range tokens {
		if tok.Number == "35" {
			return string(tok.Value), nil
		}
	}
	return "", ErrMissingMsgType
}

// boundary reports whether a tag number ends the current phase.
type boundary func(number string) bool

func headerBoundary(schema *dictionary.VersionSchema) boundary {
	return func(number string) bool {
		_, ok := schema.Header.ByNumber(number)
		return !ok
	}
}

func bodyBoundary(schema *dictionary.VersionSchema) boundary {
	return func(number string) bool {
		return schema.Trailer.Contains(number)
	}
}

func neverBoundary(string) bool { return false }

// fillSection consumes tokens[idx:] into sec according to template,
// stopping at the first tag for which atBoundary returns true. Tags
// within the phase but outside template are admitted as off-template
// fields (looked up in the full schema when possible, synthesized as
// Field<N> otherwise) rather than treated as errors.
func fillSection(tokens []tokenize.Token, idx int, template dictionary.EntryList, sec *fix.Section, schema *dictionary.VersionSchema, atBoundary boundary) int {
	for idx < len(tokens) {
		tok := tokens[idx]
		if atBoundary(tok.Number) {
			break
		}

		entry, ok := template.ByNumber(tok.Number)
		if !ok {
			field, known := schema.FieldByNumber(tok.Number)
			if !known {
				field = &dictionary.FieldDef{Number: tok.Number, Name: "Field" + tok.Number, Type: dictionary.TypeString}
			}
			_ = sec.Set(fix.ByField(field), string(tok.Value), fix.WithIgnoreSpec(true))
			idx++
			continue
		}

		if entry.Kind == dictionary.EntryField {
			_ = sec.Set(fix.ByField(entry.Field), string(tok.Value))
			idx++
			continue
		}

		// Group entry: tok is the count field itself. Its declared value
		// is advisory only; actual repetitions are discovered by the
		// delimiter field recurring in the stream.
		idx++
		gv, next := fillGroup(tokens, idx, entry.Group, schema)
		_ = sec.SetGroup(fix.ByField(entry.Group.CountField), gv)
		idx = next
	}
	return idx
}

// fillGroup consumes zero or more repetitions of group starting at idx,
// stopping as soon as the delimiter field fails to recur.
func fillGroup(tokens []tokenize.Token, idx int, group *dictionary.GroupDef, schema *dictionary.VersionSchema) (*fix.GroupValue, int) {
	gv := fix.NewGroupValue(group)
	delim := group.Delimiter()
	if delim == nil {
		return gv, idx
	}

	for idx < len(tokens) && tokens[idx].Number == delim.Number {
		rep := gv.AddRepetition()
		idx = fillRepetition(tokens, idx, group.Template, rep, schema, delim.Number)
	}
	return gv, idx
}

// fillRepetition consumes one repetition of a group's template,
// treating a second occurrence of delimNumber as the start of the next
// repetition rather than a continuation of this one.
func fillRepetition(tokens []tokenize.Token, idx int, template dictionary.EntryList, sec *fix.Section, schema *dictionary.VersionSchema, delimNumber string) int {
	first := true
	for idx < len(tokens) {
		tok := tokens[idx]
		if !first && tok.Number == delimNumber {
			break
		}

		entry, ok := template.ByNumber(tok.Number)
		if !ok {
			break
		}

		if entry.Kind == dictionary.EntryField {
			_ = sec.Set(fix.ByField(entry.Field), string(tok.Value))
			idx++
			first = false
			continue
		}

		idx++
		gv, next := fillGroup(tokens, idx, entry.Group, schema)
		_ = sec.SetGroup(fix.ByField(entry.Group.CountField), gv)
		idx = next
		first = false
	}
	return idx
}

// Count parses a group's count field value, returning 0 if it is absent
// or unparseable. It is exposed for callers that want to compare the
// declared count against the repetitions parse actually found.
func Count(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
