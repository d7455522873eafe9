package tokenize

import (
	"bytes"
	"strconv"

	"github.com/jwhart/fixgo/dictionary"
)

// Tokenizer splits a raw FIX byte stream into Tokens, honoring the
// length-prefixed DATA field rule for whichever version schema it is
// bound to.
type Tokenizer struct {
	schema *dictionary.VersionSchema
	config tokenizerConfig
}

// New creates a Tokenizer bound to a version schema, used to recognize
// LENGTH and DATA fields by tag number.
func New(schema *dictionary.VersionSchema, opts ...Option) *Tokenizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tokenizer{schema: schema, config: cfg}
}

// Tokenize decodes data into an ordered slice of Tokens.
//
// Tag/value pairs are ordinarily delimited by the configured delimiter
// byte. When a field of dictionary type LENGTH is immediately followed
// by a field of dictionary type DATA, the DATA field's value is instead
// read as exactly the number of raw bytes the LENGTH field declared,
// delimiter bytes included — the only place in the wire format a value
// can legally contain the field delimiter. If the declared length runs
// past the end of input, the value absorbs everything through the end,
// including any trailing CheckSum. If the declared length ends before
// the next delimiter, the value is truncated to the declared length and
// scanning resumes after that delimiter, discarding the bytes between.
func (t *Tokenizer) Tokenize(data []byte) []Token {
	var tokens []Token
	pendingLength := -1
	pos := 0

	for pos < len(data) {
		segEnd := indexDelimiter(data, pos, t.config.delimiter)
		eq := bytes.IndexByte(data[pos:segEnd], '=')
		if eq <= 0 {
			pos = advance(data, segEnd)
			continue
		}

		tagStr := string(data[pos : pos+eq])
		if !isDigits(tagStr) {
			pos = advance(data, segEnd)
			continue
		}
		valueStart := pos + eq + 1

		if pendingLength >= 0 && t.isDataField(tagStr) {
			n := pendingLength
			pendingLength = -1

			valueEnd := valueStart + n
			if valueEnd > len(data) {
				valueEnd = len(data)
			}
			tokens = append(tokens, Token{
				Number: tagStr,
				Value:  cloneBytes(data[valueStart:valueEnd]),
				Start:  pos,
				End:    valueEnd,
			})

			if valueEnd < len(data) && data[valueEnd] == t.config.delimiter {
				pos = valueEnd + 1
				continue
			}
			pos = advance(data, indexDelimiter(data, valueEnd, t.config.delimiter))
			continue
		}

		raw := data[valueStart:segEnd]
		tokens = append(tokens, Token{
			Number: tagStr,
			Value:  cloneBytes(raw),
			Start:  pos,
			End:    segEnd,
		})

		pendingLength = -1
		if t.isLengthField(tagStr) {
			if n, err := strconv.Atoi(string(raw)); err == nil && n >= 0 {
				pendingLength = n
			}
		}

		pos = advance(data, segEnd)
	}

	return tokens
}

func (t *Tokenizer) isLengthField(tag string) bool {
	f, ok := t.schema.FieldByNumber(tag)
	return ok && f.IsLength()
}

func (t *Tokenizer) isDataField(tag string) bool {
	f, ok := t.schema.FieldByNumber(tag)
	return ok && f.IsData()
}

// indexDelimiter returns the offset of the next delimiter at or after
// from, or len(data) if none remains.
func indexDelimiter(data []byte, from int, delim byte) int {
	idx := bytes.IndexByte(data[from:], delim)
	if idx < 0 {
		return len(data)
	}
	return from + idx
}

// advance returns the position just past a delimiter found at segEnd,
// or len(data) if segEnd was already the end of input.
func advance(data []byte, segEnd int) int {
	if segEnd >= len(data) {
		return len(data)
	}
	return segEnd + 1
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
