package fix

import (
	"github.com/jwhart/fixgo/dictionary"
	"github.com/jwhart/fixgo/generator"
)

// headerProtected names the header fields Initialize never populates:
// session-layer fields the encoder (BeginString, BodyLength, MsgType)
// or the transport (SenderCompID, TargetCompID, MsgSeqNum) owns.
var headerProtected = map[string]bool{
	"BeginString":  true,
	"BodyLength":   true,
	"MsgType":      true,
	"SenderCompID": true,
	"TargetCompID": true,
	"MsgSeqNum":    true,
}

// trailerProtected names the trailer field Initialize never populates:
// CheckSum, which only the encoder can compute correctly.
var trailerProtected = map[string]bool{
	"CheckSum": true,
}

// Message is a single FIX message: a header, body, and trailer, each
// scoped to the dictionary template for the message's version and
// MsgType.
type Message struct {
	Schema  *dictionary.VersionSchema
	Def     *dictionary.MessageDef
	Header  *Section
	Body    *Section
	Trailer *Section
}

// NewMessage creates an empty Message for a message definition within a
// version schema, with empty header, body, and trailer sections scoped
// to their respective templates.
func NewMessage(schema *dictionary.VersionSchema, def *dictionary.MessageDef) *Message {
	return &Message{
		Schema:  schema,
		Def:     def,
		Header:  NewSection(schema.Header),
		Body:    NewSection(def.Body),
		Trailer: NewSection(schema.Trailer),
	}
}

// Initialize populates unset, required header and body fields (and, if
// optional is true, every unset non-protected field) using values drawn
// from reg for any field that names a registered generator. Fields with
// no matching generator are left unset. BeginString, BodyLength,
// MsgType, SenderCompID, TargetCompID, and MsgSeqNum in the header and
// CheckSum in the trailer are never touched — those are the encoder's
// and transport's responsibility.
func (m *Message) Initialize(optional bool, reg generator.Registry) {
	initializeSection(m.Header, headerProtected, optional, reg)
	initializeSection(m.Body, nil, optional, reg)
	// The trailer's only field beyond CheckSum in most dictionaries is
	// signature material that has no general-purpose generator; nothing
	// beyond the protected-field skip applies here, but the same helper
	// is used for symmetry and to pick up any future trailer fields.
	initializeSection(m.Trailer, trailerProtected, optional, reg)
}

func initializeSection(sec *Section, protected map[string]bool, optional bool, reg generator.Registry) {
	for _, spec := range sec.Template() {
		if protected[spec.Name()] {
			continue
		}
		if spec.Kind != dictionary.EntryField {
			continue
		}
		if sec.Contains(ByName(spec.Name())) {
			continue
		}
		if !spec.Required && !optional {
			continue
		}
		gen, ok := reg.Lookup(spec.Name())
		if !ok {
			continue
		}
		value := gen.Generate(spec.Field)
		_ = sec.Set(ByName(spec.Name()), value)
	}
}

// ReverseRoute returns a new Message whose header SenderCompID and
// TargetCompID are swapped from this message's, for building a reply in
// the same session. Every other header field, the body, and the
// trailer are left unset on the returned message — callers populate
// MsgType, MsgSeqNum, and the body themselves.
func (m *Message) ReverseRoute(def *dictionary.MessageDef) *Message {
	reply := NewMessage(m.Schema, def)

	if sender, err := m.Header.Get(ByName("TargetCompID")); err == nil {
		_ = reply.Header.Set(ByName("SenderCompID"), sender)
	}
	if target, err := m.Header.Get(ByName("SenderCompID")); err == nil {
		_ = reply.Header.Set(ByName("TargetCompID"), target)
	}
	return reply
}
