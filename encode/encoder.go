package encode

import (
	"bytes"
	"strconv"

	"github.com/jwhart/fixgo/fix"
)

// reservedHeaderNames are the header fields rendered specially by
// Encode rather than through the ordinary header Entries() walk:
// BeginString and MsgType are derived (or taken verbatim if the caller
// already set them) and BodyLength is always computed, never read.
var reservedHeaderNames = map[string]bool{
	"BeginString": true,
	"BodyLength":  true,
	"MsgType":     true,
}

// Encoder serializes fix.Message values to their wire representation.
type Encoder struct {
	config encoderConfig
}

// New creates an Encoder with the given options.
func New(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{config: cfg}
}

// soh is the wire protocol's own field delimiter. CheckSum is always
// computed over the SOH form, per spec, then the whole message is
// translated to the configured delimiter for output — so to_human()
// and to_bytes() forms of the same message carry identical CheckSum
// digits even though WithDelimiter('|') changes every byte between
// fields.
const soh = 0x01

// Encode serializes msg into canonical wire bytes: BeginString and
// BodyLength first, MsgType third, every other header field, then the
// body, then the trailer (CheckSum always last).
func (e *Encoder) Encode(msg *fix.Message) ([]byte, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}

	beginString, err := resolveBeginString(msg)
	if err != nil {
		return nil, err
	}
	msgType, err := resolveMsgType(msg)
	if err != nil {
		return nil, err
	}

	var afterBodyLength bytes.Buffer
	e.renderField(&afterBodyLength, "35", msgType)
	e.renderHeaderRemainder(&afterBodyLength, msg)
	e.renderEntries(&afterBodyLength, msg.Body.Entries())
	e.renderTrailerRemainder(&afterBodyLength, msg)

	var out bytes.Buffer
	e.renderField(&out, "8", beginString)
	e.renderField(&out, "9", strconv.Itoa(afterBodyLength.Len()))
	out.Write(afterBodyLength.Bytes())

	checksum := checksumOf(out.Bytes())
	e.renderField(&out, "10", checksum)

	return e.translateDelimiter(out.Bytes()), nil
}

// translateDelimiter rewrites the SOH-form bytes CheckSum was computed
// over into the encoder's configured delimiter. A no-op when the
// configured delimiter is already SOH.
func (e *Encoder) translateDelimiter(data []byte) []byte {
	if e.config.delimiter == soh {
		return data
	}
	return bytes.ReplaceAll(data, []byte{soh}, []byte{e.config.delimiter})
}

// EncodeString is a convenience wrapper around Encode.
func (e *Encoder) EncodeString(msg *fix.Message) (string, error) {
	b, err := e.Encode(msg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (e *Encoder) renderHeaderRemainder(buf *bytes.Buffer, msg *fix.Message) {
	for _, entry := range msg.Header.Entries() {
		if reservedHeaderNames[entry.Name] {
			continue
		}
		e.renderEntry(buf, entry)
	}
}

func (e *Encoder) renderTrailerRemainder(buf *bytes.Buffer, msg *fix.Message) {
	for _, entry := range msg.Trailer.Entries() {
		if entry.Name == "CheckSum" {
			continue
		}
		e.renderEntry(buf, entry)
	}
}

func (e *Encoder) renderEntries(buf *bytes.Buffer, entries []fix.Entry) {
	for _, entry := range entries {
		e.renderEntry(buf, entry)
	}
}

func (e *Encoder) renderEntry(buf *bytes.Buffer, entry fix.Entry) {
	switch v := entry.Value.(type) {
	case *fix.FieldValue:
		e.renderField(buf, entry.Number, v.Raw)
	case *fix.GroupValue:
		e.renderField(buf, entry.Number, strconv.Itoa(v.Count()))
		for _, rep := range v.Repetitions {
			e.renderEntries(buf, rep.Entries())
		}
	}
}

// renderField always writes the SOH form, regardless of the encoder's
// configured output delimiter — translateDelimiter rewrites the whole
// buffer once, after CheckSum has been computed over it.
func (e *Encoder) renderField(buf *bytes.Buffer, number, value string) {
	buf.WriteString(number)
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte(soh)
}

// resolveBeginString returns the header's BeginString, falling back to
// the message's schema version when the caller hasn't set one.
func resolveBeginString(msg *fix.Message) (string, error) {
	if v, err := msg.Header.Get(fix.ByName("BeginString")); err == nil {
		return v, nil
	}
	if msg.Schema == nil {
		return "", &Error{Number: "8", Cause: errBeginStringUnresolvable}
	}
	return msg.Schema.Version, nil
}

// resolveMsgType returns the header's MsgType, falling back to the
// message's definition when the caller hasn't set one.
func resolveMsgType(msg *fix.Message) (string, error) {
	if v, err := msg.Header.Get(fix.ByName("MsgType")); err == nil {
		return v, nil
	}
	if msg.Def == nil {
		return "", &Error{Number: "35", Cause: errMsgTypeUnresolvable}
	}
	return msg.Def.MsgType, nil
}

// checksumOf computes the FIX CheckSum: the sum of every byte in data
// modulo 256, rendered as a zero-padded three-digit decimal string.
func checksumOf(data []byte) string {
	var sum int
	for _, b := range data {
		sum += int(b)
	}
	sum %= 256
	s := strconv.Itoa(sum)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
