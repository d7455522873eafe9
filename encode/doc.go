// Package encode serializes a fix.Message into its canonical wire form:
// BeginString and BodyLength first, MsgType third, every other header,
// body, and trailer field in schema-declared order, and CheckSum last.
//
// BeginString and MsgType are derived from the message's schema and
// definition when the caller hasn't already set them explicitly;
// BodyLength and CheckSum are always recomputed from the rest of the
// message and never taken from whatever the caller may have stored
// there — those two fields exist only to let the wire format describe
// itself, and a stale or hand-set value would defeat that.
package encode
