// Package fix provides the in-memory model of a parsed or
// programmatically built FIX message: an ordered header, body, and
// trailer, each holding fields and repeating groups addressable by
// dictionary name, tag number, or dictionary.FieldDef reference.
//
// A Message never auto-populates session-layer fields (BeginString,
// BodyLength, MsgType, SenderCompID, TargetCompID, MsgSeqNum in the
// header; CheckSum in the trailer). The encoder derives BeginString and
// MsgType when they are unset and always computes BodyLength and
// CheckSum; SenderCompID, TargetCompID, and MsgSeqNum are left to the
// caller.
//
// Values are addressed through a Key, which can be built from a
// dictionary name (ByName), a numeric tag (ByNumber), a
// *dictionary.FieldDef (ByField), or an existing FieldValue (ByValue)
// whose field identity is reused. This mirrors the several ways FIX
// tooling is used to address a field in practice — by mnemonic in
// application code, by tag number off the wire, or by a schema object
// already in hand.
package fix
