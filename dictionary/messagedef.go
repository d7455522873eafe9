package dictionary

// MsgCat is the dictionary's classification of a message as administrative
// (session-layer) or application-level.
type MsgCat string

const (
	MsgCatAdmin MsgCat = "admin"
	MsgCatApp   MsgCat = "app"
)

// MessageDef describes one named FIX message type: its wire MsgType code
// and the ordered field/group template that makes up its body (header and
// trailer are shared across all messages in a VersionSchema, see
// VersionSchema.Header/Trailer).
type MessageDef struct {
	// Name is the dictionary message name, e.g. "NewOrderSingle".
	Name string
	// MsgType is the wire code carried in tag 35, e.g. "D".
	MsgType string
	// MsgCat classifies the message as admin or app.
	MsgCat MsgCat
	// Body is the message's field/group template, in declared order.
	Body EntryList
}
