package encode

import "errors"

// Encoder-specific errors.
var (
	// ErrNilMessage indicates Encode was called with a nil message.
	ErrNilMessage = errors.New("encode: cannot encode nil message")

	errBeginStringUnresolvable = errors.New("encode: no BeginString set and message has no schema to derive one from")
	errMsgTypeUnresolvable     = errors.New("encode: no MsgType set and message has no definition to derive one from")
)

// Error wraps a failure encountered while encoding a specific field or
// group, annotated with the tag number where available.
type Error struct {
	// Number is the tag number being encoded when the failure occurred.
	Number string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "encode: failed"
	if e.Number != "" {
		msg += " at tag " + e.Number
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}
