package parse

import "errors"

// Parser-specific errors.
var (
	// ErrEmptyMessage is returned when there is no data to parse.
	ErrEmptyMessage = errors.New("parse: empty message")
	// ErrMissingBeginString is returned when the input does not start
	// with a tag 8 (BeginString) field.
	ErrMissingBeginString = errors.New("parse: missing BeginString")
	// ErrUnknownVersion is returned when BeginString names a version not
	// registered in the parser's catalog.
	ErrUnknownVersion = errors.New("parse: unknown version")
	// ErrMissingMsgType is returned when the input carries no tag 35
	// (MsgType) field and ForceMsgType was not supplied.
	ErrMissingMsgType = errors.New("parse: missing MsgType")
	// ErrUnknownMsgType is returned when MsgType names a message not
	// declared by the version schema and WithAllowUnknownMsgType was not
	// set.
	ErrUnknownMsgType = errors.New("parse: unknown MsgType")
)
