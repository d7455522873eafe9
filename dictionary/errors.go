package dictionary

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by dictionary loading and lookups.
var (
	// ErrVersionNotFound indicates no schema is registered under the
	// requested version string or alias.
	ErrVersionNotFound = errors.New("dictionary: version not found")
	// ErrFieldNotFound indicates no field is registered under the
	// requested name or number.
	ErrFieldNotFound = errors.New("dictionary: field not found")
	// ErrMessageNotFound indicates no message is registered under the
	// requested name or MsgType code.
	ErrMessageNotFound = errors.New("dictionary: message not found")
	// ErrMalformedXML indicates the dictionary document could not be
	// parsed as XML, or is missing a required attribute or element.
	ErrMalformedXML = errors.New("dictionary: malformed xml")
	// ErrUnknownFieldRef indicates a <field>, <group>, or <component>
	// element referenced a name with no corresponding top-level
	// definition.
	ErrUnknownFieldRef = errors.New("dictionary: unknown field reference")
	// ErrComponentCycle indicates a <component> expands, directly or
	// transitively, into itself.
	ErrComponentCycle = errors.New("dictionary: circular component expansion")
	// ErrDuplicateFieldNumber indicates two <field> definitions in the
	// same dictionary declare the same tag number.
	ErrDuplicateFieldNumber = errors.New("dictionary: duplicate field number")
)

// LoadError wraps a failure encountered while registering a dictionary
// version, annotated with the XML element path that triggered it where
// available.
type LoadError struct {
	// Version is the dictionary version being loaded, if already known.
	Version string
	// Path names the offending element, e.g. "messages/message[NewOrderSingle]/group[NoAllocs]".
	// Errors from LoadVersionFile prefix it with the file path, or carry
	// the file path alone when no element is involved.
	Path string
	// Cause is the underlying sentinel or wrapped error.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := "dictionary: load failed"
	if e.Version != "" {
		msg = fmt.Sprintf("%s for %s", msg, e.Version)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}
