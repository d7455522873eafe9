package fix

import "errors"

// Errors returned by Message and Section operations.
var (
	// ErrFieldNotSet indicates a Get addressed a field that has no value
	// in the section.
	ErrFieldNotSet = errors.New("fix: field not set")
	// ErrNotAGroup indicates a Key that resolves to a plain field was
	// used where a group was expected, or vice versa.
	ErrNotAGroup = errors.New("fix: not a group")
	// ErrUnknownKey indicates a Key could not be resolved against the
	// message's schema (no matching FieldDef by name or number) and
	// WithIgnoreSpec was not set.
	ErrUnknownKey = errors.New("fix: key not in schema")
	// ErrRepetitionOutOfRange indicates a group repetition index was
	// negative or beyond the group's current repetition count.
	ErrRepetitionOutOfRange = errors.New("fix: group repetition out of range")
)
