package fixattr

import "errors"

// Mapping errors.
var (
	// ErrNotPointer indicates the target is not a pointer.
	ErrNotPointer = errors.New("fixattr: target must be a pointer")
	// ErrNotStruct indicates the target does not point to a struct.
	ErrNotStruct = errors.New("fixattr: target must point to a struct")
	// ErrNilPointer indicates a nil pointer was provided.
	ErrNilPointer = errors.New("fixattr: target pointer is nil")
	// ErrNilSection indicates a nil Section was provided.
	ErrNilSection = errors.New("fixattr: section is nil")
	// ErrUnsupportedType indicates a struct field's type has no fixattr
	// conversion.
	ErrUnsupportedType = errors.New("fixattr: unsupported field type")
)
