package validate

import "errors"

// ErrMissingRequiredField indicates a template-required field or group
// has no value in a section.
var ErrMissingRequiredField = errors.New("validate: missing required field")

// Violation is one structural defect found in a message.
type Violation struct {
	// Section names where the violation was found: "header", "body",
	// "trailer", or a group name for a nested repetition.
	Section string
	// Number is the tag number of the offending field or group.
	Number string
	// Name is the dictionary name of the offending field or group.
	Name string
	// Repetition is the zero-based index of the group repetition this
	// violation was found in, or -1 if not applicable.
	Repetition int
	// Cause is the sentinel error classifying the violation.
	Cause error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	msg := v.Cause.Error() + ": " + v.Section + "." + v.Name + " (tag " + v.Number + ")"
	if v.Repetition >= 0 {
		msg += " in repetition"
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (v *Violation) Unwrap() error {
	return v.Cause
}
