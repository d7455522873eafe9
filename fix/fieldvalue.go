package fix

import "github.com/jwhart/fixgo/dictionary"

// Value is the common interface implemented by FieldValue and GroupValue,
// the two shapes a Section entry can hold.
type Value interface {
	isValue()
}

// FieldValue is a single tag/value pair bound to its dictionary
// definition, carried as its raw wire string — the codec never attempts
// type coercion (QTY, PRICE, UTCTIMESTAMP, ...) beyond what the DATA
// length-prefix rule in tokenize requires.
type FieldValue struct {
	Field *dictionary.FieldDef
	Raw   string
}

func (*FieldValue) isValue() {}

// NewFieldValue builds a FieldValue bound to a field definition.
func NewFieldValue(field *dictionary.FieldDef, raw string) *FieldValue {
	return &FieldValue{Field: field, Raw: raw}
}

// Equal reports whether two field values carry the same field identity
// and raw wire value.
func (f *FieldValue) Equal(other *FieldValue) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Field == other.Field && f.Raw == other.Raw
}

// Enum returns the human-readable description of this value's wire
// enum, if the field declares one matching it.
func (f *FieldValue) Enum() (string, bool) {
	if f.Field == nil {
		return "", false
	}
	return f.Field.EnumDescription(f.Raw)
}
