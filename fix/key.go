package fix

import "github.com/jwhart/fixgo/dictionary"

// keyKind discriminates the four ways a Key can address a field or group.
type keyKind int

const (
	keyByName keyKind = iota
	keyByNumber
	keyByField
	keyByValue
)

// Key addresses a field or group within a Section. It can be built from
// a dictionary name, a numeric tag, a *dictionary.FieldDef already in
// hand, or an existing FieldValue whose field identity should be reused
// — the same handful of ways FIX application code ends up naming a
// field, whether it came from a schema lookup, a wire tag, or another
// value.
type Key struct {
	kind   keyKind
	name   string
	number string
	field  *dictionary.FieldDef
	value  *FieldValue
}

// ByName addresses a field or group by its dictionary name, e.g. "ClOrdID".
func ByName(name string) Key {
	return Key{kind: keyByName, name: name}
}

// ByNumber addresses a field or group by its decimal tag number, e.g. "11".
func ByNumber(number string) Key {
	return Key{kind: keyByNumber, number: number}
}

// ByField addresses a field or group by a resolved dictionary.FieldDef,
// bypassing any further schema lookup.
func ByField(field *dictionary.FieldDef) Key {
	return Key{kind: keyByField, field: field}
}

// ByValue addresses a field by the identity of an existing FieldValue,
// useful when re-keying a value obtained from one section into another.
func ByValue(v *FieldValue) Key {
	return Key{kind: keyByValue, value: v}
}

// resolve looks the key up against a schema EntryList, returning the
// EntrySpec it names. If the key carries a *dictionary.FieldDef or
// FieldValue directly, resolution never consults entries and always
// succeeds with a synthetic, unrequired EntrySpec.
func (k Key) resolve(entries dictionary.EntryList) (dictionary.EntrySpec, bool) {
	switch k.kind {
	case keyByName:
		return entries.ByName(k.name)
	case keyByNumber:
		return entries.ByNumber(k.number)
	case keyByField:
		return dictionary.EntrySpec{Kind: dictionary.EntryField, Field: k.field}, true
	case keyByValue:
		return dictionary.EntrySpec{Kind: dictionary.EntryField, Field: k.value.Field}, true
	default:
		return dictionary.EntrySpec{}, false
	}
}

// lookupName returns the name this key would resolve to without
// consulting a schema, for use when schema resolution fails and
// WithIgnoreSpec allows setting off-template fields.
func (k Key) lookupName() (string, bool) {
	switch k.kind {
	case keyByName:
		return k.name, true
	case keyByField:
		return k.field.Name, true
	case keyByValue:
		return k.value.Field.Name, true
	default:
		return "", false
	}
}

// lookupNumber returns the tag number this key would resolve to without
// consulting a schema.
func (k Key) lookupNumber() (string, bool) {
	switch k.kind {
	case keyByNumber:
		return k.number, true
	case keyByField:
		return k.field.Number, true
	case keyByValue:
		return k.value.Field.Number, true
	default:
		return "", false
	}
}
