package dictionary

// EntryKind discriminates the two shapes an EntrySpec can take: a plain
// field, or a repeating group keyed by a NoXxx count field.
type EntryKind int

const (
	// EntryField is a plain field reference.
	EntryField EntryKind = iota
	// EntryGroup is a repeating-group reference.
	EntryGroup
)

// String returns a human-readable name for the entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryField:
		return "field"
	case EntryGroup:
		return "group"
	default:
		return "unknown"
	}
}

// EntrySpec is one member of an EntryList: either a FieldDef reference or
// a GroupDef reference, tagged by Kind. Exactly one of Field or Group is
// set, matching its Kind.
type EntrySpec struct {
	Kind     EntryKind
	Field    *FieldDef
	Group    *GroupDef
	Required bool
}

// Number returns the tag number this entry is keyed by on the wire: the
// field's own number for a field entry, or the group's count field number
// for a group entry.
func (e EntrySpec) Number() string {
	if e.Kind == EntryGroup {
		return e.Group.CountField.Number
	}
	return e.Field.Number
}

// Name returns the dictionary name this entry is keyed by: the field's
// name for a field entry, or the group's name (its count field's name)
// for a group entry.
func (e EntrySpec) Name() string {
	if e.Kind == EntryGroup {
		return e.Group.Name
	}
	return e.Field.Name
}

// EntryList is an ordered sequence of EntrySpec, as declared in the
// dictionary (component children already spliced inline).
type EntryList []EntrySpec

// ByNumber returns the entry keyed by the given tag number, and whether it
// was found. Lookup is linear; EntryLists are small (dozens of entries at
// most). The parser calls it once per token, and fix.Section calls it on
// every Set.
func (el EntryList) ByNumber(number string) (EntrySpec, bool) {
	for _, e := range el {
		if e.Number() == number {
			return e, true
		}
	}
	return EntrySpec{}, false
}

// ByName returns the entry keyed by the given dictionary name, and whether
// it was found.
func (el EntryList) ByName(name string) (EntrySpec, bool) {
	for _, e := range el {
		if e.Name() == name {
			return e, true
		}
	}
	return EntrySpec{}, false
}

// Contains reports whether a tag number belongs to this EntryList, or
// transitively to the template of any group entry it contains.
func (el EntryList) Contains(number string) bool {
	for _, e := range el {
		if e.Number() == number {
			return true
		}
		if e.Kind == EntryGroup && e.Group.Template.Contains(number) {
			return true
		}
	}
	return false
}

// GroupDef is a repeating-group template: a count field whose integer
// value declares how many repetitions of Template follow it on the wire.
type GroupDef struct {
	// Name is the group's dictionary name, equal to its count field's name
	// (e.g. "NoAllocs").
	Name string
	// CountField is the NoXxx field whose value is the repetition count.
	CountField *FieldDef
	// Template is the ordered field/group list that makes up one
	// repetition. Template[0] is the delimiter entry (see Delimiter).
	Template EntryList
}

// Delimiter returns the field whose recurrence marks the start of a new
// repetition: the first template entry's field, or — if the template's
// first entry is itself a nested group — that nested group's own count
// field, recursively. A group with an empty template has no delimiter.
func (g *GroupDef) Delimiter() *FieldDef {
	if len(g.Template) == 0 {
		return nil
	}
	first := g.Template[0]
	if first.Kind == EntryField {
		return first.Field
	}
	return first.Group.Delimiter()
}
