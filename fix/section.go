package fix

import "github.com/jwhart/fixgo/dictionary"

// setConfig carries the functional options recognized by Section.Set
// and Section.SetGroup.
type setConfig struct {
	ignoreSpec bool
}

// SetOption configures a single Set call.
type SetOption func(*setConfig)

// WithIgnoreSpec allows Set to admit a field or group that the section's
// schema template does not declare, keyed by whatever name or number the
// Key carries. Off-template entries are preserved in the order they were
// set and emitted after every templated entry when the section is
// encoded.
func WithIgnoreSpec(ignore bool) SetOption {
	return func(c *setConfig) { c.ignoreSpec = ignore }
}

// Entry is one resolved (name, value) pair within a Section, in the
// order Entries returns them.
type Entry struct {
	Name   string
	Number string
	Value  Value
}

// Section is an ordered collection of field and group values scoped to
// one schema EntryList — a message's header, its body, its trailer, or
// one repetition of a group. Lookups accept any Key variant; Set
// refuses a name or number the template doesn't declare unless
// WithIgnoreSpec is given. Entries are keyed internally by tag number,
// the one identity every Key variant can always resolve to.
type Section struct {
	template dictionary.EntryList
	values   map[string]Value
	names    map[string]string // number -> display name, for off-template entries
	extra    []string          // numbers, in off-template insertion order
}

// NewSection creates an empty Section scoped to a schema template.
func NewSection(template dictionary.EntryList) *Section {
	return &Section{
		template: template,
		values:   make(map[string]Value),
		names:    make(map[string]string),
	}
}

// Template returns the schema EntryList this section is scoped to.
func (s *Section) Template() dictionary.EntryList {
	return s.template
}

// resolve determines the tag number and display name a Key addresses
// within this section, consulting the template first and falling back
// to the key's own name/number when ignoreSpec allows off-template
// entries.
func (s *Section) resolve(key Key, ignoreSpec bool) (number, name string, err error) {
	if entry, ok := key.resolve(s.template); ok {
		return entry.Number(), entry.Name(), nil
	}
	if number, ok := key.lookupNumber(); ok {
		if !ignoreSpec {
			return "", "", ErrUnknownKey
		}
		name := number
		if n, ok := key.lookupName(); ok {
			name = n
		}
		return number, name, nil
	}
	if name, ok := key.lookupName(); ok {
		if !ignoreSpec {
			return "", "", ErrUnknownKey
		}
		return name, name, nil
	}
	return "", "", ErrUnknownKey
}

// Set stores a raw field value under the field a Key resolves to.
func (s *Section) Set(key Key, raw string, opts ...SetOption) error {
	cfg := setConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	number, name, err := s.resolve(key, cfg.ignoreSpec)
	if err != nil {
		return err
	}

	field := fieldForKey(key, s.template, number, name)
	s.markSet(number, name)
	s.values[number] = NewFieldValue(field, raw)
	return nil
}

// fieldForKey returns the best available *dictionary.FieldDef for a
// resolved tag number: the template's own definition when the key
// matched an entry, the key's attached definition when it carries one
// directly, or a synthetic placeholder for an admitted off-template
// field with no known type.
func fieldForKey(key Key, template dictionary.EntryList, number, name string) *dictionary.FieldDef {
	if entry, ok := template.ByNumber(number); ok && entry.Kind == dictionary.EntryField {
		return entry.Field
	}
	if key.kind == keyByField {
		return key.field
	}
	if key.kind == keyByValue {
		return key.value.Field
	}
	return &dictionary.FieldDef{Number: number, Name: name, Type: dictionary.TypeString}
}

// markSet records a newly-populated number in extra (and its display
// name) if it is not part of the section's template, preserving
// off-template insertion order.
func (s *Section) markSet(number, name string) {
	if _, exists := s.values[number]; exists {
		return
	}
	if _, ok := s.template.ByNumber(number); ok {
		return
	}
	s.names[number] = name
	s.extra = append(s.extra, number)
}

// Get returns the raw wire value of the field a Key resolves to.
func (s *Section) Get(key Key) (string, error) {
	number, _, err := s.resolve(key, true)
	if err != nil {
		return "", err
	}
	v, ok := s.values[number]
	if !ok {
		return "", ErrFieldNotSet
	}
	fv, ok := v.(*FieldValue)
	if !ok {
		return "", ErrNotAGroup
	}
	return fv.Raw, nil
}

// Contains reports whether a Key resolves to a populated field or group
// in this section. For a ByValue key it is an identity test: it reports
// whether that very FieldValue is the one stored.
func (s *Section) Contains(key Key) bool {
	number, _, err := s.resolve(key, true)
	if err != nil {
		return false
	}
	v, ok := s.values[number]
	if ok && key.kind == keyByValue {
		fv, isField := v.(*FieldValue)
		return isField && fv == key.value
	}
	return ok
}

// Group returns the GroupValue a Key resolves to, creating and storing
// an empty one bound to the template's GroupDef on first access.
func (s *Section) Group(key Key) (*GroupValue, error) {
	entry, ok := key.resolve(s.template)
	if !ok || entry.Kind != dictionary.EntryGroup {
		return nil, ErrNotAGroup
	}
	number := entry.Number()
	if v, ok := s.values[number]; ok {
		gv, ok := v.(*GroupValue)
		if !ok {
			return nil, ErrNotAGroup
		}
		return gv, nil
	}
	gv := NewGroupValue(entry.Group)
	s.markSet(number, entry.Name())
	s.values[number] = gv
	return gv, nil
}

// SetGroup stores a fully-built GroupValue under the tag number a Key
// resolves to.
func (s *Section) SetGroup(key Key, g *GroupValue, opts ...SetOption) error {
	cfg := setConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	number, name, err := s.resolve(key, cfg.ignoreSpec)
	if err != nil {
		return err
	}
	s.markSet(number, name)
	s.values[number] = g
	return nil
}

// Remove deletes the entry a Key resolves to, if any.
func (s *Section) Remove(key Key) {
	number, _, err := s.resolve(key, true)
	if err != nil {
		return
	}
	delete(s.values, number)
	delete(s.names, number)
	for i, n := range s.extra {
		if n == number {
			s.extra = append(s.extra[:i], s.extra[i+1:]...)
			break
		}
	}
}

// Entries returns this section's populated entries in canonical order:
// the schema template's declared order first (skipping unset entries),
// followed by any off-template entries admitted via WithIgnoreSpec in
// the order they were first set.
func (s *Section) Entries() []Entry {
	var out []Entry
	for _, spec := range s.template {
		v, ok := s.values[spec.Number()]
		if !ok {
			continue
		}
		out = append(out, Entry{Name: spec.Name(), Number: spec.Number(), Value: v})
	}
	for _, number := range s.extra {
		v, ok := s.values[number]
		if !ok {
			continue
		}
		out = append(out, Entry{Name: s.names[number], Number: number, Value: v})
	}
	return out
}
