package generator

import "github.com/jwhart/fixgo/dictionary"

// Generator produces a wire-ready value for a field. Implementations
// decide for themselves whether to consult the field's declared enums,
// a default-values table, or some other source of valid data.
type Generator interface {
	// Generate returns a raw wire value suitable for field.
	Generate(field *dictionary.FieldDef) string
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(field *dictionary.FieldDef) string

// Generate calls f.
func (f GeneratorFunc) Generate(field *dictionary.FieldDef) string {
	return f(field)
}

// Registry maps field names to the Generator responsible for producing
// their values. A Registry with no entries for a field simply leaves
// that field unset during Message.Initialize.
type Registry struct {
	byName map[string]Generator
}

// NewRegistry returns an empty Registry.
func NewRegistry() Registry {
	return Registry{byName: make(map[string]Generator)}
}

// Register associates a Generator with a field name, overwriting any
// previously registered Generator for that name.
func (r Registry) Register(fieldName string, g Generator) {
	r.byName[fieldName] = g
}

// Lookup returns the Generator registered for a field name, if any.
func (r Registry) Lookup(fieldName string) (Generator, bool) {
	g, ok := r.byName[fieldName]
	return g, ok
}

// EnumGenerator generates a value by returning the first enum member a
// field declares, falling back to an empty string when the field
// declares none. It is a minimal, deterministic Generator useful for
// tests and examples; production callers will usually register
// something that picks among enums at random or pulls from a
// default-values table instead.
type EnumGenerator struct{}

// Generate implements Generator.
func (EnumGenerator) Generate(field *dictionary.FieldDef) string {
	if field == nil || len(field.Enums) == 0 {
		return ""
	}
	return field.Enums[0].Enum
}
