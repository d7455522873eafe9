package fix

import "github.com/jwhart/fixgo/dictionary"

// GroupValue is a repeating group: zero or more repetitions, each an
// ordered Section scoped to the group's template. The wire count field
// (NoXxx) is derived from len(Repetitions) at encode time rather than
// stored independently, so it can never drift out of sync with the
// repetitions actually present.
type GroupValue struct {
	Def         *dictionary.GroupDef
	Repetitions []*Section
}

func (*GroupValue) isValue() {}

// NewGroupValue creates an empty GroupValue bound to a group template.
func NewGroupValue(def *dictionary.GroupDef) *GroupValue {
	return &GroupValue{Def: def}
}

// Count returns the number of repetitions currently present.
func (g *GroupValue) Count() int {
	return len(g.Repetitions)
}

// AddRepetition appends and returns a new, empty repetition section.
func (g *GroupValue) AddRepetition() *Section {
	sec := NewSection(g.Def.Template)
	g.Repetitions = append(g.Repetitions, sec)
	return sec
}

// Repetition returns the repetition at a zero-based index.
func (g *GroupValue) Repetition(index int) (*Section, error) {
	if index < 0 || index >= len(g.Repetitions) {
		return nil, ErrRepetitionOutOfRange
	}
	return g.Repetitions[index], nil
}

// RemoveRepetition deletes the repetition at a zero-based index.
func (g *GroupValue) RemoveRepetition(index int) error {
	if index < 0 || index >= len(g.Repetitions) {
		return ErrRepetitionOutOfRange
	}
	g.Repetitions = append(g.Repetitions[:index], g.Repetitions[index+1:]...)
	return nil
}
