package validate

import (
	"github.com/jwhart/fixgo/dictionary"
	"github.com/jwhart/fixgo/fix"
)

// Message checks a message's header, body, and trailer against their
// schema templates, returning every structural violation found. A nil
// slice means the message is structurally conformant.
func Message(msg *fix.Message) []error {
	var violations []error
	violations = append(violations, checkSection("header", msg.Header)...)
	violations = append(violations, checkSection("body", msg.Body)...)
	violations = append(violations, checkSection("trailer", msg.Trailer)...)
	return violations
}

// checkSection verifies every required entry in sec's template is
// present, and recurses into any populated group's repetitions.
func checkSection(label string, sec *fix.Section) []error {
	var violations []error

	for _, spec := range sec.Template() {
		key := fix.ByNumber(spec.Number())
		present := sec.Contains(key)

		if !present {
			if spec.Required {
				violations = append(violations, &Violation{
					Section: label, Number: spec.Number(), Name: spec.Name(),
					Repetition: -1, Cause: ErrMissingRequiredField,
				})
			}
			continue
		}

		if spec.Kind != dictionary.EntryGroup {
			continue
		}

		gv, err := sec.Group(key)
		if err != nil {
			continue
		}
		for i, rep := range gv.Repetitions {
			for _, v := range checkSection(label+"."+spec.Name(), rep) {
				violations = append(violations, reindex(v, i))
			}
		}
	}

	return violations
}

// reindex stamps a repetition index onto a Violation produced by a
// recursive checkSection call, unless a deeper nested group already
// stamped the index of the repetition the violation was found in.
func reindex(err error, index int) error {
	v, ok := err.(*Violation)
	if !ok {
		return err
	}
	if v.Repetition < 0 {
		v.Repetition = index
	}
	return v
}
