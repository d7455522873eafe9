// Package validate performs structural, schema-conformance checks on a
// parsed or programmatically built fix.Message: every required field
// and group the message's template declares is present, and every group
// repetition carries its own required fields. Populated fields outside
// the template are not checked, whether or not the schema declares
// them. It does
// not implement business-rule validation (cross-field consistency,
// session-state rules, market-specific constraints) — that is
// explicitly the concern of the application embedding this package,
// not the wire protocol codec.
package validate
