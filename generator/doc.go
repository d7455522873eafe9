// Package generator defines the pluggable interface Message.Initialize
// uses to populate unset fields with valid values. The codec ships no
// random-value generators — picking a valid random ClOrdID, a plausible
// UTCTIMESTAMP, or an enum member is an application concern, not a wire
// protocol concern — so this package is a registry, an interface, and
// one deterministic generator (EnumGenerator, which returns a field's
// first declared enum). Callers that want auto-initialization register their own
// Generator implementations, typically one per field name or one
// shared implementation keyed by dictionary.DataType.
package generator
