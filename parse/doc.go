// Package parse assembles the flat token stream produced by package
// tokenize into a structured fix.Message: header fields land in the
// message's header section, the message-specific body template governs
// the body, and whatever tokens remain after the last body field
// belongs to the trailer.
//
// Repeating groups are resolved by a delimiter-field rule rather than
// by trusting the NoXxx count field: a group's first template entry
// (recursively, through any nested group) is its delimiter, and every
// time that field's tag recurs in the token stream a new repetition
// begins. The count field's declared value is not kept on the parsed
// message: a group's Count is always the number of repetitions found,
// and parsing never fails or truncates because the declared count
// disagrees with how many repetitions were actually present
// on the wire — most production FIX counterparties get this wrong at
// least once, and a parser that throws the message away over it isn't
// useful in practice.
//
// A tag number with no template entry in its current phase is not an
// error either: if the phase is the message body, it is admitted as an
// off-template field (named Field<N> when the tag isn't in the
// dictionary at all); the first tag that belongs to the trailer ends
// the body and begins trailer parsing.
package parse
