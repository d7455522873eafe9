// Package tokenize turns a raw FIX byte stream into a flat sequence of
// (tag number, raw value) tokens, the first stage of parsing a message
// and the one place the wire's single irregular construct — the
// length-prefixed RawDataLength/RawData pairing — is handled.
//
// Tokenizing is schema-aware only to the extent of knowing which tag
// numbers are declared LENGTH or DATA fields: everything else (field
// order, repeating groups, header/body/trailer boundaries) is left to
// the structural parser in package parse. A Tokenizer never rejects
// input outright; segments that are empty, missing the '=' separator,
// or tagged with a non-numeric tag are silently discarded, mirroring
// how production FIX engines tolerate stray bytes from flaky
// counterparties rather than drop the whole session over garbage data
// in the stream.
package tokenize
