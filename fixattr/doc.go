// Package fixattr is an ergonomic, non-core convenience layer over
// fix.Section: it lets a caller populate or read a plain Go struct
// tagged with field names or tag numbers instead of chaining
// fix.ByName/fix.ByNumber lookups by hand. It is a thin wrapper, not
// part of the wire codec — everything it does is expressible directly
// through fix.Section, dictionary.EntryList, and fix.Key.
package fixattr
