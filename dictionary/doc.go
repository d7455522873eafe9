// Package dictionary loads FIX data dictionaries (per-version XML
// specifications) and materializes them into a read-only Schema: field
// definitions, repeating-group templates, header and trailer field
// orderings, and per-message field orderings.
//
// # Version XML shape
//
// A dictionary file has a root element carrying "type", "major", and
// "minor" attributes (FIX version, e.g. type="FIX" major="4" minor="2")
// and four top-level children, plus an optional fifth, <components>:
//
//	<fix type="FIX" major="4" minor="2">
//	  <fields>
//	    <field number="35" name="MsgType" type="STRING">
//	      <value enum="D" description="ORDER_SINGLE"/>
//	    </field>
//	    ...
//	  </fields>
//	  <header>...</header>
//	  <trailer>...</trailer>
//	  <messages>
//	    <message name="NewOrderSingle" msgtype="D" msgcat="app">...</message>
//	  </messages>
//	  <components>
//	    <component name="Instrument">...</component>
//	  </components>
//	</fix>
//
// <header>, <trailer>, <message> bodies, and <component> bodies all share
// the same child grammar: <field name="X" required="Y|N"/>,
// <group name="NoX" required="Y|N">...</group> (whose children are the
// group's repeating template, in order, the first of which is the
// delimiter field), and <component name="X"/> (spliced inline from
// ./components/component[@name='X'] at load time; components are never
// retained as a runtime entity).
//
// # Registration
//
// LoadVersion and LoadVersionFile each parse one dictionary document and
// return an immutable *VersionSchema. A Catalog holds many versions,
// keyed by both the dotted version string ("FIX.4.2") and its
// dot-stripped alias ("FIX42"), and is safe for concurrent readers once
// registration finishes: Catalog.RegisterVersion and
// Catalog.RegisterVersionFile parse and install in one call, while
// Catalog.Install publishes an already-parsed *VersionSchema directly.
// Every publish swaps in a new schema map rather than mutating one a
// reader may already hold.
package dictionary
