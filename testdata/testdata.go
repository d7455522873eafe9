// Package testdata provides an embedded FIX.4.2 data dictionary and a
// set of golden wire messages for testing the fixgo codec.
package testdata

import (
	"embed"
	"fmt"
)

//go:embed fix42.xml *.fix malformed/*.fix
var FS embed.FS

// File names of the bundled fixtures.
const (
	FileDictionary = "fix42.xml"

	FileNewOrderSingle = "new_order_single.fix"
	FileMassQuote      = "mass_quote.fix"
	FileAllocation     = "allocation_clean.fix"
	FileLogonRawData   = "logon_rawdata.fix"

	FileAllocationGarbage = "malformed/allocation_garbage.fix"
	FileUnknownMsgType    = "malformed/unknown_msgtype.fix"
	FileLogonUnderLength  = "malformed/logon_underlength.fix"
	FileLogonOverLength   = "malformed/logon_overlength.fix"
)

// LoadDictionary returns the bundled FIX.4.2 data dictionary XML.
func LoadDictionary() ([]byte, error) {
	return LoadFile(FileDictionary)
}

// LoadNewOrderSingle returns a simple NewOrderSingle round-trip fixture.
func LoadNewOrderSingle() ([]byte, error) {
	return LoadFile(FileNewOrderSingle)
}

// LoadMassQuote returns a MassQuote fixture with two NoQuoteSets, each
// carrying two NoQuoteEntries.
func LoadMassQuote() ([]byte, error) {
	return LoadFile(FileMassQuote)
}

// LoadAllocation returns a clean AllocationInstruction fixture with two
// NoOrders and two NoAllocs repetitions; it carries no NoMiscFees group.
func LoadAllocation() ([]byte, error) {
	return LoadFile(FileAllocation)
}

// LoadLogonRawData returns a Logon fixture whose RawData payload embeds
// a literal SOH byte, with RawDataLength set to the payload's true
// length.
func LoadLogonRawData() ([]byte, error) {
	return LoadFile(FileLogonRawData)
}

// LoadAllocationGarbage returns the same Allocation content as
// LoadAllocation with injected malformed segments (empty, bare "=",
// non-numeric tag, unknown tag number) interleaved between valid
// fields.
func LoadAllocationGarbage() ([]byte, error) {
	return LoadFile(FileAllocationGarbage)
}

// LoadUnknownMsgType returns a message carrying otherwise-valid
// Allocation fields under an undeclared MsgType code.
func LoadUnknownMsgType() ([]byte, error) {
	return LoadFile(FileUnknownMsgType)
}

// LoadLogonUnderLength returns a Logon fixture whose RawDataLength is
// shorter than the RawData payload actually present on the wire.
func LoadLogonUnderLength() ([]byte, error) {
	return LoadFile(FileLogonUnderLength)
}

// LoadLogonOverLength returns a Logon fixture whose RawDataLength is
// longer than the RawData payload actually present on the wire, long
// enough to absorb the trailing CheckSum field.
func LoadLogonOverLength() ([]byte, error) {
	return LoadFile(FileLogonOverLength)
}

// LoadFile loads any bundled fixture by its embedded path.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("testdata: loading %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads a bundled fixture and panics on error. Intended for
// test setup, where a missing fixture should halt the test immediately.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}
