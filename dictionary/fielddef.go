package dictionary

// DataType classifies the wire representation of a field's value, as
// declared by the dictionary's <field type="..."> attribute.
type DataType string

// Data types recognized by the loader. Unrecognized type strings are kept
// verbatim as a DataType rather than rejected — the codec only special-cases
// Length and Data (the RawDataLength/RawData pairing rule in tokenize).
const (
	TypeString       DataType = "STRING"
	TypeChar         DataType = "CHAR"
	TypeInt          DataType = "INT"
	TypeLength       DataType = "LENGTH"
	TypeData         DataType = "DATA"
	TypePrice        DataType = "PRICE"
	TypePriceOffset  DataType = "PRICEOFFSET"
	TypeAmt          DataType = "AMT"
	TypeQty          DataType = "QTY"
	TypeCurrency     DataType = "CURRENCY"
	TypeMultipleVal  DataType = "MULTIPLEVALUESTRING"
	TypeExchange     DataType = "EXCHANGE"
	TypeUTCTimestamp DataType = "UTCTIMESTAMP"
	TypeBoolean      DataType = "BOOLEAN"
	TypeLocalMktDate DataType = "LOCALMKTDATE"
	TypeUTCDate      DataType = "UTCDATEONLY"
	TypeUTCTimeOnly  DataType = "UTCTIMEONLY"
	TypeMonthYear    DataType = "MONTHYEAR"
	TypeFloat        DataType = "FLOAT"
	TypePercentage   DataType = "PERCENTAGE"
	TypeSeqNum       DataType = "SEQNUM"
	TypeNumInGroup   DataType = "NUMINGROUP"
)

// EnumValue is one <value enum="..." description="..."/> child of a field
// definition.
type EnumValue struct {
	Enum        string
	Description string
}

// FieldDef describes one named, numbered FIX field and its declared wire
// value enumeration, shared by reference across every template that
// references it (header, trailer, message bodies, group templates).
type FieldDef struct {
	// Number is the field's decimal tag number, as it appears on the wire.
	Number string
	// Name is the field's dictionary name, e.g. "ClOrdID".
	Name string
	// Type is the field's declared data type.
	Type DataType
	// Enums holds the field's wire-value to description mapping, in
	// declaration order. Nil if the field declares no enumeration.
	Enums []EnumValue
}

// EnumDescription returns the description for a wire value, and whether
// the field declares that value at all.
func (f *FieldDef) EnumDescription(value string) (string, bool) {
	for _, e := range f.Enums {
		if e.Enum == value {
			return e.Description, true
		}
	}
	return "", false
}

// IsLength reports whether this field is a RawDataLength-style length
// prefix for a following DATA field.
func (f *FieldDef) IsLength() bool {
	return f.Type == TypeLength
}

// IsData reports whether this field is a length-prefixed binary DATA
// field such as RawData or SecureData.
func (f *FieldDef) IsData() bool {
	return f.Type == TypeData
}
