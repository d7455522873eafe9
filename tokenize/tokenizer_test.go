package tokenize

import (
	"strings"
	"testing"

	"github.com/jwhart/fixgo/dictionary"
)

const dataFieldDict = `<fix type="FIX" major="4" minor="2">
  <fields>
    <field number="8" name="BeginString" type="STRING"/>
    <field number="35" name="MsgType" type="STRING"/>
    <field number="95" name="RawDataLength" type="LENGTH"/>
    <field number="96" name="RawData" type="DATA"/>
    <field number="10" name="CheckSum" type="STRING"/>
  </fields>
  <header/>
  <trailer/>
  <messages/>
</fix>`

func mustSchema(t *testing.T) *dictionary.VersionSchema {
	t.Helper()
	schema, err := dictionary.LoadVersion(strings.NewReader(dataFieldDict))
	if err != nil {
		t.Fatalf("LoadVersion() error = %v", err)
	}
	return schema
}

func TestTokenizeSimple(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	input := []byte("8=FIX.4.2\x0135=D\x0110=128\x01")
	tokens := tk.Tokenize(input)

	want := []Token{
		{Number: "8", Value: []byte("FIX.4.2")},
		{Number: "35", Value: []byte("D")},
		{Number: "10", Value: []byte("128")},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d (%+v)", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Number != want[i].Number || string(tok.Value) != string(want[i].Value) {
			t.Fatalf("tokens[%d] = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestTokenizeRawDataContainsDelimiter(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	// RawData's 5-byte value embeds a literal SOH.
	input := append([]byte("95=5\x0196="), []byte{'a', 'b', 0x01, 'c', 'd'}...)
	input = append(input, 0x01)
	input = append(input, []byte("10=000\x01")...)

	tokens := tk.Tokenize(input)
	if len(tokens) != 3 {
		t.Fatalf("len(tokens) = %d, want 3 (%+v)", len(tokens), tokens)
	}
	if tokens[1].Number != "96" || string(tokens[1].Value) != "ab\x01cd" {
		t.Fatalf("RawData token = %+v, want Value ab\\x01cd", tokens[1])
	}
	if tokens[2].Number != "10" || string(tokens[2].Value) != "000" {
		t.Fatalf("CheckSum token = %+v", tokens[2])
	}
}

func TestTokenizeOverLengthAbsorbsRemainder(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	// Declares 100 bytes of RawData but only 6 remain; the tokenizer
	// absorbs everything through EOF rather than erroring, including
	// what would otherwise have been the trailing CheckSum.
	input := []byte("95=100\x0196=abcdef\x0110=099\x01")
	tokens := tk.Tokenize(input)

	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2 (%+v)", len(tokens), tokens)
	}
	if tokens[1].Number != "96" {
		t.Fatalf("tokens[1].Number = %q, want 96", tokens[1].Number)
	}
	if string(tokens[1].Value) != "abcdef\x0110=099\x01" {
		t.Fatalf("tokens[1].Value = %q, want to absorb remainder", tokens[1].Value)
	}
}

func TestTokenizeUnderLengthTruncatesAndResumes(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	// Declares only 2 bytes of RawData though more text follows before
	// the next delimiter; the tokenizer truncates to the declared length
	// and resumes scanning at the next delimiter, discarding the
	// unconsumed remainder of that segment.
	input := []byte("95=2\x0196=abcdef\x0110=099\x01")
	tokens := tk.Tokenize(input)

	if len(tokens) != 3 {
		t.Fatalf("len(tokens) = %d, want 3 (%+v)", len(tokens), tokens)
	}
	if tokens[0].Number != "95" {
		t.Fatalf("tokens[0].Number = %q, want 95", tokens[0].Number)
	}
	if string(tokens[1].Value) != "ab" {
		t.Fatalf("tokens[1].Value = %q, want ab", tokens[1].Value)
	}
	if tokens[2].Number != "10" || string(tokens[2].Value) != "099" {
		t.Fatalf("tokens[2] = %+v, want CheckSum 099", tokens[2])
	}
}

func TestTokenizeMalformedSegmentsDiscarded(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	tests := []struct {
		name  string
		input string
	}{
		{"empty segment", "8=FIX.4.2\x01\x0135=D\x01"},
		{"missing equals", "8=FIX.4.2\x01GARBAGE\x0135=D\x01"},
		{"non-numeric tag", "8=FIX.4.2\x01AB=1\x0135=D\x01"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens := tk.Tokenize([]byte(tt.input))
			if len(tokens) != 2 {
				t.Fatalf("len(tokens) = %d, want 2 (%+v)", len(tokens), tokens)
			}
			if tokens[0].Number != "8" || tokens[1].Number != "35" {
				t.Fatalf("tokens = %+v, want [8 35]", tokens)
			}
		})
	}
}

func TestTokenizeNoTrailingDelimiter(t *testing.T) {
	t.Parallel()

	schema := mustSchema(t)
	tk := New(schema)

	tokens := tk.Tokenize([]byte("8=FIX.4.2\x0135=D"))
	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2 (%+v)", len(tokens), tokens)
	}
	if string(tokens[1].Value) != "D" {
		t.Fatalf("tokens[1].Value = %q, want D", tokens[1].Value)
	}
}
