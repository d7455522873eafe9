package fix

import (
	"strings"
	"testing"

	"github.com/jwhart/fixgo/dictionary"
	"github.com/jwhart/fixgo/generator"
)

func testRegistry() generator.Registry {
	reg := generator.NewRegistry()
	gen := generator.GeneratorFunc(func(field *dictionary.FieldDef) string {
		return "GEN-" + field.Name
	})
	reg.Register("ClOrdID", gen)
	reg.Register("Symbol", gen)
	reg.Register("Side", gen)
	return reg
}

const testDict = `<fix type="FIX" major="4" minor="2">
  <fields>
    <field number="8" name="BeginString" type="STRING"/>
    <field number="9" name="BodyLength" type="LENGTH"/>
    <field number="35" name="MsgType" type="STRING"/>
    <field number="49" name="SenderCompID" type="STRING"/>
    <field number="56" name="TargetCompID" type="STRING"/>
    <field number="10" name="CheckSum" type="STRING"/>
    <field number="11" name="ClOrdID" type="STRING"/>
    <field number="55" name="Symbol" type="STRING"/>
    <field number="54" name="Side" type="CHAR">
      <value enum="1" description="BUY"/>
      <value enum="2" description="SELL"/>
    </field>
    <field number="78" name="NoAllocs" type="NUMINGROUP"/>
    <field number="79" name="AllocAccount" type="STRING"/>
    <field number="80" name="AllocShares" type="QTY"/>
  </fields>
  <header>
    <field name="BeginString" required="Y"/>
    <field name="BodyLength" required="Y"/>
    <field name="MsgType" required="Y"/>
    <field name="SenderCompID" required="Y"/>
    <field name="TargetCompID" required="Y"/>
  </header>
  <trailer>
    <field name="CheckSum" required="Y"/>
  </trailer>
  <messages>
    <message name="NewOrderSingle" msgtype="D" msgcat="app">
      <field name="ClOrdID" required="Y"/>
      <field name="Symbol" required="Y"/>
      <field name="Side" required="N"/>
      <group name="NoAllocs" required="N">
        <field name="AllocAccount" required="Y"/>
        <field name="AllocShares" required="N"/>
      </group>
    </message>
  </messages>
</fix>`

func testSchema(t *testing.T) *dictionary.VersionSchema {
	t.Helper()
	schema, err := dictionary.LoadVersion(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("LoadVersion() error = %v", err)
	}
	return schema
}

func newOrderSingle(t *testing.T) *Message {
	t.Helper()
	schema := testSchema(t)
	def, ok := schema.MessageByType("D")
	if !ok {
		t.Fatal("MessageByType(D) not found")
	}
	return NewMessage(schema, def)
}

func TestSectionSetGetByName(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	if err := msg.Body.Set(ByName("ClOrdID"), "ORD1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := msg.Body.Get(ByName("ClOrdID"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "ORD1" {
		t.Errorf("Get() = %q, want ORD1", got)
	}
}

func TestSectionSetGetByNumber(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	if err := msg.Body.Set(ByNumber("11"), "ORD2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := msg.Body.Get(ByName("ClOrdID"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "ORD2" {
		t.Errorf("Get() = %q, want ORD2", got)
	}
}

func TestSectionSetUnknownKeyRejectedByDefault(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	err := msg.Body.Set(ByName("NotAField"), "x")
	if err != ErrUnknownKey {
		t.Fatalf("Set() error = %v, want ErrUnknownKey", err)
	}
}

func TestSectionSetIgnoreSpecAdmitsOffTemplateField(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	if err := msg.Body.Set(ByNumber("9999"), "zz", WithIgnoreSpec(true)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := msg.Body.Get(ByNumber("9999"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "zz" {
		t.Errorf("Get() = %q, want zz", got)
	}

	entries := msg.Body.Entries()
	if len(entries) != 1 || entries[0].Number != "9999" {
		t.Fatalf("Entries() = %+v, want single off-template entry 9999", entries)
	}
}

func TestSectionGetFieldNotSet(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_, err := msg.Body.Get(ByName("ClOrdID"))
	if err != ErrFieldNotSet {
		t.Fatalf("Get() error = %v, want ErrFieldNotSet", err)
	}
}

func TestSectionContains(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	if msg.Body.Contains(ByName("ClOrdID")) {
		t.Fatal("Contains() = true before Set")
	}
	_ = msg.Body.Set(ByName("ClOrdID"), "ORD1")
	if !msg.Body.Contains(ByName("ClOrdID")) {
		t.Fatal("Contains() = false after Set")
	}
}

func TestSectionRemove(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_ = msg.Body.Set(ByName("ClOrdID"), "ORD1")
	msg.Body.Remove(ByName("ClOrdID"))
	if msg.Body.Contains(ByName("ClOrdID")) {
		t.Fatal("Contains() = true after Remove")
	}
}

func TestSectionEntriesOrderMatchesTemplate(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	// Set out of template order; Entries must still come back in template order.
	_ = msg.Body.Set(ByName("Side"), "1")
	_ = msg.Body.Set(ByName("ClOrdID"), "ORD1")
	_ = msg.Body.Set(ByName("Symbol"), "IBM")

	entries := msg.Body.Entries()
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"ClOrdID", "Symbol", "Side"}
	if len(names) != len(want) {
		t.Fatalf("Entries() names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Entries() names = %v, want %v", names, want)
		}
	}
}

func TestSectionGroupByNameResolvesGroupKind(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	g, err := msg.Body.Group(ByName("NoAllocs"))
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	if g.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", g.Count())
	}

	rep := g.AddRepetition()
	_ = rep.Set(ByName("AllocAccount"), "ACCT1")

	again, err := msg.Body.Group(ByName("NoAllocs"))
	if err != nil {
		t.Fatalf("Group() second call error = %v", err)
	}
	if again.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (same GroupValue returned)", again.Count())
	}
}

func TestSectionGroupOnPlainFieldReturnsErrNotAGroup(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_, err := msg.Body.Group(ByName("ClOrdID"))
	if err != ErrNotAGroup {
		t.Fatalf("Group() error = %v, want ErrNotAGroup", err)
	}
}

func TestGroupValueRepetitionOutOfRange(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	g, _ := msg.Body.Group(ByName("NoAllocs"))
	if _, err := g.Repetition(0); err != ErrRepetitionOutOfRange {
		t.Fatalf("Repetition() error = %v, want ErrRepetitionOutOfRange", err)
	}
}

func TestGroupValueRemoveRepetition(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	g, _ := msg.Body.Group(ByName("NoAllocs"))
	g.AddRepetition()
	g.AddRepetition()
	if err := g.RemoveRepetition(0); err != nil {
		t.Fatalf("RemoveRepetition() error = %v", err)
	}
	if g.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", g.Count())
	}
}

func TestFieldValueEqual(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_ = msg.Body.Set(ByName("ClOrdID"), "ORD1")
	entries := msg.Body.Entries()
	fv := entries[0].Value.(*FieldValue)

	other := NewFieldValue(fv.Field, "ORD1")
	if !fv.Equal(other) {
		t.Error("Equal() = false for same field and raw value")
	}
	different := NewFieldValue(fv.Field, "ORD2")
	if fv.Equal(different) {
		t.Error("Equal() = true for different raw value")
	}
}

func TestFieldValueEnum(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_ = msg.Body.Set(ByName("Side"), "1")
	entries := msg.Body.Entries()
	var fv *FieldValue
	for _, e := range entries {
		if e.Name == "Side" {
			fv = e.Value.(*FieldValue)
		}
	}
	if fv == nil {
		t.Fatal("Side entry not found")
	}
	desc, ok := fv.Enum()
	if !ok || desc != "BUY" {
		t.Errorf("Enum() = (%q, %v), want (BUY, true)", desc, ok)
	}
}

func TestKeyByValueReusesFieldIdentity(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_ = msg.Body.Set(ByName("ClOrdID"), "ORD1")
	got, _ := msg.Body.Get(ByName("ClOrdID"))
	entries := msg.Body.Entries()
	fv := entries[0].Value.(*FieldValue)

	other := newOrderSingle(t)
	if err := other.Body.Set(ByValue(fv), got); err != nil {
		t.Fatalf("Set(ByValue) error = %v", err)
	}
	reread, err := other.Body.Get(ByNumber("11"))
	if err != nil || reread != "ORD1" {
		t.Fatalf("Get() = (%q, %v), want (ORD1, nil)", reread, err)
	}
}

func TestMessageInitializeSkipsProtectedHeaderFields(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	msg.Initialize(false, testRegistry())

	for _, name := range []string{"BeginString", "BodyLength", "MsgType", "SenderCompID", "TargetCompID"} {
		if msg.Header.Contains(ByName(name)) {
			t.Errorf("Initialize() populated protected header field %s", name)
		}
	}
}

func TestMessageInitializePopulatesRequiredBodyFields(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	msg.Initialize(false, testRegistry())

	if !msg.Body.Contains(ByName("ClOrdID")) {
		t.Error("Initialize() did not populate required field ClOrdID")
	}
	if !msg.Body.Contains(ByName("Symbol")) {
		t.Error("Initialize() did not populate required field Symbol")
	}
	if msg.Body.Contains(ByName("Side")) {
		t.Error("Initialize() populated optional field Side when optional=false")
	}
}

func TestMessageInitializeOptionalPopulatesEverything(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	msg.Initialize(true, testRegistry())

	if !msg.Body.Contains(ByName("Side")) {
		t.Error("Initialize(optional=true) did not populate optional field Side")
	}
}

func TestMessageReverseRouteSwapsCompIDs(t *testing.T) {
	t.Parallel()

	msg := newOrderSingle(t)
	_ = msg.Header.Set(ByName("SenderCompID"), "SENDER")
	_ = msg.Header.Set(ByName("TargetCompID"), "TARGET")

	reply := msg.ReverseRoute(msg.Def)

	sender, err := reply.Header.Get(ByName("SenderCompID"))
	if err != nil || sender != "TARGET" {
		t.Errorf("reply SenderCompID = (%q, %v), want (TARGET, nil)", sender, err)
	}
	target, err := reply.Header.Get(ByName("TargetCompID"))
	if err != nil || target != "SENDER" {
		t.Errorf("reply TargetCompID = (%q, %v), want (SENDER, nil)", target, err)
	}
	if reply.Body.Contains(ByName("ClOrdID")) {
		t.Error("reply body should be empty")
	}
}
