package typemap_test

import (
	"errors"
	"testing"

	"github.com/juusaw/maptype/diagnostic"
	"github.com/juusaw/maptype/typemap"
)

func classify(t *testing.T, h *fakeType) typemap.Category {
	t.Helper()
	cat, err := typemap.Classify(h, newFakeResolver(), nil)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	return cat
}

func TestClassifyLiteral(t *testing.T) {
	cat := classify(t, lit(`"a"`))
	if cat.Kind != typemap.KindLiteral || cat.Literal != `"a"` {
		t.Errorf("got %v %q, want literal %q", cat.Kind, cat.Literal, `"a"`)
	}
}

func TestClassifyPrimitives(t *testing.T) {
	tests := []struct {
		text string
		want typemap.Kind
	}{
		{"string", typemap.KindString},
		{"number", typemap.KindNumber},
		{"boolean", typemap.KindBoolean},
		{"null", typemap.KindNull},
		{"undefined", typemap.KindUndefined},
	}
	for _, tt := range tests {
		if got := classify(t, prim(tt.text)).Kind; got != tt.want {
			t.Errorf("classify(%s) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassifyUnrecognizedPrimitiveFails(t *testing.T) {
	_, err := typemap.Classify(prim("bigint"), newFakeResolver(), nil)
	if err == nil {
		t.Fatal("expected error for unrecognized primitive name")
	}
}

func TestClassifyBasicObject(t *testing.T) {
	if got := classify(t, &fakeType{basic: true}).Kind; got != typemap.KindEmptyObject {
		t.Errorf("got %v, want %v", got, typemap.KindEmptyObject)
	}
}

func TestClassifyRecord(t *testing.T) {
	key, value := prim("string"), prim("number")
	cat := classify(t, &fakeType{recordKey: key, recordValue: value})
	if cat.Kind != typemap.KindRecord {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindRecord)
	}
	if cat.Key != typemap.Handle(key) || cat.Value != typemap.Handle(value) {
		t.Error("record key/value handles not preserved")
	}
}

func TestClassifyUnionPreservesOrder(t *testing.T) {
	a, b, c := lit(`"a"`), lit(`"b"`), lit(`"c"`)
	cat := classify(t, &fakeType{union: []*fakeType{c, a, b}})
	if cat.Kind != typemap.KindUnion {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindUnion)
	}
	want := []*fakeType{c, a, b}
	for i, m := range cat.Members {
		if m != typemap.Handle(want[i]) {
			t.Errorf("member %d out of order", i)
		}
	}
}

// A literal that is also reported as a union member container must classify
// as a literal: step order is the contract.
func TestClassifyLiteralBeforeUnion(t *testing.T) {
	h := &fakeType{isLiteral: true, literal: "0", union: []*fakeType{prim("string")}}
	if got := classify(t, h).Kind; got != typemap.KindLiteral {
		t.Errorf("got %v, want %v", got, typemap.KindLiteral)
	}
}

// A Record alias resolves as a union of its value shapes in some checkers;
// the Record check must win.
func TestClassifyRecordBeforeUnion(t *testing.T) {
	h := &fakeType{
		recordKey:   prim("string"),
		recordValue: prim("number"),
		union:       []*fakeType{prim("number")},
	}
	if got := classify(t, h).Kind; got != typemap.KindRecord {
		t.Errorf("got %v, want %v", got, typemap.KindRecord)
	}
}

// A tuple also exposes a numeric index accessor; it must classify as a
// tuple, never as an array.
func TestClassifyTupleBeforeArray(t *testing.T) {
	elem := prim("string")
	h := &fakeType{isTuple: true, tuple: []*fakeType{elem, prim("number")}, arrayElem: elem}
	cat := classify(t, h)
	if cat.Kind != typemap.KindTuple {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindTuple)
	}
	if len(cat.Members) != 2 {
		t.Errorf("got %d members, want 2", len(cat.Members))
	}
}

func TestClassifyTupleRestWarnsAndDegrades(t *testing.T) {
	diags := diagnostic.NewCollector()
	h := &fakeType{isTuple: true, tuple: []*fakeType{prim("string")}, tupleRest: true}
	cat, err := typemap.Classify(h, newFakeResolver(), diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindTuple || len(cat.Members) != 1 {
		t.Errorf("got %v with %d members, want tuple with 1", cat.Kind, len(cat.Members))
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1", diags.WarningCount())
	}
}

// An object with a string index signature and enumerable properties must
// classify by its index signature.
func TestClassifyStringIndexBeforeObject(t *testing.T) {
	target := prim("number")
	h := &fakeType{
		strIndex: target,
		props:    []fakeProp{{name: "x", typ: prim("number")}},
	}
	cat := classify(t, h)
	if cat.Kind != typemap.KindStringIndexObject {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindStringIndexObject)
	}
	if cat.Elem != typemap.Handle(target) {
		t.Error("element handle not preserved")
	}
}

// With both index signatures present the string index check does not apply.
func TestClassifyBothIndexSignatures(t *testing.T) {
	h := &fakeType{strIndex: prim("number"), numIndex: prim("string")}
	if got := classify(t, h).Kind; got != typemap.KindNumberIndexObject {
		t.Errorf("got %v, want %v", got, typemap.KindNumberIndexObject)
	}
}

func TestClassifyCallable(t *testing.T) {
	diags := diagnostic.NewCollector()
	cat, err := typemap.Classify(&fakeType{callable: true}, newFakeResolver(), diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindFunction {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindFunction)
	}
	if len(cat.Args) != 0 || cat.Return != nil {
		t.Error("function payloads must stay unresolved")
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1", diags.WarningCount())
	}
}

func TestClassifyObjectPartition(t *testing.T) {
	h := &fakeType{props: []fakeProp{
		{name: "foo", typ: prim("string")},
		{name: "bar", optional: true, typ: prim("number")},
		{name: "baz", typ: prim("boolean")},
	}}
	cat := classify(t, h)
	if cat.Kind != typemap.KindObject {
		t.Fatalf("got %v, want %v", cat.Kind, typemap.KindObject)
	}
	if len(cat.Required) != 2 || cat.Required[0].Key != "foo" || cat.Required[1].Key != "baz" {
		t.Errorf("required = %v, want [foo baz]", memberKeys(cat.Required))
	}
	if len(cat.Optional) != 1 || cat.Optional[0].Key != "bar" {
		t.Errorf("optional = %v, want [bar]", memberKeys(cat.Optional))
	}
}

func TestClassifyVoidAndUnknown(t *testing.T) {
	if got := classify(t, &fakeType{isVoid: true}).Kind; got != typemap.KindVoid {
		t.Errorf("void: got %v", got)
	}
	if got := classify(t, &fakeType{isAny: true}).Kind; got != typemap.KindUnknown {
		t.Errorf("any: got %v, want %v", got, typemap.KindUnknown)
	}
	if got := classify(t, &fakeType{isUnknown: true}).Kind; got != typemap.KindUnknown {
		t.Errorf("unknown: got %v, want %v", got, typemap.KindUnknown)
	}
}

func TestClassifyFailureCarriesFlags(t *testing.T) {
	_, err := typemap.Classify(&fakeType{text: "esoteric", flags: 0b1101}, newFakeResolver(), nil)
	var cerr *typemap.ClassificationError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ClassificationError", err)
	}
	want := []uint32{8, 4, 1}
	if len(cerr.Flags) != len(want) {
		t.Fatalf("flags = %v, want %v", cerr.Flags, want)
	}
	for i, f := range cerr.Flags {
		if f != want[i] {
			t.Errorf("flags[%d] = %d, want %d", i, f, want[i])
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	res := newFakeResolver()
	h := &fakeType{union: []*fakeType{lit(`"a"`), lit(`"b"`)}}
	first, err := typemap.Classify(h, res, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := typemap.Classify(h, res, nil)
		if err != nil {
			t.Fatal(err)
		}
		if again.Kind != first.Kind || len(again.Members) != len(first.Members) {
			t.Fatalf("classification changed on call %d", i+2)
		}
	}
}

func TestPartitionCompleteAndDisjoint(t *testing.T) {
	h := &fakeType{props: []fakeProp{
		{name: "a", typ: prim("string")},
		{name: "b", optional: true, typ: prim("string")},
		{name: "c", typ: prim("string")},
		{name: "d", optional: true, typ: prim("string")},
	}}
	required, optional := typemap.Partition(h, newFakeResolver())

	seen := make(map[string]bool)
	for _, m := range append(append([]typemap.Member{}, required...), optional...) {
		if seen[m.Key] {
			t.Errorf("key %q appears in both groups", m.Key)
		}
		seen[m.Key] = true
	}
	for _, key := range []string{"a", "b", "c", "d"} {
		if !seen[key] {
			t.Errorf("key %q missing from partition", key)
		}
	}
}

func memberKeys(members []typemap.Member) []string {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key
	}
	return keys
}
