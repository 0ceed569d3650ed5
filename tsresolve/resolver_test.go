package tsresolve_test

import (
	"testing"

	"github.com/juusaw/maptype/diagnostic"
	"github.com/juusaw/maptype/typemap"
)

// classifyDecl runs the classifier over a named declaration from inline
// source and returns the resulting category.
func classifyDecl(t *testing.T, source, name string) (typemap.Category, *diagnostic.Collector) {
	t.Helper()
	sess, diags := newTestSession(t, source, nil)
	cat, err := typemap.Classify(declType(t, sess, name), sess.Resolver(), diags)
	if err != nil {
		t.Fatalf("Classify(%s) failed: %v", name, err)
	}
	return cat, diags
}

func TestResolvePrimitives(t *testing.T) {
	source := `
export type S = string;
export type N = number;
export type B = boolean;
export type Nu = null;
export type U = undefined;
`
	tests := []struct {
		name string
		want typemap.Kind
	}{
		{"S", typemap.KindString},
		{"N", typemap.KindNumber},
		{"B", typemap.KindBoolean},
		{"Nu", typemap.KindNull},
		{"U", typemap.KindUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := classifyDecl(t, source, tt.name)
			if cat.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", cat.Kind, tt.want)
			}
		})
	}
}

func TestResolveLiterals(t *testing.T) {
	source := `
export type S = "hello";
export type N = 42;
export type B = true;
`
	tests := []struct{ name, want string }{
		{"S", `"hello"`},
		{"N", "42"},
		{"B", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := classifyDecl(t, source, tt.name)
			if cat.Kind != typemap.KindLiteral {
				t.Fatalf("Kind = %v, want literal", cat.Kind)
			}
			if cat.Literal != tt.want {
				t.Errorf("Literal = %q, want %q", cat.Literal, tt.want)
			}
		})
	}
}

// The global boolean type is internally a true | false union. It must
// classify as the boolean primitive, never decompose.
func TestResolveBooleanIsNotAUnion(t *testing.T) {
	cat, _ := classifyDecl(t, `export type B = boolean;`, "B")
	if cat.Kind != typemap.KindBoolean {
		t.Errorf("Kind = %v, want boolean", cat.Kind)
	}
}

func TestResolveUnionOfLiterals(t *testing.T) {
	sess, diags := newTestSession(t, `export type AB = "a" | "b";`, nil)
	res := sess.Resolver()

	cat, err := typemap.Classify(declType(t, sess, "AB"), res, diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindUnion {
		t.Fatalf("Kind = %v, want union", cat.Kind)
	}
	if len(cat.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(cat.Members))
	}

	var lits []string
	for _, m := range cat.Members {
		mc, err := typemap.Classify(m, res, diags)
		if err != nil {
			t.Fatalf("member classify failed: %v", err)
		}
		if mc.Kind != typemap.KindLiteral {
			t.Fatalf("member Kind = %v, want literal", mc.Kind)
		}
		lits = append(lits, mc.Literal)
	}
	if lits[0] != `"a"` || lits[1] != `"b"` {
		t.Errorf("member order = %v, want [\"a\" \"b\"]", lits)
	}
}

func TestResolveIntersection(t *testing.T) {
	source := `export type I = { a: string } & { b: number };`
	cat, _ := classifyDecl(t, source, "I")
	if cat.Kind != typemap.KindIntersection {
		t.Fatalf("Kind = %v, want intersection", cat.Kind)
	}
	if len(cat.Members) != 2 {
		t.Errorf("got %d members, want 2", len(cat.Members))
	}
}

func TestResolveRecordAlias(t *testing.T) {
	sess, diags := newTestSession(t, `export type R = Record<string, number>;`, nil)
	res := sess.Resolver()

	cat, err := typemap.Classify(declType(t, sess, "R"), res, diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindRecord {
		t.Fatalf("Kind = %v, want record", cat.Kind)
	}

	keyCat, err := typemap.Classify(cat.Key, res, diags)
	if err != nil {
		t.Fatalf("key classify failed: %v", err)
	}
	if keyCat.Kind != typemap.KindString {
		t.Errorf("key Kind = %v, want string", keyCat.Kind)
	}
	valCat, err := typemap.Classify(cat.Value, res, diags)
	if err != nil {
		t.Fatalf("value classify failed: %v", err)
	}
	if valCat.Kind != typemap.KindNumber {
		t.Errorf("value Kind = %v, want number", valCat.Kind)
	}
}

func TestResolveArrayVsTuple(t *testing.T) {
	source := `
export type Arr = string[];
export type Tup = [string, number];
`
	sess, diags := newTestSession(t, source, nil)
	res := sess.Resolver()

	arr, err := typemap.Classify(declType(t, sess, "Arr"), res, diags)
	if err != nil {
		t.Fatalf("Classify(Arr) failed: %v", err)
	}
	if arr.Kind != typemap.KindArray {
		t.Fatalf("Arr Kind = %v, want array", arr.Kind)
	}
	elem, err := typemap.Classify(arr.Elem, res, diags)
	if err != nil {
		t.Fatalf("elem classify failed: %v", err)
	}
	if elem.Kind != typemap.KindString {
		t.Errorf("Arr elem Kind = %v, want string", elem.Kind)
	}

	tup, err := typemap.Classify(declType(t, sess, "Tup"), res, diags)
	if err != nil {
		t.Fatalf("Classify(Tup) failed: %v", err)
	}
	if tup.Kind != typemap.KindTuple {
		t.Fatalf("Tup Kind = %v, want tuple", tup.Kind)
	}
	if len(tup.Members) != 2 {
		t.Errorf("Tup has %d members, want 2", len(tup.Members))
	}
}

func TestResolveTupleRestDegrades(t *testing.T) {
	cat, diags := classifyDecl(t, `export type T = [string, ...number[]];`, "T")
	if cat.Kind != typemap.KindTuple {
		t.Fatalf("Kind = %v, want tuple", cat.Kind)
	}
	if len(cat.Members) != 1 {
		t.Errorf("got %d fixed members, want 1", len(cat.Members))
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1: %s", diags.WarningCount(), diags.FormatAll())
	}
}

func TestResolveIndexSignatures(t *testing.T) {
	source := `
export type ByName = { [key: string]: number };
export type ByIdx = { [idx: number]: string };
export type Both = { [key: string]: number; [idx: number]: number };
`
	sess, diags := newTestSession(t, source, nil)
	res := sess.Resolver()

	tests := []struct {
		name string
		want typemap.Kind
	}{
		{"ByName", typemap.KindStringIndexObject},
		{"ByIdx", typemap.KindNumberIndexObject},
		// A type with both signatures resolves through the numeric one.
		{"Both", typemap.KindNumberIndexObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := typemap.Classify(declType(t, sess, tt.name), res, diags)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if cat.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", cat.Kind, tt.want)
			}
		})
	}
}

func TestResolveCallableWarns(t *testing.T) {
	cat, diags := classifyDecl(t, `export type F = (x: string) => number;`, "F")
	if cat.Kind != typemap.KindFunction {
		t.Fatalf("Kind = %v, want function", cat.Kind)
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1", diags.WarningCount())
	}
}

func TestResolveBasicObjects(t *testing.T) {
	source := `
export type Keyword = object;
export type Empty = {};
`
	for _, name := range []string{"Keyword", "Empty"} {
		t.Run(name, func(t *testing.T) {
			cat, _ := classifyDecl(t, source, name)
			if cat.Kind != typemap.KindEmptyObject {
				t.Errorf("Kind = %v, want empty object", cat.Kind)
			}
		})
	}
}

func TestResolveVoidAnyUnknown(t *testing.T) {
	source := `
export type V = void;
export type A = any;
export type U = unknown;
`
	tests := []struct {
		name string
		want typemap.Kind
	}{
		{"V", typemap.KindVoid},
		{"A", typemap.KindUnknown},
		{"U", typemap.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := classifyDecl(t, source, tt.name)
			if cat.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", cat.Kind, tt.want)
			}
		})
	}
}

// An optional member's declared type must come back without the implicit
// undefined widening strict mode adds.
func TestResolveOptionalPropertyType(t *testing.T) {
	source := `
export interface Test {
  foo: string;
  bar?: number;
}
`
	sess, diags := newTestSession(t, source, nil)
	res := sess.Resolver()

	cat, err := typemap.Classify(declType(t, sess, "Test"), res, diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindObject {
		t.Fatalf("Kind = %v, want object", cat.Kind)
	}
	if len(cat.Required) != 1 || cat.Required[0].Key != "foo" {
		t.Fatalf("Required = %v, want [foo]", cat.Required)
	}
	if len(cat.Optional) != 1 || cat.Optional[0].Key != "bar" {
		t.Fatalf("Optional = %v, want [bar]", cat.Optional)
	}

	barCat, err := typemap.Classify(cat.Optional[0].Type, res, diags)
	if err != nil {
		t.Fatalf("bar classify failed: %v", err)
	}
	if barCat.Kind != typemap.KindNumber {
		t.Errorf("bar Kind = %v, want number (not number | undefined)", barCat.Kind)
	}
}

func TestResolveTypeText(t *testing.T) {
	source := `
export type S = string;
export type L = "x";
export interface Named { a: string; }
`
	sess, _ := newTestSession(t, source, nil)
	res := sess.Resolver()

	tests := []struct{ name, want string }{
		{"S", "string"},
		{"L", `"x"`},
		{"Named", "Named"},
	}
	for _, tt := range tests {
		if got := res.TypeText(declType(t, sess, tt.name)); got != tt.want {
			t.Errorf("TypeText(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
