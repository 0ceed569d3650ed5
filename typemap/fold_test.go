package typemap_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/juusaw/maptype/typemap"
)

// sexprHandlers reduces every category to a small s-expression string,
// expanding every thunk. Compact enough to assert on whole trees.
func sexprHandlers() typemap.TypeMap[string] {
	leaf := func(s string) func() (string, error) {
		return func() (string, error) { return s, nil }
	}
	expand := func(members []typemap.Thunk[string]) ([]string, error) {
		out := make([]string, len(members))
		for i, m := range members {
			s, err := m()
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	}
	group := func(props []typemap.Prop[string]) (string, error) {
		parts := make([]string, len(props))
		for i, p := range props {
			s, err := p.Type()
			if err != nil {
				return "", err
			}
			parts[i] = p.Key + ":" + s
		}
		return strings.Join(parts, " "), nil
	}

	return typemap.TypeMap[string]{
		Literal:     func(raw string) (string, error) { return "lit:" + raw, nil },
		String:      leaf("string"),
		Number:      leaf("number"),
		Boolean:     leaf("boolean"),
		Null:        leaf("null"),
		Undefined:   leaf("undefined"),
		Void:        leaf("void"),
		Unknown:     leaf("unknown"),
		EmptyObject: leaf("{}"),
		StringIndexObject: func(elem typemap.Thunk[string]) (string, error) {
			e, err := elem()
			if err != nil {
				return "", err
			}
			return "(sindex " + e + ")", nil
		},
		NumberIndexObject: func(elem typemap.Thunk[string]) (string, error) {
			e, err := elem()
			if err != nil {
				return "", err
			}
			return "(nindex " + e + ")", nil
		},
		Record: func(key, value typemap.Thunk[string]) (string, error) {
			k, err := key()
			if err != nil {
				return "", err
			}
			v, err := value()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("(record %s %s)", k, v), nil
		},
		Object: func(required, optional []typemap.Prop[string]) (string, error) {
			req, err := group(required)
			if err != nil {
				return "", err
			}
			opt, err := group(optional)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("(object req[%s] opt[%s])", req, opt), nil
		},
		Function: func(args []typemap.Thunk[string], ret typemap.Thunk[string]) (string, error) {
			return "(fn)", nil
		},
		Array: func(elem typemap.Thunk[string]) (string, error) {
			e, err := elem()
			if err != nil {
				return "", err
			}
			return "(array " + e + ")", nil
		},
		Union: func(members []typemap.Thunk[string]) (string, error) {
			ms, err := expand(members)
			if err != nil {
				return "", err
			}
			return "(union " + strings.Join(ms, " ") + ")", nil
		},
		Intersection: func(members []typemap.Thunk[string]) (string, error) {
			ms, err := expand(members)
			if err != nil {
				return "", err
			}
			return "(and " + strings.Join(ms, " ") + ")", nil
		},
		Tuple: func(members []typemap.Thunk[string]) (string, error) {
			ms, err := expand(members)
			if err != nil {
				return "", err
			}
			return "(tuple " + strings.Join(ms, " ") + ")", nil
		},
	}
}

func fold(t *testing.T, h *fakeType) string {
	t.Helper()
	got, err := typemap.Fold(h, newFakeResolver(), sexprHandlers(), nil)
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	return got
}

func TestFoldScalars(t *testing.T) {
	tests := []struct {
		h    *fakeType
		want string
	}{
		{lit(`"a"`), `lit:"a"`},
		{prim("string"), "string"},
		{prim("number"), "number"},
		{&fakeType{basic: true}, "{}"},
		{&fakeType{isVoid: true}, "void"},
		{&fakeType{isUnknown: true}, "unknown"},
		{&fakeType{callable: true}, "(fn)"},
	}
	for _, tt := range tests {
		if got := fold(t, tt.h); got != tt.want {
			t.Errorf("fold = %q, want %q", got, tt.want)
		}
	}
}

func TestFoldNested(t *testing.T) {
	inner := &fakeType{props: []fakeProp{
		{name: "x", typ: prim("number")},
		{name: "y", typ: prim("number")},
	}}
	h := &fakeType{recordKey: prim("string"), recordValue: inner}
	want := "(record string (object req[x:number y:number] opt[]))"
	if got := fold(t, h); got != want {
		t.Errorf("fold = %q, want %q", got, want)
	}
}

func TestFoldUnionOrder(t *testing.T) {
	h := &fakeType{union: []*fakeType{lit(`"b"`), lit(`"a"`)}}
	want := `(union lit:"b" lit:"a")`
	if got := fold(t, h); got != want {
		t.Errorf("fold = %q, want %q", got, want)
	}
}

func TestFoldObjectGroups(t *testing.T) {
	h := &fakeType{props: []fakeProp{
		{name: "foo", typ: prim("string")},
		{name: "bar", optional: true, typ: prim("number")},
	}}
	want := "(object req[foo:string] opt[bar:number])"
	if got := fold(t, h); got != want {
		t.Errorf("fold = %q, want %q", got, want)
	}
}

// A handler that discards its thunks must not trigger any recursive work:
// the nested handles stay untouched by the resolver.
func TestFoldLaziness(t *testing.T) {
	res := newFakeResolver()
	left := &fakeType{name: "left", primitive: true, text: "string"}
	right := &fakeType{name: "right", primitive: true, text: "number"}
	h := &fakeType{union: []*fakeType{left, right}}

	tm := sexprHandlers()
	tm.Union = func(members []typemap.Thunk[string]) (string, error) {
		return "short-circuit", nil
	}

	got, err := typemap.Fold(h, res, tm, nil)
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if got != "short-circuit" {
		t.Fatalf("got %q", got)
	}
	if res.touched["left"] != 0 || res.touched["right"] != 0 {
		t.Errorf("discarded thunks were folded: touched=%v", res.touched)
	}
}

// Invoking a thunk twice folds the branch twice: there is no memoization.
func TestFoldNoMemoization(t *testing.T) {
	res := newFakeResolver()
	elem := &fakeType{name: "elem", primitive: true, text: "string"}
	h := &fakeType{arrayElem: elem}

	tm := sexprHandlers()
	tm.Array = func(e typemap.Thunk[string]) (string, error) {
		if _, err := e(); err != nil {
			return "", err
		}
		if _, err := e(); err != nil {
			return "", err
		}
		return "twice", nil
	}

	if _, err := typemap.Fold(h, res, tm, nil); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if res.touched["elem"] != 2 {
		t.Errorf("elem touched %d times, want 2", res.touched["elem"])
	}
}

func TestFoldMissingHandler(t *testing.T) {
	tm := sexprHandlers()
	tm.Tuple = nil
	_, err := typemap.Fold(&fakeType{isTuple: true}, newFakeResolver(), tm, nil)
	if err == nil || !strings.Contains(err.Error(), "no handler") {
		t.Errorf("got %v, want missing-handler error", err)
	}
}

// A classification failure in a nested branch unwinds the whole fold.
func TestFoldNestedFailurePropagates(t *testing.T) {
	bad := &fakeType{text: "esoteric", flags: 6}
	h := &fakeType{arrayElem: bad}
	_, err := typemap.Fold(h, newFakeResolver(), sexprHandlers(), nil)
	if err == nil || !strings.Contains(err.Error(), "unable to classify") {
		t.Errorf("got %v, want classification error", err)
	}
}
