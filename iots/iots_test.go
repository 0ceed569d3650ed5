package iots

import (
	"errors"
	"testing"

	"github.com/juusaw/maptype/typemap"
)

func thunk(expr string) typemap.Thunk[string] {
	return func() (string, error) { return expr, nil }
}

func failing(err error) typemap.Thunk[string] {
	return func() (string, error) { return "", err }
}

func TestScalarValidators(t *testing.T) {
	tm := Validators()
	tests := []struct {
		handler func() (string, error)
		want    string
	}{
		{tm.String, "t.string"},
		{tm.Number, "t.number"},
		{tm.Boolean, "t.boolean"},
		{tm.Null, "t.null"},
		{tm.Undefined, "t.undefined"},
		{tm.Void, "t.void"},
		{tm.Unknown, "t.unknown"},
		{tm.EmptyObject, "t.UnknownRecord"},
	}
	for _, tt := range tests {
		got, err := tt.handler()
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestLiteralValidator(t *testing.T) {
	tm := Validators()
	tests := []struct{ raw, want string }{
		{`"a"`, `t.literal("a")`},
		{"42", "t.literal(42)"},
		{"true", "t.literal(true)"},
	}
	for _, tt := range tests {
		got, err := tm.Literal(tt.raw)
		if err != nil {
			t.Fatalf("Literal(%s) failed: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("Literal(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRecordValidators(t *testing.T) {
	tm := Validators()

	got, err := tm.Record(thunk("t.string"), thunk("t.number"))
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if want := "t.record(t.string, t.number)"; got != want {
		t.Errorf("Record = %q, want %q", got, want)
	}

	got, err = tm.StringIndexObject(thunk("t.boolean"))
	if err != nil {
		t.Fatalf("StringIndexObject failed: %v", err)
	}
	if want := "t.record(t.string, t.boolean)"; got != want {
		t.Errorf("StringIndexObject = %q, want %q", got, want)
	}

	got, err = tm.NumberIndexObject(thunk("t.boolean"))
	if err != nil {
		t.Fatalf("NumberIndexObject failed: %v", err)
	}
	if want := "t.record(t.number, t.boolean)"; got != want {
		t.Errorf("NumberIndexObject = %q, want %q", got, want)
	}
}

func TestCombinatorValidators(t *testing.T) {
	tm := Validators()
	members := []typemap.Thunk[string]{thunk(`t.literal("a")`), thunk(`t.literal("b")`)}

	got, err := tm.Union(members)
	if err != nil {
		t.Fatalf("Union failed: %v", err)
	}
	if want := `t.union([t.literal("a"), t.literal("b")])`; got != want {
		t.Errorf("Union = %q, want %q", got, want)
	}

	got, err = tm.Tuple([]typemap.Thunk[string]{thunk("t.string"), thunk("t.number")})
	if err != nil {
		t.Fatalf("Tuple failed: %v", err)
	}
	if want := "t.tuple([t.string, t.number])"; got != want {
		t.Errorf("Tuple = %q, want %q", got, want)
	}
}

func TestArrayAndFunctionValidators(t *testing.T) {
	tm := Validators()

	got, err := tm.Array(thunk("t.string"))
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}
	if want := "t.array(t.string)"; got != want {
		t.Errorf("Array = %q, want %q", got, want)
	}

	got, err = tm.Function(nil, nil)
	if err != nil {
		t.Fatalf("Function failed: %v", err)
	}
	if got != "t.Function" {
		t.Errorf("Function = %q, want t.Function", got)
	}
}

func TestObjectValidatorGroups(t *testing.T) {
	tm := Validators()
	req := []typemap.Prop[string]{{Key: "foo", Type: thunk("t.string")}}
	opt := []typemap.Prop[string]{{Key: "bar", Type: thunk("t.number")}}

	tests := []struct {
		name          string
		required, opt []typemap.Prop[string]
		want          string
	}{
		{"required only", req, nil, "t.type({foo: t.string})"},
		{"optional only", nil, opt, "t.partial({bar: t.number})"},
		{"both", req, opt, "t.intersection([t.type({foo: t.string}), t.partial({bar: t.number})])"},
		{"empty", nil, nil, "t.type({})"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tm.Object(tt.required, tt.opt)
			if err != nil {
				t.Fatalf("Object failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Object = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectValidatorQuotesAwkwardKeys(t *testing.T) {
	tm := Validators()
	props := []typemap.Prop[string]{
		{Key: "plain", Type: thunk("t.string")},
		{Key: "with-dash", Type: thunk("t.string")},
		{Key: "1st", Type: thunk("t.string")},
		{Key: "$ok_2", Type: thunk("t.string")},
	}
	got, err := tm.Object(props, nil)
	if err != nil {
		t.Fatalf("Object failed: %v", err)
	}
	want := `t.type({plain: t.string, "with-dash": t.string, "1st": t.string, $ok_2: t.string})`
	if got != want {
		t.Errorf("Object = %q, want %q", got, want)
	}
}

func TestHandlerErrorsPropagate(t *testing.T) {
	tm := Validators()
	boom := errors.New("boom")

	if _, err := tm.Array(failing(boom)); !errors.Is(err, boom) {
		t.Errorf("Array error = %v, want boom", err)
	}
	if _, err := tm.Union([]typemap.Thunk[string]{failing(boom)}); !errors.Is(err, boom) {
		t.Errorf("Union error = %v, want boom", err)
	}
	if _, err := tm.Object([]typemap.Prop[string]{{Key: "x", Type: failing(boom)}}, nil); !errors.Is(err, boom) {
		t.Errorf("Object error = %v, want boom", err)
	}
}
