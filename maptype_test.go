package maptype_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/juusaw/maptype"
	"github.com/juusaw/maptype/iots"
)

// processValidators runs the io-ts handler set over inline source and
// returns the generated validator expressions keyed by declaration name.
func processValidators(t *testing.T, source string, cfg *maptype.Config) map[string]string {
	t.Helper()
	bindings, diags, err := maptype.ProcessTypes(iots.Validators(), source, cfg)
	if err != nil {
		t.Fatalf("ProcessTypes failed: %v\n%s", err, diags.FormatAll())
	}
	out := make(map[string]string, len(bindings))
	for _, b := range bindings {
		out[b.Name] = b.Result
	}
	return out
}

func TestProcessRecordOfObject(t *testing.T) {
	got := processValidators(t, `export type Dict = Record<string, { x: number; y: number }>;`, nil)
	want := "t.record(t.string, t.type({x: t.number, y: t.number}))"
	if got["Dict"] != want {
		t.Errorf("Dict = %q, want %q", got["Dict"], want)
	}
}

func TestProcessLiteralUnion(t *testing.T) {
	got := processValidators(t, `export type AB = "a" | "b";`, nil)
	want := `t.union([t.literal("a"), t.literal("b")])`
	if got["AB"] != want {
		t.Errorf("AB = %q, want %q", got["AB"], want)
	}
}

func TestProcessInterfaceWithOptional(t *testing.T) {
	source := `
export interface Test {
  foo: string;
  bar?: number;
}
`
	got := processValidators(t, source, nil)
	want := "t.intersection([t.type({foo: t.string}), t.partial({bar: t.number})])"
	if got["Test"] != want {
		t.Errorf("Test = %q, want %q", got["Test"], want)
	}
}

func TestProcessArray(t *testing.T) {
	got := processValidators(t, `export type Names = string[];`, nil)
	if want := "t.array(t.string)"; got["Names"] != want {
		t.Errorf("Names = %q, want %q", got["Names"], want)
	}
}

func TestProcessTupleRestDegrades(t *testing.T) {
	bindings, diags, err := maptype.ProcessTypes(iots.Validators(),
		`export type T = [string, ...number[]];`, nil)
	if err != nil {
		t.Fatalf("ProcessTypes failed: %v", err)
	}
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}
	if want := "t.tuple([t.string])"; bindings[0].Result != want {
		t.Errorf("T = %q, want %q", bindings[0].Result, want)
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1: %s", diags.WarningCount(), diags.FormatAll())
	}
}

func TestProcessBindingOrder(t *testing.T) {
	source := `
export type A = string;
export interface B { n: number; }
export type C = boolean;
`
	bindings, _, err := maptype.ProcessTypes(iots.Validators(), source, nil)
	if err != nil {
		t.Fatalf("ProcessTypes failed: %v", err)
	}
	want := []string{"A", "B", "C"}
	if len(bindings) != len(want) {
		t.Fatalf("got %d bindings, want %d", len(bindings), len(want))
	}
	for i, b := range bindings {
		if b.Name != want[i] {
			t.Errorf("bindings[%d].Name = %q, want %q", i, b.Name, want[i])
		}
	}
}

func TestProcessAbortsOnUnclassifiableType(t *testing.T) {
	source := `
export type Ok = string;
export type Sym = symbol;
`
	bindings, _, err := maptype.ProcessTypes(iots.Validators(), source, nil)
	if err == nil {
		t.Fatal("expected error for symbol type")
	}
	if !strings.Contains(err.Error(), `"Sym"`) {
		t.Errorf("error does not name the declaration: %v", err)
	}
	if bindings != nil {
		t.Errorf("got partial bindings %v, want none", bindings)
	}
}

func TestProcessInvalidConfig(t *testing.T) {
	cfg := &maptype.Config{}
	_, diags, err := maptype.ProcessTypes(iots.Validators(), `export type A = string;`, cfg)
	if err == nil {
		t.Fatal("expected config validation error")
	}
	if !diags.HasErrors() {
		t.Error("config failure not recorded on the collector")
	}
}

// The followImports fixture lives on disk: the entry source imports a real
// file resolved against the configured root.
var importFixture = txtar.Parse([]byte(`Entry imports a model type from a sibling file.
-- models.ts --
export interface Point {
  x: number;
  y: number;
}
`))

func writeFixture(t *testing.T, archive *txtar.Archive) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range archive.Files {
		path := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating fixture dir: %v", err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("writing fixture file: %v", err)
		}
	}
	return dir
}

func TestProcessFollowImports(t *testing.T) {
	dir := writeFixture(t, importFixture)
	source := `
import { Point } from "./models";
export type Points = Point[];
`

	closed := maptype.DefaultConfig()
	closed.RootDir = dir
	got := processValidators(t, source, &closed)
	if len(got) != 1 || got["Points"] == "" {
		t.Fatalf("closed traversal: got %v, want only Points", got)
	}

	open := maptype.DefaultConfig()
	open.RootDir = dir
	open.FollowImports = true
	got = processValidators(t, source, &open)
	if len(got) != 2 {
		t.Fatalf("open traversal: got %v, want Points and Point", got)
	}
	if want := "t.type({x: t.number, y: t.number})"; got["Point"] != want {
		t.Errorf("Point = %q, want %q", got["Point"], want)
	}
	if want := "t.array(t.type({x: t.number, y: t.number}))"; got["Points"] != want {
		t.Errorf("Points = %q, want %q", got["Points"], want)
	}
}
