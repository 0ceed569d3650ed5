package tsresolve_test

import (
	"testing"

	"github.com/juusaw/maptype/tsresolve"
	"github.com/juusaw/maptype/typemap"
)

func declNames(decls []tsresolve.Declaration) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}

func TestDeclarationsDocumentOrder(t *testing.T) {
	source := `
export type First = string;
export interface Second { a: number; }
export const third: boolean = true;
export type Fourth = number[];
`
	sess, _ := newTestSession(t, source, nil)
	got := declNames(sess.Declarations(false, []string{tsresolve.EntryFileName}))
	want := []string{"First", "Second", "third", "Fourth"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDeclarationsSkipUntypedStatements(t *testing.T) {
	source := `
export function ignored(): void {}
export type Kept = string;
class AlsoIgnored {}
`
	sess, _ := newTestSession(t, source, nil)
	got := declNames(sess.Declarations(false, []string{tsresolve.EntryFileName}))
	if len(got) != 1 || got[0] != "Kept" {
		t.Errorf("got %v, want [Kept]", got)
	}
}

func TestDeclarationsNamespace(t *testing.T) {
	source := `
export type Outer = string;
export namespace NS {
  export type Inner = number;
  export namespace Deep {
    export type Deepest = boolean;
  }
}
`
	sess, _ := newTestSession(t, source, nil)
	got := declNames(sess.Declarations(false, []string{tsresolve.EntryFileName}))
	want := []string{"Outer", "Inner", "Deepest"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDeclarationsVariableStatement(t *testing.T) {
	sess, diags := newTestSession(t, `export const flag: boolean = true;`, nil)
	decls := sess.Declarations(false, []string{tsresolve.EntryFileName})
	if len(decls) != 1 || decls[0].Name != "flag" {
		t.Fatalf("got %v, want [flag]", declNames(decls))
	}
	cat, err := typemap.Classify(decls[0].Type, sess.Resolver(), diags)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if cat.Kind != typemap.KindBoolean {
		t.Errorf("Kind = %v, want boolean", cat.Kind)
	}
}

func TestDeclarationsMultiBindingWarns(t *testing.T) {
	sess, diags := newTestSession(t, `export const a: number = 1, b: number = 2;`, nil)
	decls := sess.Declarations(false, []string{tsresolve.EntryFileName})
	if len(decls) != 1 || decls[0].Name != "a" {
		t.Fatalf("got %v, want [a]", declNames(decls))
	}
	if diags.WarningCount() != 1 {
		t.Errorf("got %d warnings, want 1: %s", diags.WarningCount(), diags.FormatAll())
	}
}

func TestDeclarationsFollowImports(t *testing.T) {
	source := `
import { Other } from "./other";
export type Local = Other;
`
	extra := map[string]string{"other.ts": `export type Other = { foo: string };`}

	sess, _ := newTestSession(t, source, extra)

	entryOnly := declNames(sess.Declarations(false, []string{tsresolve.EntryFileName}))
	if len(entryOnly) != 1 || entryOnly[0] != "Local" {
		t.Errorf("without imports: got %v, want [Local]", entryOnly)
	}

	all := declNames(sess.Declarations(true, []string{tsresolve.EntryFileName}))
	found := make(map[string]bool)
	for _, name := range all {
		found[name] = true
	}
	if len(all) != 2 || !found["Local"] || !found["Other"] {
		t.Errorf("with imports: got %v, want Local and Other", all)
	}
}
