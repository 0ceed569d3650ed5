package tsresolve_test

import (
	"testing"

	"github.com/juusaw/maptype/diagnostic"
	"github.com/juusaw/maptype/tsresolve"
	"github.com/juusaw/maptype/typemap"
)

// newTestSession creates a session over inline TypeScript source, with extra
// in-memory files when a test needs imports. Sessions are closed on cleanup.
func newTestSession(t *testing.T, source string, extra map[string]string) (*tsresolve.Session, *diagnostic.Collector) {
	t.Helper()

	diags := diagnostic.NewCollector()
	sess, err := tsresolve.NewSession(source, &tsresolve.SessionOptions{
		RootDir:    t.TempDir(),
		ExtraFiles: extra,
		Diags:      diags,
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	t.Cleanup(sess.Close)
	return sess, diags
}

// declType extracts the entry file's declaration with the given name.
func declType(t *testing.T, sess *tsresolve.Session, name string) typemap.Handle {
	t.Helper()
	for _, d := range sess.Declarations(false, []string{tsresolve.EntryFileName}) {
		if d.Name == name {
			return d.Type
		}
	}
	t.Fatalf("declaration %q not found", name)
	return nil
}

func TestSessionParsesEntrySource(t *testing.T) {
	sess, _ := newTestSession(t, `export type A = string;`, nil)

	files := sess.SourceFiles()
	if len(files) != 1 {
		t.Fatalf("got %d source files, want 1", len(files))
	}
	if sess.Checker() == nil {
		t.Fatal("session has no checker")
	}
}

func TestSessionRejectsInvalidSyntaxGracefully(t *testing.T) {
	// Parse errors do not fail session construction; the checker still
	// produces error types for the broken parts. The session itself must
	// come up so partial extraction can report per-declaration problems.
	sess, _ := newTestSession(t, `type Broken = {;`, nil)
	if sess.Checker() == nil {
		t.Fatal("session has no checker")
	}
}

func TestSessionExtraFiles(t *testing.T) {
	sess, _ := newTestSession(t,
		`import { Other } from "./other";
export type Local = Other;`,
		map[string]string{"other.ts": `export type Other = string;`},
	)

	names := make(map[string]bool)
	for _, sf := range sess.SourceFiles() {
		names[sf.FileName()] = true
	}
	if len(names) != 2 {
		t.Fatalf("got %d source files, want 2: %v", len(names), names)
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	sess, _ := newTestSession(t, `export type A = string;`, nil)
	sess.Close()
	sess.Close()
}
