// Package tsresolve supplies the tsgo-backed resolution context for the
// maptype engine: it parses TypeScript source with the native compiler,
// exposes the checker's structural queries through the typemap.Resolver
// interface, and extracts the named declarations the driver visits.
package tsresolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/juusaw/maptype/diagnostic"
)

// EntryFileName is the fixed identifier under which the caller's source text
// is addressable inside a session. All other file names fall back to real
// filesystem resolution.
const EntryFileName = "input.ts"

// SessionOptions configures session construction.
type SessionOptions struct {
	// RootDir anchors relative file resolution. Defaults to the working
	// directory.
	RootDir string

	// ExtraFiles maps additional relative file names to in-memory contents,
	// addressable alongside the entry buffer. Mostly useful for tests and
	// multi-file inputs that never touch disk.
	ExtraFiles map[string]string

	// Diags receives non-fatal notices raised during resolution. May be nil.
	Diags *diagnostic.Collector
}

// Session owns one parsed program and its checker. It is single-threaded
// and read-only after construction; all type handles it hands out are valid
// until Close.
type Session struct {
	program *shimcompiler.Program
	checker *shimchecker.Checker
	release func()
	rootDir string
	diags   *diagnostic.Collector
}

// tsconfigOptions is the fixed compiler configuration for a session.
// Strict mode keeps optionality and null/undefined information intact.
type tsconfigOptions struct {
	CompilerOptions map[string]any `json:"compilerOptions"`
	Files           []string       `json:"files"`
}

// NewSession parses source under EntryFileName and returns a ready session.
// The caller must Close it to release the checker.
func NewSession(source string, opts *SessionOptions) (*Session, error) {
	if opts == nil {
		opts = &SessionOptions{}
	}

	rootDir := opts.RootDir
	if rootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		rootDir = cwd
	}
	rootDir = tspath.NormalizePath(rootDir)

	files := map[string]string{
		tspath.ResolvePath(rootDir, EntryFileName): source,
	}
	fileNames := []string{EntryFileName}
	for name, contents := range opts.ExtraFiles {
		files[tspath.ResolvePath(rootDir, name)] = contents
		fileNames = append(fileNames, name)
	}

	tsconfig, err := json.Marshal(tsconfigOptions{
		CompilerOptions: map[string]any{
			"strict":       true,
			"noEmit":       true,
			"target":       "es2020",
			"skipLibCheck": true,
		},
		Files: fileNames,
	})
	if err != nil {
		return nil, fmt.Errorf("building tsconfig: %w", err)
	}
	files[tspath.ResolvePath(rootDir, "tsconfig.json")] = string(tsconfig)

	fs := newVirtualFS(files)
	host := shimcompiler.NewCompilerHost(rootDir, fs, bundled.LibPath(), nil, nil)

	parsed, diags := tsoptions.GetParsedCommandLineOfConfigFile(
		"tsconfig.json", &core.CompilerOptions{}, nil, host, nil,
	)
	if len(diags) > 0 {
		return nil, fmt.Errorf("parsing tsconfig: %s", diags[0].String())
	}
	if parsed != nil && len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("parsing tsconfig: %s", parsed.Errors[0].String())
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsed,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, errors.New("failed to create program")
	}
	program.BindSourceFiles()

	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		return nil, errors.New("failed to obtain type checker")
	}

	return &Session{
		program: program,
		checker: checker,
		release: release,
		rootDir: rootDir,
		diags:   opts.Diags,
	}, nil
}

// Close releases the session's checker. The session and every handle it
// produced are invalid afterwards.
func (s *Session) Close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

// Resolver returns the typemap.Resolver view of this session's checker.
func (s *Session) Resolver() *Resolver {
	return &Resolver{checker: s.checker}
}

// Checker exposes the underlying tsgo checker for callers that need raw
// access (the category dump, tests).
func (s *Session) Checker() *shimchecker.Checker {
	return s.checker
}

// SourceFiles returns the program's source files in program order, excluding
// declaration files (lib.d.ts and friends carry no user declarations worth
// visiting).
func (s *Session) SourceFiles() []*ast.SourceFile {
	var out []*ast.SourceFile
	for _, sf := range s.program.GetSourceFiles() {
		if sf.IsDeclarationFile {
			continue
		}
		out = append(out, sf)
	}
	return out
}

// resolvePath resolves a configured file name against the session root.
func (s *Session) resolvePath(name string) string {
	return tspath.ResolvePath(s.rootDir, name)
}
