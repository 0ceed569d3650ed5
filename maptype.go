// Package maptype converts the named type declarations of a TypeScript
// source into caller-defined values: each declaration's type is classified
// into one of a fixed set of categories and reduced through a caller-supplied
// handler set, one handler per category, with nested structure folded lazily.
//
// The typical instantiation generates validator source code from static type
// declarations (see the iots package), but the result type is arbitrary.
package maptype

import (
	"fmt"

	"github.com/juusaw/maptype/diagnostic"
	"github.com/juusaw/maptype/tsresolve"
	"github.com/juusaw/maptype/typemap"
)

// Binding pairs a declaration's name with its folded result. Bindings appear
// in source declaration order, including declarations pulled from nested
// namespace bodies, interleaved in document order at each nesting level.
type Binding[R any] struct {
	Name   string
	Result R
}

// ProcessTypes parses source, visits its type alias, interface and
// single-binding variable declarations in document order, and folds each
// one's type through the handler set.
//
// The returned collector holds the non-fatal notices raised along the way
// (tuple rest elements, unresolved function payloads, malformed declaration
// shapes); it is populated even when an error is returned. A classification
// failure aborts the whole run: no partial binding sequence is returned.
func ProcessTypes[R any](tm typemap.TypeMap[R], source string, cfg *Config) ([]Binding[R], *diagnostic.Collector, error) {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	diags := diagnostic.NewCollector()

	if err := cfg.Validate(); err != nil {
		diags.Error(diagnostic.CategoryConfigInvalid, "", err.Error())
		return nil, diags, err
	}

	session, err := tsresolve.NewSession(source, &tsresolve.SessionOptions{
		RootDir: cfg.RootDir,
		Diags:   diags,
	})
	if err != nil {
		return nil, diags, fmt.Errorf("creating resolution session: %w", err)
	}
	defer session.Close()

	resolver := session.Resolver()
	var bindings []Binding[R]
	for _, decl := range session.Declarations(cfg.FollowImports, cfg.FileNames) {
		result, err := typemap.Fold(decl.Type, resolver, tm, diags)
		if err != nil {
			return nil, diags, fmt.Errorf("processing declaration %q: %w", decl.Name, err)
		}
		bindings = append(bindings, Binding[R]{Name: decl.Name, Result: result})
	}
	return bindings, diags, nil
}
