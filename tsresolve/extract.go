package tsresolve

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/juusaw/maptype/diagnostic"
	"github.com/juusaw/maptype/typemap"
)

// Declaration binds a declared name to its resolved type handle.
type Declaration struct {
	Name string
	Type typemap.Handle
}

// Declarations walks every visitable source file in document order and
// extracts the named declarations the engine folds: type aliases,
// interfaces, and single-binding variable statements. Namespace bodies are
// visited recursively, their declarations interleaved in document order.
//
// When followImports is false, only files named in fileNames (resolved
// against the session root) are visited; everything else the program loaded
// stays out of the result. When followImports is true, every non-declaration
// file in the program is visited.
func (s *Session) Declarations(followImports bool, fileNames []string) []Declaration {
	recognized := make(map[string]bool, len(fileNames))
	for _, name := range fileNames {
		recognized[s.resolvePath(name)] = true
	}

	var decls []Declaration
	for _, sf := range s.SourceFiles() {
		if !followImports && !recognized[sf.FileName()] {
			continue
		}
		decls = s.collectStatements(sf.Statements.Nodes, decls)
	}
	return decls
}

// collectStatements appends the declarations found in stmts, recursing into
// namespace-like containers. Statement kinds with no type declaration are
// ignored.
func (s *Session) collectStatements(stmts []*ast.Node, decls []Declaration) []Declaration {
	for _, stmt := range stmts {
		switch stmt.Kind {
		case ast.KindTypeAliasDeclaration:
			decl := stmt.AsTypeAliasDeclaration()
			t := shimchecker.Checker_getTypeFromTypeNode(s.checker, decl.Type)
			decls = append(decls, Declaration{Name: decl.Name().Text(), Type: t})

		case ast.KindInterfaceDeclaration:
			decl := stmt.AsInterfaceDeclaration()
			name := decl.Name().Text()
			sym := s.checker.GetSymbolAtLocation(decl.Name())
			if sym == nil {
				s.diags.Error(diagnostic.CategoryDeclarationInvalid, name,
					"could not resolve interface symbol")
				continue
			}
			t := shimchecker.Checker_getDeclaredTypeOfSymbol(s.checker, sym)
			decls = append(decls, Declaration{Name: name, Type: t})

		case ast.KindVariableStatement:
			if d, ok := s.extractVariable(stmt); ok {
				decls = append(decls, d)
			}

		case ast.KindModuleDeclaration:
			body := stmt.AsModuleDeclaration().Body
			if body != nil && body.Kind == ast.KindModuleBlock {
				decls = s.collectStatements(body.AsModuleBlock().Statements.Nodes, decls)
			}
		}
	}
	return decls
}

// extractVariable resolves the first binding of a variable statement to its
// declared (or inferred) type. Statements with more than one binding are a
// known limitation: only the first binding is considered, with a warning.
func (s *Session) extractVariable(stmt *ast.Node) (Declaration, bool) {
	list := stmt.AsVariableStatement().DeclarationList
	if list == nil {
		return Declaration{}, false
	}
	bindings := list.AsVariableDeclarationList().Declarations.Nodes
	if len(bindings) == 0 {
		return Declaration{}, false
	}

	first := bindings[0].AsVariableDeclaration()
	name := first.Name().Text()
	if len(bindings) > 1 {
		s.diags.Warn(diagnostic.CategoryDeclarationInvalid, name,
			"multi-binding variable statements are not supported; only the first binding is used")
	}

	sym := s.checker.GetSymbolAtLocation(first.Name())
	if sym == nil {
		s.diags.Error(diagnostic.CategoryDeclarationInvalid, name,
			"could not resolve variable symbol")
		return Declaration{}, false
	}
	t := shimchecker.Checker_getTypeOfSymbol(s.checker, sym)
	return Declaration{Name: name, Type: t}, true
}
