package typemap

import (
	"fmt"

	"github.com/juusaw/maptype/diagnostic"
)

// Thunk defers the fold of a nested type. Invoking it re-enters the engine
// for that branch; discarding it without invoking means no recursive work
// happens for the branch at all. Thunks are not memoized: invoking one twice
// folds the nested type twice.
type Thunk[R any] func() (R, error)

// Prop pairs an object member's key with the thunk that folds its type.
type Prop[R any] struct {
	Key  string
	Type Thunk[R]
}

// TypeMap is a caller-supplied handler set with one handler per category.
// Every handler must be non-nil; Fold fails on a missing handler rather than
// skipping the category silently.
//
// Scalar handlers receive resolved values directly. Handlers for categories
// with nested structure receive the nested types as thunks and decide
// whether and in which order to expand them.
type TypeMap[R any] struct {
	Literal   func(raw string) (R, error)
	String    func() (R, error)
	Number    func() (R, error)
	Boolean   func() (R, error)
	Null      func() (R, error)
	Undefined func() (R, error)
	Void      func() (R, error)

	// Unknown handles both any and unknown.
	Unknown func() (R, error)

	// EmptyObject handles the unconstrained umbrella object type.
	EmptyObject func() (R, error)

	StringIndexObject func(elem Thunk[R]) (R, error)
	NumberIndexObject func(elem Thunk[R]) (R, error)
	Record            func(key, value Thunk[R]) (R, error)

	// Object receives the required and optional members as two ordered
	// (key, thunk) sequences and chooses how to combine them.
	Object func(required, optional []Prop[R]) (R, error)

	// Function payloads are not resolved: args is always empty and ret nil.
	Function func(args []Thunk[R], ret Thunk[R]) (R, error)

	Array        func(elem Thunk[R]) (R, error)
	Union        func(members []Thunk[R]) (R, error)
	Intersection func(members []Thunk[R]) (R, error)
	Tuple        func(members []Thunk[R]) (R, error)
}

// Fold classifies a type handle and dispatches it to the matching handler,
// deferring all nested structure behind thunks that re-enter Fold with the
// same resolver and handler set.
//
// The recursion is plain and synchronous: depth equals the structural
// nesting depth of the type, and there is no memoization or cycle detection.
// A classification failure anywhere in the tree unwinds the whole fold.
func Fold[R any](h Handle, res Resolver, tm TypeMap[R], diags *diagnostic.Collector) (R, error) {
	var zero R

	cat, err := Classify(h, res, diags)
	if err != nil {
		return zero, err
	}

	lazy := func(nested Handle) Thunk[R] {
		return func() (R, error) {
			return Fold(nested, res, tm, diags)
		}
	}
	lazyAll := func(nested []Handle) []Thunk[R] {
		thunks := make([]Thunk[R], len(nested))
		for i, n := range nested {
			thunks[i] = lazy(n)
		}
		return thunks
	}
	lazyMembers := func(members []Member) []Prop[R] {
		props := make([]Prop[R], len(members))
		for i, m := range members {
			props[i] = Prop[R]{Key: m.Key, Type: lazy(m.Type)}
		}
		return props
	}

	switch cat.Kind {
	case KindLiteral:
		if tm.Literal == nil {
			break
		}
		return tm.Literal(cat.Literal)
	case KindString:
		if tm.String == nil {
			break
		}
		return tm.String()
	case KindNumber:
		if tm.Number == nil {
			break
		}
		return tm.Number()
	case KindBoolean:
		if tm.Boolean == nil {
			break
		}
		return tm.Boolean()
	case KindNull:
		if tm.Null == nil {
			break
		}
		return tm.Null()
	case KindUndefined:
		if tm.Undefined == nil {
			break
		}
		return tm.Undefined()
	case KindVoid:
		if tm.Void == nil {
			break
		}
		return tm.Void()
	case KindUnknown:
		if tm.Unknown == nil {
			break
		}
		return tm.Unknown()
	case KindEmptyObject:
		if tm.EmptyObject == nil {
			break
		}
		return tm.EmptyObject()
	case KindStringIndexObject:
		if tm.StringIndexObject == nil {
			break
		}
		return tm.StringIndexObject(lazy(cat.Elem))
	case KindNumberIndexObject:
		if tm.NumberIndexObject == nil {
			break
		}
		return tm.NumberIndexObject(lazy(cat.Elem))
	case KindRecord:
		if tm.Record == nil {
			break
		}
		return tm.Record(lazy(cat.Key), lazy(cat.Value))
	case KindObject:
		if tm.Object == nil {
			break
		}
		return tm.Object(lazyMembers(cat.Required), lazyMembers(cat.Optional))
	case KindFunction:
		if tm.Function == nil {
			break
		}
		return tm.Function(nil, nil)
	case KindArray:
		if tm.Array == nil {
			break
		}
		return tm.Array(lazy(cat.Elem))
	case KindUnion:
		if tm.Union == nil {
			break
		}
		return tm.Union(lazyAll(cat.Members))
	case KindIntersection:
		if tm.Intersection == nil {
			break
		}
		return tm.Intersection(lazyAll(cat.Members))
	case KindTuple:
		if tm.Tuple == nil {
			break
		}
		return tm.Tuple(lazyAll(cat.Members))
	}

	return zero, fmt.Errorf("no handler for %s types", cat.Kind)
}
