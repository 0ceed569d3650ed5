// Package typemap implements the type classification and fold engine at the
// heart of maptype: it decides which of a fixed set of categories a
// TypeScript type belongs to and reduces the type's recursive structure to a
// caller-defined value through a pluggable handler set.
//
// The package never parses or type-checks source itself. All structural
// questions go through the Resolver interface; the tsresolve package provides
// the tsgo-backed implementation.
package typemap

// Handle is an opaque reference to a single type, owned by the resolution
// context that produced it. The engine only ever passes handles back to the
// same Resolver; it attaches no meaning to them. Two distinct handles may
// denote structurally equal types.
type Handle any

// Property is a single named member of an object-like type, as enumerated by
// the resolution context.
type Property struct {
	// Name is the member's display name (string, numeric, or symbolic keys
	// are all rendered as their source text).
	Name string
	// Optional is true when the declaration site carries the `?` modifier.
	Optional bool
	// Type is the member's declared type at its declaration site.
	Type Handle
}

// Resolver answers structural questions about type handles. It is the
// engine's window into the host type checker and must be read-only for the
// duration of a traversal: repeated queries on the same handle must return
// the same answers.
//
// The ok-returning methods report whether the handle is that construct at
// all; the classifier consults them in its fixed precedence order, so a
// Resolver may answer true to several of them for the same handle.
type Resolver interface {
	// TypeText returns the canonical display text for the type, e.g.
	// "string", "number", or an interface name.
	TypeText(h Handle) string

	// Literal reports whether the type is an exact single-value type and, if
	// so, its raw source form ("\"a\"", "0", "false").
	Literal(h Handle) (raw string, ok bool)

	// IsPrimitive reports whether the type is one of the primitive types
	// classified by name: string, number, boolean, null, undefined.
	IsPrimitive(h Handle) bool

	// IsBasicObject reports whether the type is the context's umbrella
	// object type: an unconstrained structural object with no declared shape.
	IsBasicObject(h Handle) bool

	// RecordEntry reports whether the type was constructed through the
	// two-argument Record alias and, if so, its key and value type arguments.
	RecordEntry(h Handle) (key, value Handle, ok bool)

	// UnionMembers returns the members of a union type in declared order.
	UnionMembers(h Handle) ([]Handle, bool)

	// IntersectionMembers returns the members of an intersection type in
	// declared order.
	IntersectionMembers(h Handle) ([]Handle, bool)

	// TupleElements returns the fixed elements of a tuple type in declared
	// order. A trailing rest element is not included in elems; hasRest
	// reports that one was present and dropped.
	TupleElements(h Handle) (elems []Handle, hasRest, ok bool)

	// ArrayElement returns the element type reachable through a homogeneous
	// numeric index accessor, for array types proper (never tuples).
	ArrayElement(h Handle) (Handle, bool)

	// StringIndexTarget returns the target type of a string index signature.
	StringIndexTarget(h Handle) (Handle, bool)

	// NumberIndexTarget returns the target type of a number index signature.
	NumberIndexTarget(h Handle) (Handle, bool)

	// IsCallable reports whether the type has at least one call signature.
	IsCallable(h Handle) bool

	// Properties enumerates the type's named members in the context's native
	// order. The order is stable across calls and never sorted.
	Properties(h Handle) []Property

	// IsVoid reports the void primitive.
	IsVoid(h Handle) bool

	// IsAny reports the any type.
	IsAny(h Handle) bool

	// IsUnknown reports the unknown type.
	IsUnknown(h Handle) bool

	// Flags returns the context's raw flag bits for the type, used only for
	// diagnostics when classification fails.
	Flags(h Handle) uint32
}
