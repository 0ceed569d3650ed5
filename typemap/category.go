package typemap

// Kind identifies the classification outcome for a type handle. The set is
// closed: Classify assigns every supported type exactly one Kind.
//
// any and unknown share KindUnknown; the distinction is never surfaced to
// handlers.
type Kind int

const (
	KindLiteral Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindVoid
	KindUnknown
	KindEmptyObject
	KindStringIndexObject
	KindNumberIndexObject
	KindRecord
	KindObject
	KindFunction
	KindArray
	KindUnion
	KindIntersection
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindVoid:
		return "void"
	case KindUnknown:
		return "unknown"
	case KindEmptyObject:
		return "empty-object"
	case KindStringIndexObject:
		return "string-index-object"
	case KindNumberIndexObject:
		return "number-index-object"
	case KindRecord:
		return "record"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Member is a (key, type handle) pair of an object-like type. Ordering
// within the required/optional lists follows the resolution context's native
// member enumeration order.
type Member struct {
	Key  string
	Type Handle
}

// Category is the result of classifying a single type handle: the Kind plus
// whatever data the matching handler needs to recurse. Only the fields for
// the given Kind are populated.
type Category struct {
	Kind Kind

	// Literal holds the raw source form of a KindLiteral value.
	Literal string

	// Elem is the element type for KindArray, KindStringIndexObject and
	// KindNumberIndexObject.
	Elem Handle

	// Key and Value are the type arguments of a KindRecord alias.
	Key   Handle
	Value Handle

	// Members are the ordered member types of KindUnion, KindIntersection
	// and KindTuple.
	Members []Handle

	// Required and Optional are the partitioned members of a KindObject.
	Required []Member
	Optional []Member

	// Args and Return belong to KindFunction. Argument and return types are
	// not currently resolved: Args is always empty and Return always nil.
	Args   []Handle
	Return Handle
}
