package typemap

import (
	"fmt"

	"github.com/juusaw/maptype/diagnostic"
)

// ClassificationError reports a type that matched none of the known
// categories. It carries the decomposed checker flags of the offending type
// so the failure can be diagnosed without access to the checker.
type ClassificationError struct {
	// Text is the canonical display text of the unclassifiable type.
	Text string
	// Flags is the type's raw flag mask decomposed into single bits,
	// highest first.
	Flags []uint32
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unable to classify type %q (flags: %v)", e.Text, e.Flags)
}

// Classify determines the single category a type handle belongs to.
//
// The checks run in a fixed precedence order; the order is a contract, not
// an implementation detail. Categories 3-10 all describe object-like types
// with overlapping structural signatures (a tuple also answers to a numeric
// index, a record also enumerates as an object, and so on), and the
// precedence is what makes classification deterministic for those overlaps:
//
//	literal > primitive > basic object > Record alias > union > intersection
//	> tuple > array > string-indexed > number-indexed > callable > object
//	> void > any/unknown
//
// Classification is total and pure: the same handle yields the same category
// on every call within a resolution session. A tuple with a rest element
// degrades to its fixed elements with a warning on diags; a type matching no
// category fails with a *ClassificationError.
func Classify(h Handle, res Resolver, diags *diagnostic.Collector) (Category, error) {
	if raw, ok := res.Literal(h); ok {
		return Category{Kind: KindLiteral, Literal: raw}, nil
	}

	if res.IsPrimitive(h) {
		switch text := res.TypeText(h); text {
		case "string":
			return Category{Kind: KindString}, nil
		case "number":
			return Category{Kind: KindNumber}, nil
		case "boolean":
			return Category{Kind: KindBoolean}, nil
		case "null":
			return Category{Kind: KindNull}, nil
		case "undefined":
			return Category{Kind: KindUndefined}, nil
		default:
			return Category{}, fmt.Errorf("unrecognized primitive type %q", text)
		}
	}

	if res.IsBasicObject(h) {
		return Category{Kind: KindEmptyObject}, nil
	}

	if key, value, ok := res.RecordEntry(h); ok {
		return Category{Kind: KindRecord, Key: key, Value: value}, nil
	}

	if members, ok := res.UnionMembers(h); ok {
		return Category{Kind: KindUnion, Members: members}, nil
	}

	if members, ok := res.IntersectionMembers(h); ok {
		return Category{Kind: KindIntersection, Members: members}, nil
	}

	if elems, hasRest, ok := res.TupleElements(h); ok {
		if hasRest {
			diags.Warn(diagnostic.CategoryTypeUnsupported, res.TypeText(h),
				"tuple rest elements are not supported; the rest portion was omitted")
		}
		return Category{Kind: KindTuple, Members: elems}, nil
	}

	if elem, ok := res.ArrayElement(h); ok {
		return Category{Kind: KindArray, Elem: elem}, nil
	}

	if target, ok := res.StringIndexTarget(h); ok {
		if _, numeric := res.NumberIndexTarget(h); !numeric {
			return Category{Kind: KindStringIndexObject, Elem: target}, nil
		}
	}

	if target, ok := res.NumberIndexTarget(h); ok {
		return Category{Kind: KindNumberIndexObject, Elem: target}, nil
	}

	if res.IsCallable(h) {
		// Argument and return types are not resolved. The Function handler
		// receives empty args and no return thunk.
		diags.Warn(diagnostic.CategoryTypeUnsupported, res.TypeText(h),
			"function argument and return types are not resolved")
		return Category{Kind: KindFunction}, nil
	}

	if props := res.Properties(h); len(props) > 0 {
		required, optional := Partition(h, res)
		return Category{Kind: KindObject, Required: required, Optional: optional}, nil
	}

	if res.IsVoid(h) {
		return Category{Kind: KindVoid}, nil
	}

	if res.IsAny(h) || res.IsUnknown(h) {
		return Category{Kind: KindUnknown}, nil
	}

	return Category{}, &ClassificationError{
		Text:  res.TypeText(h),
		Flags: ExtractFlags(res.Flags(h)),
	}
}

// Partition splits the members of an object-like type into required and
// optional groups. A member is optional iff its declaration site carries the
// `?` modifier. Both lists preserve the resolution context's enumeration
// order: partitioning is a stable filter, never a reordering.
func Partition(h Handle, res Resolver) (required, optional []Member) {
	for _, p := range res.Properties(h) {
		m := Member{Key: p.Name, Type: p.Type}
		if p.Optional {
			optional = append(optional, m)
		} else {
			required = append(required, m)
		}
	}
	return required, optional
}
