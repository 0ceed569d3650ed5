package typemap_test

import (
	"github.com/juusaw/maptype/typemap"
)

// fakeType is a hand-built type handle for exercising the classifier and
// fold engine without a real checker. A single fakeType may answer to
// several structural queries at once, which is exactly what the precedence
// tests need.
type fakeType struct {
	name string

	literal   string
	isLiteral bool

	primitive bool
	text      string

	basic bool

	recordKey   *fakeType
	recordValue *fakeType

	union []*fakeType
	inter []*fakeType

	isTuple   bool
	tuple     []*fakeType
	tupleRest bool

	arrayElem *fakeType
	strIndex  *fakeType
	numIndex  *fakeType

	callable bool
	props    []fakeProp

	isVoid    bool
	isAny     bool
	isUnknown bool

	flags uint32
}

type fakeProp struct {
	name     string
	optional bool
	typ      *fakeType
}

// fakeResolver implements typemap.Resolver over fakeType handles and counts
// how often each handle is classified, which makes thunk laziness
// observable from the outside.
type fakeResolver struct {
	touched map[string]int
}

var _ typemap.Resolver = (*fakeResolver)(nil)

func newFakeResolver() *fakeResolver {
	return &fakeResolver{touched: make(map[string]int)}
}

func (r *fakeResolver) typ(h typemap.Handle) *fakeType {
	t, _ := h.(*fakeType)
	return t
}

// Literal is the first query every classification makes, so it doubles as
// the touch counter.
func (r *fakeResolver) Literal(h typemap.Handle) (string, bool) {
	t := r.typ(h)
	if t.name != "" {
		r.touched[t.name]++
	}
	return t.literal, t.isLiteral
}

func (r *fakeResolver) TypeText(h typemap.Handle) string {
	t := r.typ(h)
	if t.text != "" {
		return t.text
	}
	return t.name
}

func (r *fakeResolver) IsPrimitive(h typemap.Handle) bool   { return r.typ(h).primitive }
func (r *fakeResolver) IsBasicObject(h typemap.Handle) bool { return r.typ(h).basic }

func (r *fakeResolver) RecordEntry(h typemap.Handle) (typemap.Handle, typemap.Handle, bool) {
	t := r.typ(h)
	if t.recordKey == nil {
		return nil, nil, false
	}
	return t.recordKey, t.recordValue, true
}

func (r *fakeResolver) UnionMembers(h typemap.Handle) ([]typemap.Handle, bool) {
	return fakeHandles(r.typ(h).union)
}

func (r *fakeResolver) IntersectionMembers(h typemap.Handle) ([]typemap.Handle, bool) {
	return fakeHandles(r.typ(h).inter)
}

func (r *fakeResolver) TupleElements(h typemap.Handle) ([]typemap.Handle, bool, bool) {
	t := r.typ(h)
	if !t.isTuple {
		return nil, false, false
	}
	elems, _ := fakeHandles(t.tuple)
	return elems, t.tupleRest, true
}

func (r *fakeResolver) ArrayElement(h typemap.Handle) (typemap.Handle, bool) {
	t := r.typ(h)
	if t.arrayElem == nil {
		return nil, false
	}
	return t.arrayElem, true
}

func (r *fakeResolver) StringIndexTarget(h typemap.Handle) (typemap.Handle, bool) {
	t := r.typ(h)
	if t.strIndex == nil {
		return nil, false
	}
	return t.strIndex, true
}

func (r *fakeResolver) NumberIndexTarget(h typemap.Handle) (typemap.Handle, bool) {
	t := r.typ(h)
	if t.numIndex == nil {
		return nil, false
	}
	return t.numIndex, true
}

func (r *fakeResolver) IsCallable(h typemap.Handle) bool { return r.typ(h).callable }

func (r *fakeResolver) Properties(h typemap.Handle) []typemap.Property {
	t := r.typ(h)
	var props []typemap.Property
	for _, p := range t.props {
		props = append(props, typemap.Property{Name: p.name, Optional: p.optional, Type: p.typ})
	}
	return props
}

func (r *fakeResolver) IsVoid(h typemap.Handle) bool    { return r.typ(h).isVoid }
func (r *fakeResolver) IsAny(h typemap.Handle) bool     { return r.typ(h).isAny }
func (r *fakeResolver) IsUnknown(h typemap.Handle) bool { return r.typ(h).isUnknown }
func (r *fakeResolver) Flags(h typemap.Handle) uint32   { return r.typ(h).flags }

func fakeHandles(types []*fakeType) ([]typemap.Handle, bool) {
	if types == nil {
		return nil, false
	}
	out := make([]typemap.Handle, len(types))
	for i, t := range types {
		out[i] = t
	}
	return out, true
}

// Shorthand constructors for common handle shapes.

func prim(text string) *fakeType { return &fakeType{primitive: true, text: text} }

func lit(raw string) *fakeType { return &fakeType{isLiteral: true, literal: raw} }
