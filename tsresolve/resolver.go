package tsresolve

import (
	"fmt"
	"strconv"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/juusaw/maptype/typemap"
)

// Resolver implements typemap.Resolver on top of the tsgo checker. Handles
// are *shimchecker.Type values produced by the same session; passing a
// handle from another session is undefined.
//
// All methods are pure queries: the checker caches type structure, so the
// same handle always yields the same answers within a session.
type Resolver struct {
	checker *shimchecker.Checker
}

var _ typemap.Resolver = (*Resolver)(nil)

func (r *Resolver) typ(h typemap.Handle) *shimchecker.Type {
	t, _ := h.(*shimchecker.Type)
	return t
}

// TypeText returns a canonical display name. Primitives and intrinsics
// render as their keyword; literals as their source form; named types as
// their symbol name.
func (r *Resolver) TypeText(h typemap.Handle) string {
	t := r.typ(h)
	if t == nil {
		return "<nil>"
	}
	flags := t.Flags()
	switch {
	case flags&shimchecker.TypeFlagsString != 0:
		return "string"
	case flags&shimchecker.TypeFlagsBoolean != 0:
		return "boolean"
	case flags&shimchecker.TypeFlagsNumber != 0:
		return "number"
	case flags&shimchecker.TypeFlagsNull != 0:
		return "null"
	case flags&shimchecker.TypeFlagsUndefined != 0:
		return "undefined"
	case flags&shimchecker.TypeFlagsVoid != 0:
		return "void"
	case flags&shimchecker.TypeFlagsAny != 0:
		return "any"
	case flags&shimchecker.TypeFlagsUnknown != 0:
		return "unknown"
	case flags&shimchecker.TypeFlagsNever != 0:
		return "never"
	}
	if raw, ok := r.Literal(h); ok {
		return raw
	}
	if name := typeName(t); name != "" {
		return name
	}
	return "object"
}

// Literal reports exact single-value types: string, number and boolean
// literals, rendered in their source form.
func (r *Resolver) Literal(h typemap.Handle) (string, bool) {
	t := r.typ(h)
	if t == nil {
		return "", false
	}
	flags := t.Flags()

	if flags&shimchecker.TypeFlagsStringLiteral != 0 {
		lit := t.AsLiteralType()
		if s, ok := lit.Value().(string); ok {
			return strconv.Quote(s), true
		}
		return fmt.Sprintf("%q", lit.Value()), true
	}
	if flags&shimchecker.TypeFlagsNumberLiteral != 0 {
		return numericText(t.AsLiteralType().Value()), true
	}
	if flags&shimchecker.TypeFlagsBooleanLiteral != 0 {
		// Boolean literals are LiteralType with a bool value.
		if lit := t.AsLiteralType(); lit != nil {
			if b, ok := lit.Value().(bool); ok {
				return strconv.FormatBool(b), true
			}
		}
	}
	return "", false
}

// numericText renders a numeric literal value without a trailing ".0" and
// tolerates tsgo's own number representation (jsnum.Number is a float64
// under the hood).
func numericText(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int:
		return strconv.Itoa(n)
	default:
		str := fmt.Sprintf("%v", v)
		var f float64
		if _, err := fmt.Sscanf(str, "%g", &f); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return str
	}
}

// IsPrimitive reports the primitives classified by name: string, number,
// boolean, null, undefined. The global boolean type is a true|false union
// that additionally carries the boolean flag, so this check must run before
// any union decomposition.
func (r *Resolver) IsPrimitive(h typemap.Handle) bool {
	t := r.typ(h)
	if t == nil {
		return false
	}
	const primitives = shimchecker.TypeFlagsString |
		shimchecker.TypeFlagsNumber |
		shimchecker.TypeFlagsBoolean |
		shimchecker.TypeFlagsNull |
		shimchecker.TypeFlagsUndefined
	return t.Flags()&primitives != 0
}

// IsBasicObject reports the umbrella object types: the `object` keyword and
// structural object types with no members, no index signatures and no call
// signatures ({}, an empty interface).
func (r *Resolver) IsBasicObject(h typemap.Handle) bool {
	t := r.typ(h)
	if t == nil {
		return false
	}
	flags := t.Flags()
	if flags&shimchecker.TypeFlagsNonPrimitive != 0 {
		return true
	}
	if flags&shimchecker.TypeFlagsObject == 0 {
		return false
	}
	if shimchecker.IsTupleType(t) || shimchecker.Checker_isArrayType(r.checker, t) {
		return false
	}
	props := shimchecker.Checker_getPropertiesOfType(r.checker, t)
	if len(props) > 0 {
		return false
	}
	if len(shimchecker.Checker_getIndexInfosOfType(r.checker, t)) > 0 {
		return false
	}
	callSigs := shimchecker.Checker_getSignaturesOfType(r.checker, t, shimchecker.SignatureKindCall)
	return len(callSigs) == 0
}

// RecordEntry detects types constructed through the two-argument Record
// alias and returns its key and value type arguments.
func (r *Resolver) RecordEntry(h typemap.Handle) (key, value typemap.Handle, ok bool) {
	t := r.typ(h)
	if t == nil {
		return nil, nil, false
	}
	alias := shimchecker.Type_alias(t)
	if alias == nil {
		return nil, nil, false
	}
	sym := alias.Symbol()
	if sym == nil || sym.Name != "Record" {
		return nil, nil, false
	}
	args := alias.TypeArguments()
	if len(args) != 2 {
		return nil, nil, false
	}
	return args[0], args[1], true
}

func (r *Resolver) UnionMembers(h typemap.Handle) ([]typemap.Handle, bool) {
	t := r.typ(h)
	if t == nil || t.Flags()&shimchecker.TypeFlagsUnion == 0 {
		return nil, false
	}
	return handles(t.Types()), true
}

func (r *Resolver) IntersectionMembers(h typemap.Handle) ([]typemap.Handle, bool) {
	t := r.typ(h)
	if t == nil || t.Flags()&shimchecker.TypeFlagsIntersection == 0 {
		return nil, false
	}
	return handles(t.Types()), true
}

// TupleElements returns the fixed elements of a tuple. Elements flagged as
// rest are dropped; hasRest reports that at least one was.
func (r *Resolver) TupleElements(h typemap.Handle) (elems []typemap.Handle, hasRest, ok bool) {
	t := r.typ(h)
	if t == nil || !shimchecker.IsTupleType(t) {
		return nil, false, false
	}

	typeArgs := shimchecker.Checker_getTypeArguments(r.checker, t)
	var elementInfos []shimchecker.TupleElementInfo
	if tuple := t.TargetTupleType(); tuple != nil {
		elementInfos = shimchecker.TupleType_elementInfos(tuple)
	}

	for i, arg := range typeArgs {
		if i < len(elementInfos) {
			if elementInfos[i].TupleElementFlags()&shimchecker.ElementFlagsRest != 0 {
				hasRest = true
				continue
			}
		}
		elems = append(elems, arg)
	}
	return elems, hasRest, true
}

// ArrayElement returns the element type of an array proper. Tuples never
// match, so that the classifier's tuple-before-array precedence holds even
// if callers probe in a different order.
func (r *Resolver) ArrayElement(h typemap.Handle) (typemap.Handle, bool) {
	t := r.typ(h)
	if t == nil || shimchecker.IsTupleType(t) {
		return nil, false
	}
	if !shimchecker.Checker_isArrayType(r.checker, t) {
		return nil, false
	}
	typeArgs := shimchecker.Checker_getTypeArguments(r.checker, t)
	if len(typeArgs) == 0 {
		return nil, false
	}
	return typeArgs[0], true
}

func (r *Resolver) StringIndexTarget(h typemap.Handle) (typemap.Handle, bool) {
	return r.indexTarget(h, shimchecker.TypeFlagsString)
}

func (r *Resolver) NumberIndexTarget(h typemap.Handle) (typemap.Handle, bool) {
	return r.indexTarget(h, shimchecker.TypeFlagsNumber)
}

func (r *Resolver) indexTarget(h typemap.Handle, keyFlag shimchecker.TypeFlags) (typemap.Handle, bool) {
	t := r.typ(h)
	if t == nil {
		return nil, false
	}
	for _, info := range shimchecker.Checker_getIndexInfosOfType(r.checker, t) {
		keyType := shimchecker.IndexInfo_keyType(info)
		if keyType != nil && keyType.Flags()&keyFlag != 0 {
			return shimchecker.IndexInfo_valueType(info), true
		}
	}
	return nil, false
}

func (r *Resolver) IsCallable(h typemap.Handle) bool {
	t := r.typ(h)
	if t == nil {
		return false
	}
	callSigs := shimchecker.Checker_getSignaturesOfType(r.checker, t, shimchecker.SignatureKindCall)
	return len(callSigs) > 0
}

// Properties enumerates named members in checker order. Each member's type
// is resolved from the type node at its declaration site when one exists, so
// an optional `bar?: number` yields number rather than number | undefined.
func (r *Resolver) Properties(h typemap.Handle) []typemap.Property {
	t := r.typ(h)
	if t == nil {
		return nil
	}

	var props []typemap.Property
	for _, prop := range shimchecker.Checker_getPropertiesOfType(r.checker, t) {
		props = append(props, typemap.Property{
			Name:     prop.Name,
			Optional: prop.Flags&ast.SymbolFlagsOptional != 0,
			Type:     r.propertyType(prop),
		})
	}
	return props
}

func (r *Resolver) propertyType(prop *ast.Symbol) *shimchecker.Type {
	if decl := prop.ValueDeclaration; decl != nil && decl.Kind == ast.KindPropertySignature {
		if typeNode := decl.AsPropertySignatureDeclaration().Type; typeNode != nil {
			return shimchecker.Checker_getTypeFromTypeNode(r.checker, typeNode)
		}
	}
	return shimchecker.Checker_getTypeOfSymbol(r.checker, prop)
}

func (r *Resolver) IsVoid(h typemap.Handle) bool {
	return r.hasFlag(h, shimchecker.TypeFlagsVoid)
}

func (r *Resolver) IsAny(h typemap.Handle) bool {
	return r.hasFlag(h, shimchecker.TypeFlagsAny)
}

func (r *Resolver) IsUnknown(h typemap.Handle) bool {
	return r.hasFlag(h, shimchecker.TypeFlagsUnknown)
}

func (r *Resolver) hasFlag(h typemap.Handle, flag shimchecker.TypeFlags) bool {
	t := r.typ(h)
	return t != nil && t.Flags()&flag != 0
}

func (r *Resolver) Flags(h typemap.Handle) uint32 {
	t := r.typ(h)
	if t == nil {
		return 0
	}
	return uint32(t.Flags())
}

func handles(types []*shimchecker.Type) []typemap.Handle {
	out := make([]typemap.Handle, len(types))
	for i, t := range types {
		out[i] = t
	}
	return out
}

// typeName returns a type's symbol name, filtering the checker's internal
// anonymous names.
func typeName(t *shimchecker.Type) string {
	sym := t.Symbol()
	if sym == nil {
		return ""
	}
	name := sym.Name
	if name == "" || name == "__type" || name == "__object" || name == "__function" {
		return ""
	}
	if name[0] == '\xfe' {
		return ""
	}
	return name
}
