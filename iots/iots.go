// Package iots is the reference handler set for the maptype engine: it
// reduces every type category to an io-ts validator expression, so that a
// run over a source file yields runnable runtime validators for its static
// type declarations.
package iots

import (
	"fmt"
	"strings"

	"github.com/juusaw/maptype/typemap"
)

// Header is the import line the generated validators depend on.
const Header = `import * as t from "io-ts"`

// Validators returns the handler set producing io-ts validator expressions.
//
// Objects combine their member groups per the partition rule: a plain
// t.type when only required members exist, a t.partial when only optional
// ones do, and an intersection of both shapes otherwise.
func Validators() typemap.TypeMap[string] {
	return typemap.TypeMap[string]{
		Literal: func(raw string) (string, error) {
			return fmt.Sprintf("t.literal(%s)", raw), nil
		},
		String:    constant("t.string"),
		Number:    constant("t.number"),
		Boolean:   constant("t.boolean"),
		Null:      constant("t.null"),
		Undefined: constant("t.undefined"),
		Void:      constant("t.void"),
		Unknown:   constant("t.unknown"),

		// io-ts has no "any object at all" combinator narrower than this.
		EmptyObject: constant("t.UnknownRecord"),

		StringIndexObject: func(elem typemap.Thunk[string]) (string, error) {
			return record("t.string", elem)
		},
		NumberIndexObject: func(elem typemap.Thunk[string]) (string, error) {
			return record("t.number", elem)
		},
		Record: func(key, value typemap.Thunk[string]) (string, error) {
			k, err := key()
			if err != nil {
				return "", err
			}
			return record(k, value)
		},

		Object: objectValidator,

		Function: func(args []typemap.Thunk[string], ret typemap.Thunk[string]) (string, error) {
			// Argument and return types are unresolved; t.Function is the
			// closest faithful representation.
			return "t.Function", nil
		},

		Array: func(elem typemap.Thunk[string]) (string, error) {
			e, err := elem()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("t.array(%s)", e), nil
		},
		Union:        combinator("t.union"),
		Intersection: combinator("t.intersection"),
		Tuple:        combinator("t.tuple"),
	}
}

func constant(expr string) func() (string, error) {
	return func() (string, error) { return expr, nil }
}

func record(key string, value typemap.Thunk[string]) (string, error) {
	v, err := value()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("t.record(%s, %s)", key, v), nil
}

// combinator builds the list-taking combinators: t.union, t.intersection,
// t.tuple. Member order is preserved exactly as classified.
func combinator(name string) func([]typemap.Thunk[string]) (string, error) {
	return func(members []typemap.Thunk[string]) (string, error) {
		exprs := make([]string, len(members))
		for i, member := range members {
			m, err := member()
			if err != nil {
				return "", err
			}
			exprs[i] = m
		}
		return fmt.Sprintf("%s([%s])", name, strings.Join(exprs, ", ")), nil
	}
}

func objectValidator(required, optional []typemap.Prop[string]) (string, error) {
	switch {
	case len(required) > 0 && len(optional) > 0:
		req, err := shape("t.type", required)
		if err != nil {
			return "", err
		}
		opt, err := shape("t.partial", optional)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("t.intersection([%s, %s])", req, opt), nil
	case len(optional) > 0:
		return shape("t.partial", optional)
	default:
		return shape("t.type", required)
	}
}

func shape(kind string, props []typemap.Prop[string]) (string, error) {
	fields := make([]string, len(props))
	for i, prop := range props {
		expr, err := prop.Type()
		if err != nil {
			return "", err
		}
		fields[i] = fmt.Sprintf("%s: %s", propKey(prop.Key), expr)
	}
	return fmt.Sprintf("%s({%s})", kind, strings.Join(fields, ", ")), nil
}

// propKey quotes property keys that are not plain identifiers, matching how
// they would be written in an io-ts shape literal.
func propKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return fmt.Sprintf("%q", key)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
