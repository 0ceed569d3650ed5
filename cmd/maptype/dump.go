package main

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/juusaw/maptype"
	"github.com/juusaw/maptype/typemap"
)

// typeDump is the JSON shape of a classified type tree.
type typeDump struct {
	Kind     string      `json:"kind"`
	Literal  string      `json:"literal,omitempty"`
	Element  *typeDump   `json:"element,omitempty"`
	Key      *typeDump   `json:"key,omitempty"`
	Value    *typeDump   `json:"value,omitempty"`
	Members  []*typeDump `json:"members,omitempty"`
	Required []propDump  `json:"required,omitempty"`
	Optional []propDump  `json:"optional,omitempty"`
}

type propDump struct {
	Name string    `json:"name"`
	Type *typeDump `json:"type"`
}

type declarationDump struct {
	Name string    `json:"name"`
	Type *typeDump `json:"type"`
}

// runDumpTypes classifies every declaration and prints the resulting
// category trees as JSON. Debug surface only; the trees expand every branch
// eagerly.
func runDumpTypes(source string, cfg *maptype.Config) int {
	bindings, diags, err := maptype.ProcessTypes(dumpHandlers(), source, cfg)
	if out := diags.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	dump := make([]declarationDump, len(bindings))
	for i, b := range bindings {
		dump[i] = declarationDump{Name: b.Name, Type: b.Result}
	}

	data, err := json.Marshal(dump, jsontext.WithIndent("  "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: encoding dump: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

// dumpHandlers folds every category into its JSON tree node.
func dumpHandlers() typemap.TypeMap[*typeDump] {
	leaf := func(kind typemap.Kind) func() (*typeDump, error) {
		return func() (*typeDump, error) {
			return &typeDump{Kind: kind.String()}, nil
		}
	}
	wrap := func(kind typemap.Kind) func(typemap.Thunk[*typeDump]) (*typeDump, error) {
		return func(elem typemap.Thunk[*typeDump]) (*typeDump, error) {
			e, err := elem()
			if err != nil {
				return nil, err
			}
			return &typeDump{Kind: kind.String(), Element: e}, nil
		}
	}
	list := func(kind typemap.Kind) func([]typemap.Thunk[*typeDump]) (*typeDump, error) {
		return func(members []typemap.Thunk[*typeDump]) (*typeDump, error) {
			nodes := make([]*typeDump, len(members))
			for i, member := range members {
				m, err := member()
				if err != nil {
					return nil, err
				}
				nodes[i] = m
			}
			return &typeDump{Kind: kind.String(), Members: nodes}, nil
		}
	}
	group := func(props []typemap.Prop[*typeDump]) ([]propDump, error) {
		nodes := make([]propDump, len(props))
		for i, prop := range props {
			p, err := prop.Type()
			if err != nil {
				return nil, err
			}
			nodes[i] = propDump{Name: prop.Key, Type: p}
		}
		return nodes, nil
	}

	return typemap.TypeMap[*typeDump]{
		Literal: func(raw string) (*typeDump, error) {
			return &typeDump{Kind: typemap.KindLiteral.String(), Literal: raw}, nil
		},
		String:      leaf(typemap.KindString),
		Number:      leaf(typemap.KindNumber),
		Boolean:     leaf(typemap.KindBoolean),
		Null:        leaf(typemap.KindNull),
		Undefined:   leaf(typemap.KindUndefined),
		Void:        leaf(typemap.KindVoid),
		Unknown:     leaf(typemap.KindUnknown),
		EmptyObject: leaf(typemap.KindEmptyObject),

		StringIndexObject: wrap(typemap.KindStringIndexObject),
		NumberIndexObject: wrap(typemap.KindNumberIndexObject),
		Array:             wrap(typemap.KindArray),

		Record: func(key, value typemap.Thunk[*typeDump]) (*typeDump, error) {
			k, err := key()
			if err != nil {
				return nil, err
			}
			v, err := value()
			if err != nil {
				return nil, err
			}
			return &typeDump{Kind: typemap.KindRecord.String(), Key: k, Value: v}, nil
		},

		Object: func(required, optional []typemap.Prop[*typeDump]) (*typeDump, error) {
			req, err := group(required)
			if err != nil {
				return nil, err
			}
			opt, err := group(optional)
			if err != nil {
				return nil, err
			}
			return &typeDump{Kind: typemap.KindObject.String(), Required: req, Optional: opt}, nil
		},

		Function: func(args []typemap.Thunk[*typeDump], ret typemap.Thunk[*typeDump]) (*typeDump, error) {
			return &typeDump{Kind: typemap.KindFunction.String()}, nil
		},

		Union:        list(typemap.KindUnion),
		Intersection: list(typemap.KindIntersection),
		Tuple:        list(typemap.KindTuple),
	}
}
