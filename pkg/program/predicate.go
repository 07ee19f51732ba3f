package program

import (
	"fmt"

	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/token"
	"gopkg.in/yaml.v3"
)

type rawOn struct {
	Token string `yaml:"token"`
}

type rawNot struct {
	Predicate yaml.Node `yaml:"predicate"`
}

type rawAndOr struct {
	Predicates []yaml.Node `yaml:"predicates"`
}

type rawChance struct {
	Value float64 `yaml:"value"`
}

func buildPredicate(node *yaml.Node) (predicate.Node, error) {
	if isNull(node) {
		return predicate.True{}, nil
	}
	typ, err := peekType(node)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "on":
		var raw rawOn
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return predicate.On{Tok: token.Token(raw.Token)}, nil

	case "not":
		var raw rawNot
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		inner, err := buildPredicate(&raw.Predicate)
		if err != nil {
			return nil, err
		}
		return predicate.Not{Inner: inner}, nil

	case "true":
		return predicate.True{}, nil

	case "and":
		var raw rawAndOr
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		preds, err := buildPredicateList(raw.Predicates)
		if err != nil {
			return nil, err
		}
		return predicate.And{Preds: preds}, nil

	case "or":
		var raw rawAndOr
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		preds, err := buildPredicateList(raw.Predicates)
		if err != nil {
			return nil, err
		}
		return predicate.Or{Preds: preds}, nil

	case "chance":
		var raw rawChance
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return predicate.Chance{Value: raw.Value}, nil

	default:
		return nil, &ParseError{Line: node.Line, Column: node.Column, Msg: fmt.Sprintf("unknown predicate type %q", typ)}
	}
}

func buildPredicateList(nodes []yaml.Node) ([]predicate.Node, error) {
	out := make([]predicate.Node, len(nodes))
	for i := range nodes {
		p, err := buildPredicate(&nodes[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
