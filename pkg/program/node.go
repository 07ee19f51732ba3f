package program

import (
	"fmt"

	"github.com/dshills/mapgen/pkg/generator"
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/token"
	"gopkg.in/yaml.v3"
)

// defs is the registry a call node resolves names against, filled after
// the whole document is built so forward and recursive references work.
type defs map[string]generator.Node

type rawTokens struct {
	Tokens []string `yaml:"tokens"`
}

type rawSetMaybe struct {
	Predicate yaml.Node `yaml:"predicate"`
	Token     string    `yaml:"token"`
}

type rawMargin struct {
	Side   string    `yaml:"side"`
	Width  int       `yaml:"width"`
	Border yaml.Node `yaml:"border"`
	Inside yaml.Node `yaml:"inside"`
}

type rawMargins struct {
	Width  int       `yaml:"width"`
	Border yaml.Node `yaml:"border"`
	Inside yaml.Node `yaml:"inside"`
}

type rawHRatio struct {
	R     float64   `yaml:"r"`
	Left  yaml.Node `yaml:"left"`
	Right yaml.Node `yaml:"right"`
}

type rawVRatio struct {
	R      float64   `yaml:"r"`
	Top    yaml.Node `yaml:"top"`
	Bottom yaml.Node `yaml:"bottom"`
}

type rawPlaceElem struct {
	Size      [2]int    `yaml:"size"`
	Count     int       `yaml:"count"`
	Predicate yaml.Node `yaml:"predicate"`
	Position  string    `yaml:"position"`
	MaxTries  int       `yaml:"maxTries"`
	Generator yaml.Node `yaml:"generator"`
}

type rawPlace struct {
	Elems []rawPlaceElem `yaml:"elems"`
}

type rawNoiseMapElem struct {
	Lower     float64   `yaml:"lower"`
	Upper     float64   `yaml:"upper"`
	Generator yaml.Node `yaml:"generator"`
}

type rawNoiseMap struct {
	Elems []rawNoiseMapElem `yaml:"elems"`
}

type rawChain struct {
	Generators []yaml.Node `yaml:"generators"`
}

type rawConnectElem struct {
	Cost      *float64  `yaml:"cost"`
	Predicate yaml.Node `yaml:"predicate"`
	Generator yaml.Node `yaml:"generator"`
}

type rawConnect struct {
	ToConnect yaml.Node        `yaml:"toConnect"`
	Attempts  int              `yaml:"attempts"`
	Elems     []rawConnectElem `yaml:"elems"`
}

type rawCall struct {
	Name string `yaml:"name"`
}

func buildTokens(ss []string) []token.Token {
	out := make([]token.Token, len(ss))
	for i, s := range ss {
		out[i] = token.Token(s)
	}
	return out
}

func marginSide(s string, node *yaml.Node) (generator.MarginSide, error) {
	switch s {
	case "top":
		return generator.MarginTop, nil
	case "bottom":
		return generator.MarginBottom, nil
	case "left":
		return generator.MarginLeft, nil
	case "right":
		return generator.MarginRight, nil
	default:
		return 0, &ParseError{Line: node.Line, Column: node.Column, Msg: fmt.Sprintf("unknown margin side %q", s)}
	}
}

func placementPosition(s string, node *yaml.Node) (generator.PlacementPosition, error) {
	switch s {
	case "", "random":
		return generator.PlacementRandom, nil
	case "middle":
		return generator.PlacementMiddle, nil
	default:
		return 0, &ParseError{Line: node.Line, Column: node.Column, Msg: fmt.Sprintf("unknown placement position %q", s)}
	}
}

func buildNode(node *yaml.Node, d defs) (generator.Node, error) {
	typ, err := peekType(node)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "none":
		return generator.None{}, nil

	case "set":
		var raw rawTokens
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return generator.Set{Tokens: buildTokens(raw.Tokens)}, nil

	case "reset":
		var raw rawTokens
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return generator.Reset{Tokens: buildTokens(raw.Tokens)}, nil

	case "set_maybe":
		var raw rawSetMaybe
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		pred, err := buildPredicate(&raw.Predicate)
		if err != nil {
			return nil, err
		}
		return generator.SetMaybe{Predicate: pred, Tok: token.Token(raw.Token)}, nil

	case "remove":
		var raw rawTokens
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return generator.Remove{Tokens: buildTokens(raw.Tokens)}, nil

	case "margin":
		var raw rawMargin
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		side, err := marginSide(raw.Side, node)
		if err != nil {
			return nil, err
		}
		border, err := buildNode(&raw.Border, d)
		if err != nil {
			return nil, err
		}
		inside, err := buildNode(&raw.Inside, d)
		if err != nil {
			return nil, err
		}
		return generator.Margin{Side: side, Width: raw.Width, Border: border, Inside: inside}, nil

	case "margins":
		var raw rawMargins
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		border, err := buildNode(&raw.Border, d)
		if err != nil {
			return nil, err
		}
		inside, err := buildNode(&raw.Inside, d)
		if err != nil {
			return nil, err
		}
		return generator.Margins{Width: raw.Width, Border: border, Inside: inside}, nil

	case "hratio":
		var raw rawHRatio
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		left, err := buildNode(&raw.Left, d)
		if err != nil {
			return nil, err
		}
		right, err := buildNode(&raw.Right, d)
		if err != nil {
			return nil, err
		}
		return generator.HRatio{R: raw.R, Left: left, Right: right}, nil

	case "vratio":
		var raw rawVRatio
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		top, err := buildNode(&raw.Top, d)
		if err != nil {
			return nil, err
		}
		bottom, err := buildNode(&raw.Bottom, d)
		if err != nil {
			return nil, err
		}
		return generator.VRatio{R: raw.R, Top: top, Bottom: bottom}, nil

	case "place":
		var raw rawPlace
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		elems := make([]generator.PlaceElem, len(raw.Elems))
		for i, re := range raw.Elems {
			gen, err := buildNode(&re.Generator, d)
			if err != nil {
				return nil, err
			}
			var pred predicate.Node = predicate.True{}
			if !isNull(&re.Predicate) {
				pred, err = buildPredicate(&re.Predicate)
				if err != nil {
					return nil, err
				}
			}
			pos, err := placementPosition(re.Position, node)
			if err != nil {
				return nil, err
			}
			count := re.Count
			if count == 0 {
				count = 1
			}
			elems[i] = generator.PlaceElem{
				Size:      grid.Vec2{X: re.Size[0], Y: re.Size[1]},
				Generator: gen,
				Count:     count,
				Predicate: pred,
				Position:  pos,
				MaxTries:  re.MaxTries,
			}
		}
		return generator.Place{Elems: elems}, nil

	case "noisemap":
		var raw rawNoiseMap
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		elems := make([]generator.NoiseMapElem, len(raw.Elems))
		for i, re := range raw.Elems {
			gen, err := buildNode(&re.Generator, d)
			if err != nil {
				return nil, err
			}
			elems[i] = generator.NoiseMapElem{Lower: re.Lower, Upper: re.Upper, Generator: gen}
		}
		return generator.NoiseMap{Elems: elems}, nil

	case "chain":
		var raw rawChain
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		gens := make([]generator.Node, len(raw.Generators))
		for i := range raw.Generators {
			gen, err := buildNode(&raw.Generators[i], d)
			if err != nil {
				return nil, err
			}
			gens[i] = gen
		}
		return generator.Chain{Generators: gens}, nil

	case "connect":
		var raw rawConnect
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		toConnect, err := buildPredicate(&raw.ToConnect)
		if err != nil {
			return nil, err
		}
		elems := make([]generator.ConnectElem, len(raw.Elems))
		for i, re := range raw.Elems {
			pred, err := buildPredicate(&re.Predicate)
			if err != nil {
				return nil, err
			}
			gen, err := buildNode(&re.Generator, d)
			if err != nil {
				return nil, err
			}
			elems[i] = generator.ConnectElem{Cost: re.Cost, Predicate: pred, Generator: gen}
		}
		return generator.Connect{ToConnect: toConnect, Elems: elems, Attempts: raw.Attempts}, nil

	case "call":
		var raw rawCall
		if err := node.Decode(&raw); err != nil {
			return nil, wrapDecodeErr(node, err)
		}
		return &callRef{name: raw.Name, defs: d}, nil

	default:
		return nil, &ParseError{Line: node.Line, Column: node.Column, Msg: fmt.Sprintf("unknown generator type %q", typ)}
	}
}
