package program

import (
	"fmt"
	"os"

	"github.com/dshills/mapgen/pkg/generator"
	"gopkg.in/yaml.v3"
)

// Program is a fully built generator tree: every named generator in the
// document, plus the one designated as Root.
type Program struct {
	Root generator.Node
	defs defs
}

type document struct {
	Root       string              `yaml:"root"`
	Generators map[string]yaml.Node `yaml:"generators"`
}

// Load reads and builds a program from a YAML file.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and builds a program from a YAML document in
// memory.
func LoadFromBytes(data []byte) (*Program, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Root == "" {
		return nil, fmt.Errorf("program: document has no \"root\" entry")
	}

	d := defs{}
	for name, node := range doc.Generators {
		node := node
		built, err := buildNode(&node, d)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", name, err)
		}
		d[name] = built
	}

	root, ok := d[doc.Root]
	if !ok {
		return nil, fmt.Errorf("program: root generator %q is not defined", doc.Root)
	}
	return &Program{Root: root, defs: d}, nil
}

// Lookup returns a named generator, for callers that want to run a
// sub-generator directly rather than through Root.
func (p *Program) Lookup(name string) (generator.Node, bool) {
	n, ok := p.defs[name]
	return n, ok
}
