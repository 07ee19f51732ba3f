package program

import "gopkg.in/yaml.v3"

type typeField struct {
	Type string `yaml:"type"`
}

func peekType(node *yaml.Node) (string, error) {
	var t typeField
	if err := node.Decode(&t); err != nil {
		return "", wrapDecodeErr(node, err)
	}
	if t.Type == "" {
		return "", &ParseError{Line: node.Line, Column: node.Column, Msg: `missing "type" field`}
	}
	return t.Type, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || node.Kind == 0 || node.Tag == "!!null"
}

func wrapDecodeErr(node *yaml.Node, err error) error {
	return &ParseError{Line: node.Line, Column: node.Column, Msg: err.Error()}
}
