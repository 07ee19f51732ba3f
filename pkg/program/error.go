package program

import "fmt"

// ParseError reports a program document defect with its source
// position, matching yaml.v3's own line/column numbering (1-based).
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("program: %d:%d: %s", e.Line, e.Column, e.Msg)
}
