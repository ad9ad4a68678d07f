package parser

import "fmt"

// ParseError is the single error Compile/Interp can return: the 1-based
// byte offset of the first token that made the expression unparseable.
// Parsing stops at the first fault; there is no error recovery and no
// second error to chain.
type ParseError struct {
	Offset int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d", e.Offset)
}
