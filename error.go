package parse // import "github.com/styletool/parse"

import (
	"fmt"
	"strconv"
)

// Kind classifies a parse error.
type Kind uint32

// Kind values.
const (
	ErrSyntax      Kind = iota // wrong token where the grammar requires another
	ErrUnsupported             // construct recognized by the grammar but not implemented
	ErrBadValue                // malformed color or number, or a unit outside the closed set
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case ErrSyntax:
		return "Syntax"
	case ErrUnsupported:
		return "Unsupported"
	case ErrBadValue:
		return "BadValue"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Error is a parsing error returned by the parsers. It contains a message and the byte offset at which the error occurred.
type Error struct {
	Kind    Kind
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
}

// NewError creates a new error for the given source buffer and offset.
func NewError(kind Kind, msg string, b []byte, offset int) *Error {
	line, column, context := Position(b, offset)
	return &Error{
		Kind:    kind,
		Message: msg,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
