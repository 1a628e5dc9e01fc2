/*
Package css is a tokenizer, parser and formatter for the stylesheet subset
understood by the surrounding HTML tooling. The tokenizer is implemented
along the lines of the specifications at http://www.w3.org/TR/css-syntax-3/

The parser builds an immutable tree whose leaves alias the source buffer, so
the tree must not outlive the buffer it was parsed from. The formatter
serializes that tree back to canonical text.
*/
package css // import "github.com/styletool/parse/css"

import (
	"bytes"
	"io"

	"github.com/styletool/parse"
)

// Lexer is the state for the lexer. It scans a full in-memory source buffer
// and hands out tokens whose Data fields are subslices of that buffer.
type Lexer struct {
	src []byte
	pos int
	err error
}

// NewLexer returns a new Lexer for a given source buffer.
func NewLexer(b []byte) *Lexer {
	return &Lexer{src: b}
}

// Err returns the error encountered during lexing, this is io.EOF at the end of the buffer.
func (z *Lexer) Err() error {
	return z.err
}

// Next returns the next Token. It returns an Error token at the end of the buffer, with Err() set to io.EOF.
func (z *Lexer) Next() Token {
	start := z.pos
	if z.pos >= len(z.src) {
		if z.err == nil {
			z.err = io.EOF
		}
		return Token{ErrorToken, nil, start}
	}

	switch c := z.src[z.pos]; c {
	case ' ', '\t', '\n', '\r', '\f':
		z.pos++
		for isWhitespace(z.peek(0)) {
			z.pos++
		}
		return z.token(WhitespaceToken, start)
	case '"', '\'':
		z.consumeString()
		return z.token(StringToken, start)
	case '#':
		if isName(z.peek(1)) {
			z.pos++
			for isName(z.peek(0)) {
				z.pos++
			}
			return z.token(HashToken, start)
		}
	case '(':
		z.pos++
		return z.token(LeftParenthesisToken, start)
	case ')':
		z.pos++
		return z.token(RightParenthesisToken, start)
	case '[':
		z.pos++
		return z.token(LeftBracketToken, start)
	case ']':
		z.pos++
		return z.token(RightBracketToken, start)
	case '{':
		z.pos++
		return z.token(LeftBraceToken, start)
	case '}':
		z.pos++
		return z.token(RightBraceToken, start)
	case ':':
		z.pos++
		return z.token(ColonToken, start)
	case ';':
		z.pos++
		return z.token(SemicolonToken, start)
	case ',':
		z.pos++
		return z.token(CommaToken, start)
	case '+', '.':
		if tt, ok := z.consumeNumeric(); ok {
			return z.token(tt, start)
		}
	case '-':
		if tt, ok := z.consumeNumeric(); ok {
			return z.token(tt, start)
		}
		if tt, ok := z.consumeIdentlike(); ok {
			return z.token(tt, start)
		}
		if bytes.HasPrefix(z.src[z.pos:], []byte("-->")) {
			z.pos += 3
			return z.token(CDCToken, start)
		}
	case '/':
		if z.peek(1) == '*' {
			z.consumeComment()
			return z.token(CommentToken, start)
		}
	case '<':
		if bytes.HasPrefix(z.src[z.pos:], []byte("<!--")) {
			z.pos += 4
			return z.token(CDOToken, start)
		}
	case '@':
		z.pos++
		if z.consumeIdent() {
			return z.token(AtKeywordToken, start)
		}
		z.pos = start
	default:
		if tt, ok := z.consumeNumeric(); ok {
			return z.token(tt, start)
		}
		if tt, ok := z.consumeIdentlike(); ok {
			return z.token(tt, start)
		}
	}
	z.pos++
	return z.token(DelimToken, start)
}

func (z *Lexer) token(tt TokenType, start int) Token {
	return Token{tt, z.src[start:z.pos], start}
}

func (z *Lexer) peek(i int) byte {
	if z.pos+i >= len(z.src) {
		return 0
	}
	return z.src[z.pos+i]
}

////////////////////////////////////////////////////////////////

// consumeNumeric consumes a NumberToken, PercentageToken or DimensionToken.
func (z *Lexer) consumeNumeric() (TokenType, bool) {
	num, unit := parse.Dimension(z.src[z.pos:])
	if num == 0 {
		return ErrorToken, false
	}
	tt := NumberToken
	if unit > 0 {
		if z.src[z.pos+num] == '%' {
			tt = PercentageToken
		} else {
			tt = DimensionToken
		}
	}
	z.pos += num + unit
	return tt, true
}

// consumeIdent consumes an identifier, returning false without moving when the
// input does not start one.
func (z *Lexer) consumeIdent() bool {
	i := z.pos
	if i < len(z.src) && z.src[i] == '-' {
		i++
	}
	if i >= len(z.src) || !isIdentStart(z.src[i]) {
		return false
	}
	for i < len(z.src) && isName(z.src[i]) {
		i++
	}
	z.pos = i
	return true
}

// consumeIdentlike consumes an IdentToken, FunctionToken or URLToken.
func (z *Lexer) consumeIdentlike() (TokenType, bool) {
	start := z.pos
	if !z.consumeIdent() {
		return ErrorToken, false
	}
	if z.peek(0) != '(' {
		return IdentToken, true
	}
	name := z.src[start:z.pos]
	z.pos++
	if !bytes.EqualFold(name, []byte("url")) {
		return FunctionToken, true
	}
	for z.pos < len(z.src) {
		if c := z.src[z.pos]; c == '"' || c == '\'' {
			z.consumeString()
		} else if c == ')' {
			z.pos++
			break
		} else {
			z.pos++
		}
	}
	return URLToken, true
}

// consumeString consumes a quoted string up to the matching quote, or to the
// end of the buffer when unterminated.
func (z *Lexer) consumeString() {
	delim := z.src[z.pos]
	z.pos++
	for z.pos < len(z.src) {
		c := z.src[z.pos]
		if c == '\\' && z.pos+1 < len(z.src) {
			z.pos += 2
			continue
		}
		z.pos++
		if c == delim {
			break
		}
	}
}

func (z *Lexer) consumeComment() {
	z.pos += 2
	for z.pos < len(z.src) {
		if z.src[z.pos] == '*' && z.peek(1) == '/' {
			z.pos += 2
			return
		}
		z.pos++
	}
}

////////////////////////////////////////////////////////////////

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c >= 0x80
}

func isName(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '-'
}
