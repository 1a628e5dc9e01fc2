package css // import "github.com/styletool/parse/css"

// TokenBuffer wraps a Lexer and gives the parser a single token of pushback.
// It also hides whitespace and comment tokens, which carry no grammar.
type TokenBuffer struct {
	z *Lexer

	pushed    Token
	hasPushed bool
}

// NewTokenBuffer returns a new TokenBuffer for a given Lexer.
func NewTokenBuffer(z *Lexer) *TokenBuffer {
	return &TokenBuffer{z: z}
}

// Err returns the error encountered by the underlying Lexer.
func (tb *TokenBuffer) Err() error {
	return tb.z.Err()
}

// Shift returns the next significant token, preferring a previously unshifted
// token over advancing the lexer.
func (tb *TokenBuffer) Shift() Token {
	if tb.hasPushed {
		tb.hasPushed = false
		return tb.pushed
	}
	for {
		t := tb.z.Next()
		if t.TokenType == WhitespaceToken || t.TokenType == CommentToken {
			continue
		}
		return t
	}
}

// Unshift pushes exactly one token back onto the buffer. The grammar never
// needs more than one token of pushback, so a second Unshift without an
// intervening Shift panics.
func (tb *TokenBuffer) Unshift(t Token) {
	if tb.hasPushed {
		panic("css: unshift onto an occupied token buffer")
	}
	tb.pushed, tb.hasPushed = t, true
}

// Peek returns the next significant token without consuming it.
func (tb *TokenBuffer) Peek() Token {
	t := tb.Shift()
	tb.Unshift(t)
	return t
}
