package css // import "github.com/styletool/parse/css"

import (
	"io"
	"strconv"

	"github.com/styletool/parse"
)

type parser struct {
	tb  *TokenBuffer
	src []byte
}

// Parse parses a full stylesheet source buffer and returns the style tree.
// On any malformed or unimplemented construct it returns a *parse.Error whose
// Kind tells syntax errors, unsupported constructs and bad values apart, and
// whose Offset points at the offending token. There is no partial tree on
// failure.
func Parse(b []byte) (*Stylesheet, error) {
	p := &parser{
		tb:  NewTokenBuffer(NewLexer(b)),
		src: b,
	}
	return p.parseRules()
}

func (p *parser) syntaxError(msg string, offset int) error {
	return parse.NewError(parse.ErrSyntax, msg, p.src, offset)
}

func (p *parser) unsupportedError(msg string, offset int) error {
	return parse.NewError(parse.ErrUnsupported, msg, p.src, offset)
}

func (p *parser) valueError(msg string, offset int) error {
	return parse.NewError(parse.ErrBadValue, msg, p.src, offset)
}

////////////////////////////////////////////////////////////////

func (p *parser) parseRules() (*Stylesheet, error) {
	stylesheet := &Stylesheet{}
	for {
		t := p.tb.Shift()
		switch t.TokenType {
		case ErrorToken:
			if p.tb.Err() == io.EOF {
				return stylesheet, nil
			}
			return nil, p.tb.Err()
		case CDOToken, CDCToken:
			return nil, p.unsupportedError("HTML comment markers are not supported", t.Offset)
		case AtKeywordToken:
			return nil, p.unsupportedError("at-rules are not supported", t.Offset)
		default:
			p.tb.Unshift(t)
			rule, err := p.parseStyleRule()
			if err != nil {
				return nil, err
			}
			stylesheet.Rules = append(stylesheet.Rules, rule)
		}
	}
}

func (p *parser) parseStyleRule() (*StyleRule, error) {
	rule := &StyleRule{Start: p.tb.Peek().Offset}

	sel, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	rule.Selectors = append(rule.Selectors, sel)
	for {
		t := p.tb.Shift()
		if t.TokenType != CommaToken {
			p.tb.Unshift(t)
			break
		}
		if p.tb.Peek().TokenType == LeftBraceToken {
			// stray trailing comma right before the block
			break
		}
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		rule.Selectors = append(rule.Selectors, sel)
	}

	if t := p.tb.Shift(); t.TokenType != LeftBraceToken {
		return nil, p.syntaxError("expected '{' after selector list", t.Offset)
	}

	decl, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}
	rule.Decls = append(rule.Decls, decl)
	for {
		t := p.tb.Shift()
		if t.TokenType != SemicolonToken {
			p.tb.Unshift(t)
			break
		}
		if p.tb.Peek().TokenType == RightBraceToken {
			// trailing semicolon right before the closing brace signals the
			// one-declaration-per-line layout
			rule.Multiline = true
			break
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		rule.Decls = append(rule.Decls, decl)
	}

	t := p.tb.Shift()
	if t.TokenType != RightBraceToken {
		return nil, p.syntaxError("expected '}' after declarations", t.Offset)
	}
	rule.End = t.Offset + len(t.Data)
	return rule, nil
}

func (p *parser) parseSelector() (Selector, error) {
	return p.parseSimpleSelector()
}

func (p *parser) parseSimpleSelector() (Selector, error) {
	sel := &SimpleSelector{}

	t := p.tb.Shift()
	if t.TokenType == IdentToken {
		sel.Element = TypeSelector{Name: t.Data}
	} else if t.TokenType == DelimToken && t.Data[0] == '*' {
		sel.Element = Universal{}
	} else {
		p.tb.Unshift(t)
	}

	for {
		t := p.tb.Shift()
		switch {
		case t.TokenType == HashToken:
			sel.Specifiers = append(sel.Specifiers, IDSpecifier{Name: t.Data[1:]})
		case t.TokenType == DelimToken && t.Data[0] == '.':
			name := p.tb.Shift()
			if name.TokenType != IdentToken {
				return nil, p.syntaxError("expected class name after '.'", name.Offset)
			}
			sel.Specifiers = append(sel.Specifiers, ClassSpecifier{Name: name.Data})
		case t.TokenType == LeftBracketToken:
			return nil, p.unsupportedError("attribute selectors are not supported", t.Offset)
		case t.TokenType == ColonToken:
			return nil, p.unsupportedError("pseudo-classes and pseudo-elements are not supported", t.Offset)
		default:
			p.tb.Unshift(t)
			if sel.Element == nil && len(sel.Specifiers) == 0 {
				return nil, p.syntaxError("empty selector", t.Offset)
			}
			return sel, nil
		}
	}
}

func (p *parser) parseDeclaration() (Declaration, error) {
	t := p.tb.Shift()
	if t.TokenType != IdentToken {
		return Declaration{}, p.syntaxError("expected property name", t.Offset)
	}
	decl := Declaration{Property: t.Data}

	if t := p.tb.Shift(); t.TokenType != ColonToken {
		return Declaration{}, p.syntaxError("expected ':' after property name", t.Offset)
	}

	for {
		t := p.tb.Peek()
		if t.TokenType == SemicolonToken || t.TokenType == RightBraceToken {
			break
		}
		val, err := p.parseValue()
		if err != nil {
			return Declaration{}, err
		}
		decl.Values = append(decl.Values, val)
	}
	if len(decl.Values) == 0 {
		return Declaration{}, p.syntaxError("declaration has no value", p.tb.Peek().Offset)
	}
	return decl, nil
}

func (p *parser) parseValue() (Value, error) {
	t := p.tb.Shift()
	switch t.TokenType {
	case DimensionToken:
		num, _ := parse.Dimension(t.Data)
		f, err := strconv.ParseFloat(string(t.Data[:num]), 32)
		if err != nil {
			return nil, p.valueError("malformed dimension number", t.Offset)
		}
		if !parse.Equal(t.Data[num:], []byte("px")) {
			return nil, p.valueError("unknown unit '"+string(t.Data[num:])+"'", t.Offset)
		}
		return Dimension{Number: float32(f), Unit: Px}, nil
	case IdentToken:
		return Keyword{Data: t.Data}, nil
	case HashToken:
		return p.parseColor(t)
	case NumberToken, PercentageToken, StringToken, URLToken, FunctionToken:
		return nil, p.unsupportedError(t.TokenType.String()+" values are not supported", t.Offset)
	case ErrorToken:
		if p.tb.Err() == io.EOF {
			return nil, p.syntaxError("unexpected end of stylesheet", t.Offset)
		}
		return nil, p.tb.Err()
	}
	return nil, p.syntaxError("unexpected token in declaration value", t.Offset)
}

func (p *parser) parseColor(t Token) (Value, error) {
	hex := t.Data[1:]
	for _, c := range hex {
		if !isHexDigit(c) {
			return nil, p.valueError("bad hexadecimal digit in color", t.Offset)
		}
	}
	switch len(hex) {
	case 3:
		return RGB3{
			R: hexNibble(hex[0]),
			G: hexNibble(hex[1]),
			B: hexNibble(hex[2]),
		}, nil
	case 6:
		return RGB6{
			R: hexNibble(hex[0])<<4 | hexNibble(hex[1]),
			G: hexNibble(hex[2])<<4 | hexNibble(hex[3]),
			B: hexNibble(hex[4])<<4 | hexNibble(hex[5]),
		}, nil
	}
	return nil, p.valueError("color must have 3 or 6 hexadecimal digits", t.Offset)
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexNibble(c byte) uint8 {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return c - 'A' + 10
}
