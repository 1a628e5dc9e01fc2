package css // import "github.com/styletool/parse/css"

import (
	"io"
	"strconv"
)

const indentStep = "    "

const hexDigits = "0123456789abcdef"

////////////////////////////////////////////////////////////////

// Stylesheet is the root of a parsed style tree. The tree is a pure value
// after parsing; its leaves alias the source buffer.
type Stylesheet struct {
	Rules []Rule
}

// Bytes returns the canonical text of the whole stylesheet. Consecutive rules
// are separated by a blank line.
func (s *Stylesheet) Bytes() []byte {
	var dst []byte
	for i, rule := range s.Rules {
		if i != 0 {
			dst = append(dst, '\n', '\n')
		}
		dst = rule.appendRule(dst, 0)
	}
	return dst
}

// WriteTo writes the canonical text of the stylesheet to the writer.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

////////////////////////////////////////////////////////////////

// Rule is either a StyleRule or an AtRule.
type Rule interface {
	appendRule(dst []byte, indent int) []byte
}

// StyleRule is a selector list with a declaration block. Multiline records
// whether the source ended the block with a semicolon right before the
// closing brace, which makes the formatter lay out one declaration per line.
// Start and End are the byte span of the rule in the source buffer.
type StyleRule struct {
	Selectors []Selector
	Decls     []Declaration
	Multiline bool
	Start     int
	End       int
}

func (r *StyleRule) appendRule(dst []byte, indent int) []byte {
	dst = appendIndent(dst, indent)
	for i, sel := range r.Selectors {
		if i != 0 {
			dst = append(dst, ',', ' ')
		}
		dst = sel.appendSelector(dst)
	}
	dst = append(dst, ' ', '{')
	if r.Multiline {
		dst = append(dst, '\n')
		for i := range r.Decls {
			dst = appendIndent(dst, indent+1)
			dst = r.Decls[i].appendDeclaration(dst)
			dst = append(dst, ';', '\n')
		}
		dst = appendIndent(dst, indent)
		dst = append(dst, '}')
	} else {
		dst = append(dst, ' ')
		for i := range r.Decls {
			if i != 0 {
				dst = append(dst, ';', ' ')
			}
			dst = r.Decls[i].appendDeclaration(dst)
		}
		dst = append(dst, ' ', '}')
	}
	return dst
}

// AtRule is a recognized rule variant the parser does not produce yet.
type AtRule struct {
	Name []byte
}

func (r *AtRule) appendRule(dst []byte, indent int) []byte {
	dst = appendIndent(dst, indent)
	dst = append(dst, '@')
	dst = append(dst, r.Name...)
	return append(dst, ';')
}

func appendIndent(dst []byte, indent int) []byte {
	for i := 0; i < indent; i++ {
		dst = append(dst, indentStep...)
	}
	return dst
}

////////////////////////////////////////////////////////////////

// Selector is a single selector; only SimpleSelector is implemented.
type Selector interface {
	appendSelector(dst []byte) []byte
}

// SimpleSelector is an optional element name followed by ID and class
// specifiers. At least one of the two is always present.
type SimpleSelector struct {
	Element    ElementName // nil when the selector has no element name
	Specifiers []Specifier
}

func (s *SimpleSelector) appendSelector(dst []byte) []byte {
	if s.Element != nil {
		dst = s.Element.appendElementName(dst)
	}
	for _, spec := range s.Specifiers {
		dst = spec.appendSpecifier(dst)
	}
	return dst
}

// ElementName is either a TypeSelector or Universal.
type ElementName interface {
	appendElementName(dst []byte) []byte
}

// TypeSelector matches elements by tag name.
type TypeSelector struct {
	Name []byte
}

func (e TypeSelector) appendElementName(dst []byte) []byte {
	return append(dst, e.Name...)
}

// Universal is the * selector.
type Universal struct{}

func (Universal) appendElementName(dst []byte) []byte {
	return append(dst, '*')
}

// Specifier narrows a simple selector, by ID or by class.
type Specifier interface {
	appendSpecifier(dst []byte) []byte
}

// IDSpecifier matches by element ID. Name excludes the leading #.
type IDSpecifier struct {
	Name []byte
}

func (s IDSpecifier) appendSpecifier(dst []byte) []byte {
	dst = append(dst, '#')
	return append(dst, s.Name...)
}

// ClassSpecifier matches by class name. Name excludes the leading dot.
type ClassSpecifier struct {
	Name []byte
}

func (s ClassSpecifier) appendSpecifier(dst []byte) []byte {
	dst = append(dst, '.')
	return append(dst, s.Name...)
}

////////////////////////////////////////////////////////////////

// Declaration is a property with its value expressions. Values is never
// empty.
type Declaration struct {
	Property []byte
	Values   []Value
}

func (d *Declaration) appendDeclaration(dst []byte) []byte {
	dst = append(dst, d.Property...)
	dst = append(dst, ':')
	for _, v := range d.Values {
		dst = append(dst, ' ')
		dst = v.appendValue(dst)
	}
	return dst
}

////////////////////////////////////////////////////////////////

// Value is a single value expression: Keyword, RGB3, RGB6 or Dimension.
type Value interface {
	appendValue(dst []byte) []byte
}

// Keyword is a bare identifier value.
type Keyword struct {
	Data []byte
}

func (v Keyword) appendValue(dst []byte) []byte {
	return append(dst, v.Data...)
}

// RGB3 is a 3-digit hexadecimal color; each channel holds 4 bits. It is kept
// separate from RGB6 so the formatter reproduces the author's digit count.
type RGB3 struct {
	R, G, B uint8
}

func (v RGB3) appendValue(dst []byte) []byte {
	return append(dst, '#', hexDigits[v.R&0xf], hexDigits[v.G&0xf], hexDigits[v.B&0xf])
}

// RGB6 is a 6-digit hexadecimal color; each channel holds 8 bits.
type RGB6 struct {
	R, G, B uint8
}

func (v RGB6) appendValue(dst []byte) []byte {
	return append(dst, '#',
		hexDigits[v.R>>4], hexDigits[v.R&0xf],
		hexDigits[v.G>>4], hexDigits[v.G&0xf],
		hexDigits[v.B>>4], hexDigits[v.B&0xf])
}

// Dimension is a number with a unit from the closed Unit set.
type Dimension struct {
	Number float32
	Unit   Unit
}

func (v Dimension) appendValue(dst []byte) []byte {
	dst = strconv.AppendFloat(dst, float64(v.Number), 'f', -1, 32)
	return append(dst, v.Unit.String()...)
}

////////////////////////////////////////////////////////////////

// Unit is the closed set of dimension units.
type Unit uint32

// Unit values.
const (
	Px Unit = iota
)

// String returns the canonical name of a Unit.
func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return "Invalid(" + strconv.Itoa(int(u)) + ")"
}
