package css // import "github.com/styletool/parse/css"

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/styletool/parse"
)

func assertParse(t *testing.T, input, expected string) {
	stylesheet, err := Parse([]byte(input))
	if !assert.NoError(t, err, "parser must not return error in "+input) {
		return
	}

	rendered := stylesheet.Bytes()
	assert.Equal(t, expected, string(rendered), "rendered string must match expected result in "+input)

	// render must be a fixed point of parse∘render
	reparsed, err := Parse(rendered)
	if assert.NoError(t, err, "rendered output must parse again in "+input) {
		assert.Equal(t, string(rendered), string(reparsed.Bytes()), "render must be idempotent in "+input)
	}
}

func assertParseError(t *testing.T, input string, kind parse.Kind) {
	_, err := Parse([]byte(input))
	if !assert.Error(t, err, "parser must return error in "+input) {
		return
	}
	perr, ok := err.(*parse.Error)
	if assert.True(t, ok, "error must be a *parse.Error in "+input) {
		assert.Equal(t, kind, perr.Kind, "error kind must match in "+input)
		assert.True(t, 0 <= perr.Offset && perr.Offset <= len(input), "error offset must lie in the source in "+input)
	}
}

////////////////////////////////////////////////////////////////

func TestParse(t *testing.T) {
	assertParse(t, "", "")
	assertParse(t, "p{color:red}", "p { color: red }")
	assertParse(t, "p{color:red;}", "p {\n    color: red;\n}")
	assertParse(t, "p{color:red;background:blue}", "p { color: red; background: blue }")
	assertParse(t, "p{color:red;background:blue;}", "p {\n    color: red;\n    background: blue;\n}")
	assertParse(t, "  p  {  color  :  red  }  ", "p { color: red }")
	assertParse(t, "*{color:red}", "* { color: red }")
	assertParse(t, "div#id.cls{x:y}", "div#id.cls { x: y }")
	assertParse(t, ".cls{x:y}", ".cls { x: y }")
	assertParse(t, "#id{x:y}", "#id { x: y }")
	assertParse(t, "*.cls#id{x:y}", "*.cls#id { x: y }")
	assertParse(t, "a,b,c{x:y}", "a, b, c { x: y }")
	assertParse(t, "a{x:y}b{z:w}", "a { x: y }\n\nb { z: w }")
	assertParse(t, "/*lead*/a{x:y/*mid*/}", "a { x: y }")
	assertParse(t, "a{margin:4px 2px}", "a { margin: 4px 2px }")
	assertParse(t, "a{margin:2.5px}", "a { margin: 2.5px }")
	assertParse(t, "a{margin:0px}", "a { margin: 0px }")

	// color widths are preserved, digits are canonicalized to lowercase
	assertParse(t, "a{color:#fff}", "a { color: #fff }")
	assertParse(t, "a{color:#ffffff}", "a { color: #ffffff }")
	assertParse(t, "a{color:#AbCdEf}", "a { color: #abcdef }")

	// stray trailing comma before the block is tolerated
	assertParse(t, "div, { color: red }", "div { color: red }")
}

func TestParseScenarios(t *testing.T) {
	// a messy rule with a trailing semicolon becomes a multiline block
	assertParse(t, "   p {\ncolor\n : red\n   ;}", "p {\n    color: red;\n}")

	// canonical text renders to itself
	canonical := "div.foo, #bar {\n" +
		"    display: block;\n" +
		"    padding: 4px 2px;\n" +
		"}\n" +
		"\n" +
		"* { color: #fff }"
	assertParse(t, canonical, canonical)
}

func TestParseErrors(t *testing.T) {
	var errorTests = []struct {
		css  string
		kind parse.Kind
	}{
		{"{color:red}", parse.ErrSyntax}, // empty selector
		{",{color:red}", parse.ErrSyntax},
		{"div", parse.ErrSyntax}, // missing block
		{"div{", parse.ErrSyntax},
		{"div{}", parse.ErrSyntax}, // empty declaration block
		{"div{color}", parse.ErrSyntax},
		{"div{color:}", parse.ErrSyntax},
		{"div{color:red", parse.ErrSyntax},
		{"div{color:red;;}", parse.ErrSyntax},
		{"div{color:red;", parse.ErrSyntax},
		{"div..cls{color:red}", parse.ErrSyntax},
		{"div{color:%}", parse.ErrSyntax},

		{"@media print{}", parse.ErrUnsupported},
		{"<!--", parse.ErrUnsupported},
		{"-->", parse.ErrUnsupported},
		{"div[a]{color:red}", parse.ErrUnsupported},
		{"div:hover{color:red}", parse.ErrUnsupported},
		{"div{width:4}", parse.ErrUnsupported},
		{"div{width:50%}", parse.ErrUnsupported},
		{"div{content:'x'}", parse.ErrUnsupported},
		{"div{background:url(x.png)}", parse.ErrUnsupported},
		{"div{color:rgb(1,2,3)}", parse.ErrUnsupported},

		{"div{width:4em}", parse.ErrBadValue}, // unit outside the closed set
		{"div{width:4Px}", parse.ErrBadValue}, // units are case-sensitive
		{"div{color:#ggg}", parse.ErrBadValue},
		{"div{color:#ffff}", parse.ErrBadValue},
		{"div{color:#ff}", parse.ErrBadValue},
	}
	for _, tt := range errorTests {
		assertParseError(t, tt.css, tt.kind)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("div {\n    width: 4em;\n}"))
	perr, ok := err.(*parse.Error)
	if assert.True(t, ok) {
		assert.Equal(t, parse.ErrBadValue, perr.Kind)
		assert.Equal(t, 17, perr.Offset, "offset must point at the dimension token")
		line, col, _ := perr.Position()
		assert.Equal(t, 2, line)
		assert.Equal(t, 12, col)
	}
}

func TestParseRuleSpans(t *testing.T) {
	src := []byte("a { x: y }\n\nb {\n    z: w;\n}")
	stylesheet, err := Parse(src)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Equal(t, 2, len(stylesheet.Rules)) {
		return
	}

	first := stylesheet.Rules[0].(*StyleRule)
	assert.Equal(t, "a { x: y }", string(src[first.Start:first.End]))
	second := stylesheet.Rules[1].(*StyleRule)
	assert.Equal(t, "b {\n    z: w;\n}", string(src[second.Start:second.End]))
	assert.False(t, first.Multiline)
	assert.True(t, second.Multiline)
}

func TestParseTree(t *testing.T) {
	stylesheet, err := Parse([]byte("div.foo{padding:4px;color:#1a2b3c;}"))
	if !assert.NoError(t, err) {
		return
	}

	rule := stylesheet.Rules[0].(*StyleRule)
	sel := rule.Selectors[0].(*SimpleSelector)
	assert.Equal(t, "div", string(sel.Element.(TypeSelector).Name))
	assert.Equal(t, "foo", string(sel.Specifiers[0].(ClassSpecifier).Name))

	assert.Equal(t, "padding", string(rule.Decls[0].Property))
	assert.Equal(t, Dimension{Number: 4, Unit: Px}, rule.Decls[0].Values[0])
	assert.Equal(t, "color", string(rule.Decls[1].Property))
	assert.Equal(t, RGB6{R: 0x1a, G: 0x2b, B: 0x3c}, rule.Decls[1].Values[0])
	assert.True(t, rule.Multiline)
}
