// +build gofuzz

package fuzz

import (
	"github.com/styletool/parse"
	"github.com/styletool/parse/css"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	data = parse.Copy(data)
	z := css.NewLexer(data)
	for {
		token := z.Next()
		if token.TokenType == css.ErrorToken {
			break
		}
		if len(token.Data) == 0 {
			panic("token must not be empty")
		}
		if token.Offset < 0 || len(data) < token.Offset+len(token.Data) {
			panic("token span outside the source buffer")
		}
	}
	return 1
}
