// +build gofuzz

package fuzz

import (
	"fmt"

	"github.com/styletool/parse"
	"github.com/styletool/parse/css"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	data = parse.Copy(data)
	if stylesheet, err := css.Parse(data); err == nil {
		src := stylesheet.Bytes()
		stylesheet2, err := css.Parse(src)
		if err != nil {
			panic(err)
		}
		if src2 := stylesheet2.Bytes(); string(src) != string(src2) {
			fmt.Println("CSS1:", string(src))
			fmt.Println("CSS2:", string(src2))
			panic("render not idempotent")
		}
		return 1
	}
	return 0
}
