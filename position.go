package parse // import "github.com/styletool/parse"

import (
	"fmt"
	"strings"
)

// Position returns the line and column number for a certain offset in a source buffer, together with the line's text as context.
// It is useful for recovering the position in a file that caused an error.
// It only treats \n, \r, and \r\n as newlines, which might be different from some languages also recognizing \f, U+2028, and U+2029 to be newlines.
func Position(b []byte, offset int) (line, col int, context string) {
	if offset < 0 || len(b) < offset {
		offset = len(b)
	}

	line = 1
	lineStart := 0
	i := 0
	for i < offset {
		c := b[i]
		if c == '\n' {
			i++
			line++
			lineStart = i
		} else if c == '\r' {
			if i+1 < len(b) && b[i+1] == '\n' {
				if offset == i+1 {
					// offset points at the \n of \r\n, stay on this line
					break
				}
				i += 2
			} else {
				i++
			}
			line++
			lineStart = i
		} else {
			i++
		}
	}
	col = offset - lineStart + 1

	lineEnd := lineStart
	for lineEnd < len(b) && b[lineEnd] != '\n' && b[lineEnd] != '\r' {
		lineEnd++
	}
	context = fmt.Sprintf("%5d: %s\n", line, string(b[lineStart:lineEnd]))
	context += fmt.Sprintf("%s^", strings.Repeat(" ", col+6))
	return
}
