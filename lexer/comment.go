/*
File : kuin-parser/lexer/comment.go

Nestable `{ ... }` comments (§4.1, §9). A plain whitespace-style skip
does not work here: comments nest, and a `"` or `'` literal inside a
comment can itself contain a `}` that must not be mistaken for the
comment's close. This scanner tracks brace depth and routes around
string/char literals exactly as the main scanner would, without
producing tokens for any of it.
*/
package lexer

import "fmt"

// skipComment consumes a comment starting at src[pos] == '{' and returns
// the position just past its matching close brace. depth starts at 1.
// Returns an error if the comment is unterminated.
func skipComment(src string, pos, line, col int) (newPos, newLine, newCol int, err error) {
	depth := 1
	i := pos + 1
	l, c := line, col+1

	for depth > 0 {
		if i >= len(src) {
			return 0, 0, 0, fmt.Errorf("%d:%d: unterminated comment", line, col)
		}
		ch := src[i]
		switch ch {
		case '{':
			depth++
			i++
			c++
		case '}':
			depth--
			i++
			c++
		case '\n':
			i++
			l++
			c = 1
		case '"':
			j, jl, jc, serr := skipQuoted(src, i, l, c, '"')
			if serr != nil {
				return 0, 0, 0, serr
			}
			i, l, c = j, jl, jc
		case '\'':
			j, jl, jc, serr := skipQuoted(src, i, l, c, '\'')
			if serr != nil {
				return 0, 0, 0, serr
			}
			i, l, c = j, jl, jc
		default:
			i++
			c++
		}
	}
	return i, l, c, nil
}

// skipQuoted consumes a string/char literal (without interpreting
// escapes) starting at src[pos] == quote, for use while skimming
// through a comment. Returns the position just past the closing quote.
func skipQuoted(src string, pos, line, col int, quote byte) (newPos, newLine, newCol int, err error) {
	i := pos + 1
	l, c := line, col+1
	for {
		if i >= len(src) {
			return 0, 0, 0, fmt.Errorf("%d:%d: unterminated literal inside comment", line, col)
		}
		ch := src[i]
		switch {
		case ch == '\\' && i+1 < len(src):
			i += 2
			c += 2
		case ch == quote:
			i++
			c++
			return i, l, c, nil
		case ch == '\n':
			i++
			l++
			c = 1
		default:
			i++
			c++
		}
	}
}
