// Copyright (C) 2024  The gosvm authors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package parser

import (
	"unicode"
	"unicode/utf8"
)

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isIdentStart(char byte) bool {
	return char == '_' ||
		(char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z')
}

func isIdentChar(char byte) bool {
	return isIdentStart(char) || isDigit(char)
}

func tokenCursor(line int, lineByte int, start int, size int) Cursor {
	return Cursor{
		Line:     line,
		Column:   start - lineByte + 1,
		Byte:     int64(start),
		Size:     int64(size),
		LineByte: int64(lineByte),
	}
}

// Tokenizes the whole source text. Identifiers immediately followed by
// ':' collapse into a single TOKEN_LABEL, and '/' immediately followed
// by an identifier collapses into a single TOKEN_STRING, so statements
// never need to look across whitespace for either marker.
func lexSource(source string) ([]Token, error) {
	tokens := make([]Token, 0, 64)

	line := 1
	lineByte := 0

	for i := 0; i < len(source); {
		char := source[i]

		switch {
		case char == '\n':
			i++
			line++
			lineByte = i

		case char < utf8.RuneSelf && unicode.IsSpace(rune(char)):
			i++

		case char >= utf8.RuneSelf:
			return nil, &OversizedCharacterError{
				tokenCursor(line, lineByte, i, 1),
			}

		case isIdentStart(char):
			start := i

			for i < len(source) && isIdentChar(source[i]) {
				i++
			}

			value := source[start:i]

			if i < len(source) && source[i] == ':' {
				i++

				tokens = append(tokens, Token{
					Type:     TOKEN_LABEL,
					Position: tokenCursor(line, lineByte, start, i-start),
					Value:    value,
				})
			} else {
				tokens = append(tokens, Token{
					Type:     TOKEN_IDENT,
					Position: tokenCursor(line, lineByte, start, i-start),
					Value:    value,
				})
			}

		case isDigit(char) || char == '.':
			start := i

			for i < len(source) && isDigit(source[i]) {
				i++
			}

			// Float wins over integer when the digits continue with
			// '.' and at least one more digit ([0-9]*\.[0-9]+). A
			// trailing bare '.' is left behind and rejected on the
			// next iteration.
			if i < len(source) && source[i] == '.' &&
				i+1 < len(source) && isDigit(source[i+1]) {
				i++

				for i < len(source) && isDigit(source[i]) {
					i++
				}

				tokens = append(tokens, Token{
					Type:     TOKEN_FLOAT,
					Position: tokenCursor(line, lineByte, start, i-start),
					Value:    source[start:i],
				})
			} else if i > start {
				tokens = append(tokens, Token{
					Type:     TOKEN_INT,
					Position: tokenCursor(line, lineByte, start, i-start),
					Value:    source[start:i],
				})
			} else {
				return nil, &UnexpectedCharacterError{
					tokenCursor(line, lineByte, i, 1), '.',
				}
			}

		case char == '/':
			if i+1 >= len(source) || !isIdentStart(source[i+1]) {
				return nil, &UnexpectedCharacterError{
					tokenCursor(line, lineByte, i, 1), '/',
				}
			}

			start := i
			i++

			identStart := i

			for i < len(source) && isIdentChar(source[i]) {
				i++
			}

			tokens = append(tokens, Token{
				Type:     TOKEN_STRING,
				Position: tokenCursor(line, lineByte, start, i-start),
				Value:    source[identStart:i],
			})

		default:
			return nil, &UnexpectedCharacterError{
				tokenCursor(line, lineByte, i, 1), rune(char),
			}
		}
	}

	return tokens, nil
}
