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
	"io"

	"gosvm/pkg/encoding"
)

// Keywords only ever match a complete identifier token, never a
// prefix of one, so 'popular' cannot tokenize as 'pop'.
func parseOpcode(ident string) OpcodeType {
	if ident == "push" {
		return OPCODE_PUSH
	} else if ident == "pop" {
		return OPCODE_POP
	} else if ident == "dup" {
		return OPCODE_DUP
	} else if ident == "dot" {
		return OPCODE_DOT
	} else if ident == "add" {
		return OPCODE_ADD
	} else if ident == "sub" {
		return OPCODE_SUB
	} else if ident == "mul" {
		return OPCODE_MUL
	} else if ident == "div" {
		return OPCODE_DIV
	} else if ident == "pow" {
		return OPCODE_POW
	} else if ident == "min" {
		return OPCODE_MIN
	} else if ident == "max" {
		return OPCODE_MAX
	} else if ident == "jmp" {
		return OPCODE_JMP
	} else if ident == "jif" {
		return OPCODE_JIF
	} else if ident == "call" {
		return OPCODE_CALL
	} else if ident == "ret" {
		return OPCODE_RET
	} else if ident == "eq" {
		return OPCODE_ISEQ
	} else if ident == "ne" {
		return OPCODE_ISNEQ
	} else if ident == "lt" {
		return OPCODE_ISLT
	} else if ident == "le" {
		return OPCODE_ISLE
	} else if ident == "gt" {
		return OPCODE_ISGT
	} else if ident == "ge" {
		return OPCODE_ISGE
	} else if ident == "store" {
		return OPCODE_STORE_L
	} else if ident == "load" {
		return OPCODE_LOAD_L
	} else if ident == "gstore" {
		return OPCODE_STORE_G
	} else if ident == "gload" {
		return OPCODE_LOAD_G
	} else if ident == "hlt" {
		return OPCODE_HLT
	}

	return OPCODE_INVALID
}

// Value operand of 'push': float, else integer, else boolean keyword
// (erased to 1/0 here, no boolean survives into the node), else a
// string literal token.
func parseValueOperand(token *Token) (*Operand, error) {
	switch token.Type {
	case TOKEN_FLOAT:
		value, err := encoding.DecodeFloat(token.Value)

		if err != nil {
			return nil, &InvalidLiteralError{token.Position}
		}

		return &Operand{
			Type:     OPERAND_FLOAT,
			Float:    value,
			Position: token.Position,
		}, nil

	case TOKEN_INT:
		value, err := encoding.DecodeInt(token.Value)

		if err != nil {
			return nil, &InvalidLiteralError{token.Position}
		}

		return &Operand{
			Type:     OPERAND_INT,
			Int:      value,
			Position: token.Position,
		}, nil

	case TOKEN_STRING:
		return &Operand{
			Type:     OPERAND_STRING,
			Ident:    token.Value,
			Position: token.Position,
		}, nil

	case TOKEN_IDENT:
		if token.Value == "true" {
			return &Operand{
				Type:     OPERAND_INT,
				Int:      1,
				Position: token.Position,
			}, nil
		} else if token.Value == "false" {
			return &Operand{
				Type:     OPERAND_INT,
				Int:      0,
				Position: token.Position,
			}, nil
		}
	}

	return nil, &InvalidOperandError{
		token.Position,
		[]TokenType{TOKEN_INT, TOKEN_FLOAT, TOKEN_STRING},
		token.Type,
	}
}

// ParseSource consumes the whole source text and produces the ordered
// statement sequence, or the syntax error for the first input the
// grammar cannot place. There is no partial result: one malformed
// statement aborts the translation.
func ParseSource(input io.Reader) ([]Node, error) {
	source, err := io.ReadAll(input)

	if err != nil {
		return nil, err
	}

	tokens, err := lexSource(string(source))

	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		token := &tokens[i]

		switch token.Type {
		case TOKEN_LABEL:
			nodes = append(nodes, Node{
				Type:     NODE_LABEL,
				Name:     token.Value,
				Position: token.Position,
			})

		case TOKEN_IDENT:
			opcode := parseOpcode(token.Value)

			if opcode == OPCODE_INVALID {
				return nil, &UnknownIdentifierError{
					token.Position, token.Value,
				}
			}

			node := Node{
				Type:     NODE_INSTRUCTION,
				Opcode:   opcode,
				Position: token.Position,
			}

			switch opcode {
			case OPCODE_PUSH:
				if i+1 >= len(tokens) {
					return nil, &InvalidOperandError{
						token.Position,
						[]TokenType{TOKEN_INT, TOKEN_FLOAT, TOKEN_STRING},
						TOKEN_NONE,
					}
				}

				i++

				arg, err := parseValueOperand(&tokens[i])

				if err != nil {
					return nil, err
				}

				node.Arg = arg

			case OPCODE_JMP, OPCODE_JIF, OPCODE_CALL:
				if i+1 >= len(tokens) || tokens[i+1].Type != TOKEN_IDENT {
					position := token.Position
					received := TOKEN_NONE

					if i+1 < len(tokens) {
						position = tokens[i+1].Position
						received = tokens[i+1].Type
					}

					return nil, &InvalidOperandError{
						position, []TokenType{TOKEN_IDENT}, received,
					}
				}

				i++

				node.Arg = &Operand{
					Type:     OPERAND_LABEL,
					Ident:    tokens[i].Value,
					Position: tokens[i].Position,
				}

			case OPCODE_STORE_L, OPCODE_LOAD_L, OPCODE_STORE_G, OPCODE_LOAD_G:
				if i+1 >= len(tokens) || tokens[i+1].Type != TOKEN_IDENT {
					position := token.Position
					received := TOKEN_NONE

					if i+1 < len(tokens) {
						position = tokens[i+1].Position
						received = tokens[i+1].Type
					}

					return nil, &InvalidOperandError{
						position, []TokenType{TOKEN_IDENT}, received,
					}
				}

				i++

				node.Arg = &Operand{
					Type:     OPERAND_IDENT,
					Ident:    tokens[i].Value,
					Position: tokens[i].Position,
				}
			}

			nodes = append(nodes, node)

		default:
			return nil, &UnexpectedTokenError{token.Position, token.Type}
		}
	}

	return nodes, nil
}
