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
	"fmt"
	"strings"
)

type TokenType uint
type NodeType uint
type OperandType uint
type OpcodeType uint

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

type Token struct {
	Type     TokenType
	Position Cursor
	Value    string
}

// Operand is the single argument of an instruction, when its opcode
// takes one. Ident holds the textual payload for string literals,
// label references, and variable names.
type Operand struct {
	Type     OperandType
	Ident    string
	Int      int64
	Float    float64
	Position Cursor
}

// Node is one statement of the source program: either a label
// declaration or an instruction with an optional operand.
type Node struct {
	Type     NodeType
	Name     string
	Opcode   OpcodeType
	Arg      *Operand
	Position Cursor
}

// String returns the canonical mnemonic emitted into the final
// program text. Comparison and memory opcodes spell differently from
// their source forms (eq -> iseq, store -> store_l, ...).
func (op OpcodeType) String() string {
	switch op {
	case OPCODE_PUSH:
		return "push"
	case OPCODE_POP:
		return "pop"
	case OPCODE_DUP:
		return "dup"
	case OPCODE_DOT:
		return "dot"
	case OPCODE_ADD:
		return "add"
	case OPCODE_SUB:
		return "sub"
	case OPCODE_MUL:
		return "mul"
	case OPCODE_DIV:
		return "div"
	case OPCODE_POW:
		return "pow"
	case OPCODE_MIN:
		return "min"
	case OPCODE_MAX:
		return "max"
	case OPCODE_JMP:
		return "jmp"
	case OPCODE_JIF:
		return "jif"
	case OPCODE_CALL:
		return "call"
	case OPCODE_RET:
		return "ret"
	case OPCODE_ISEQ:
		return "iseq"
	case OPCODE_ISNEQ:
		return "isneq"
	case OPCODE_ISLT:
		return "islt"
	case OPCODE_ISLE:
		return "isle"
	case OPCODE_ISGT:
		return "isgt"
	case OPCODE_ISGE:
		return "isge"
	case OPCODE_STORE_L:
		return "store_l"
	case OPCODE_LOAD_L:
		return "load_l"
	case OPCODE_STORE_G:
		return "store_g"
	case OPCODE_LOAD_G:
		return "load_g"
	case OPCODE_HLT:
		return "hlt"
	}

	return "<invalid>"
}

func tokenTypeName(tokenType TokenType) string {
	switch tokenType {
	case TOKEN_IDENT:
		return "Identifier"
	case TOKEN_LABEL:
		return "Label"
	case TOKEN_INT:
		return "Integer"
	case TOKEN_FLOAT:
		return "Float"
	case TOKEN_STRING:
		return "String"
	}

	return "<none>"
}

type TokenError interface {
	GetPosition() Cursor
}

type UnexpectedCharacterError struct {
	Position Cursor
	Received rune
}

func (err *UnexpectedCharacterError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected character %c",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedCharacterError struct {
	Position Cursor
}

func (err *OversizedCharacterError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedCharacterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Character exceeds ASCII limit",
		err.Position.Line,
		err.Position.Column,
	)
}

type UnexpectedTokenError struct {
	Position Cursor
	Received TokenType
}

func (err *UnexpectedTokenError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected %s",
		err.Position.Line,
		err.Position.Column,
		tokenTypeName(err.Received),
	)
}

type UnknownIdentifierError struct {
	Position Cursor
	Received string
}

func (err *UnknownIdentifierError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownIdentifierError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown identifier '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidOperandError struct {
	Position Cursor
	Required []TokenType
	Received TokenType
}

func (err *InvalidOperandError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidOperandError) Error() string {
	var requiredString string

	requiredStrings := make([]string, 0, len(err.Required))

	for _, tokenType := range err.Required {
		requiredStrings = append(requiredStrings, tokenTypeName(tokenType))
	}

	if count := len(requiredStrings); count == 1 {
		requiredString = requiredStrings[0]
	} else if count == 2 {
		requiredString = requiredStrings[0] + " or " + requiredStrings[1]
	} else if count > 2 {
		requiredString = strings.Join(
			requiredStrings[:len(requiredStrings)-1], ", ",
		) + ", or " + requiredStrings[len(requiredStrings)-1]
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid operand\n\twant:%s\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		requiredString,
		tokenTypeName(err.Received),
	)
}

type InvalidLiteralError struct {
	Position Cursor
}

func (err *InvalidLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal",
		err.Position.Line,
		err.Position.Column,
	)
}
