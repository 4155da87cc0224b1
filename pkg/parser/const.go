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

const (
	TOKEN_NONE TokenType = iota
	TOKEN_IDENT
	TOKEN_LABEL
	TOKEN_INT
	TOKEN_FLOAT
	TOKEN_STRING
)

const (
	NODE_LABEL NodeType = iota
	NODE_INSTRUCTION
)

const (
	OPERAND_INT OperandType = iota
	OPERAND_FLOAT
	OPERAND_STRING
	OPERAND_LABEL
	OPERAND_IDENT
)

const (
	// Stack Operations
	OPCODE_INVALID OpcodeType = iota
	OPCODE_PUSH
	OPCODE_POP
	OPCODE_DUP
	OPCODE_DOT

	// Arithmetic Operations
	OPCODE_ADD
	OPCODE_SUB
	OPCODE_MUL
	OPCODE_DIV
	OPCODE_POW
	OPCODE_MIN
	OPCODE_MAX

	// Branch Operations
	OPCODE_JMP
	OPCODE_JIF
	OPCODE_CALL
	OPCODE_RET

	// Logical Comparison Operations
	OPCODE_ISEQ
	OPCODE_ISNEQ
	OPCODE_ISLT
	OPCODE_ISLE
	OPCODE_ISGT
	OPCODE_ISGE

	// Memory Operations
	OPCODE_STORE_L
	OPCODE_LOAD_L
	OPCODE_STORE_G
	OPCODE_LOAD_G

	// State Operations
	OPCODE_HLT
)
