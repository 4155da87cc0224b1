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

package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"gosvm/pkg/parser"
)

type testCase struct {
	Name   string
	Input  string
	Output []parser.Node
}

type failCase struct {
	Name  string
	Input string
	Error error
}

func label(name string) parser.Node {
	return parser.Node{Type: parser.NODE_LABEL, Name: name}
}

func instruction(opcode parser.OpcodeType, arg *parser.Operand) parser.Node {
	return parser.Node{
		Type:   parser.NODE_INSTRUCTION,
		Opcode: opcode,
		Arg:    arg,
	}
}

func intArg(value int64) *parser.Operand {
	return &parser.Operand{Type: parser.OPERAND_INT, Int: value}
}

func floatArg(value float64) *parser.Operand {
	return &parser.Operand{Type: parser.OPERAND_FLOAT, Float: value}
}

func stringArg(ident string) *parser.Operand {
	return &parser.Operand{Type: parser.OPERAND_STRING, Ident: ident}
}

func labelArg(ident string) *parser.Operand {
	return &parser.Operand{Type: parser.OPERAND_LABEL, Ident: ident}
}

func identArg(ident string) *parser.Operand {
	return &parser.Operand{Type: parser.OPERAND_IDENT, Ident: ident}
}

// Success tables compare node content, not cursors; cursor tracking
// has its own test below.
func nodeEqual(want *parser.Node, have *parser.Node) bool {
	if want.Type != have.Type ||
		want.Name != have.Name ||
		want.Opcode != have.Opcode {
		return false
	}

	if (want.Arg == nil) != (have.Arg == nil) {
		return false
	}

	if want.Arg == nil {
		return true
	}

	return want.Arg.Type == have.Arg.Type &&
		want.Arg.Int == have.Arg.Int &&
		want.Arg.Float == have.Arg.Float &&
		want.Arg.Ident == have.Arg.Ident
}

func testParserSuccess(t *testing.T, test *testCase) {
	nodes, err := parser.ParseSource(strings.NewReader(test.Input))

	if err != nil {
		t.Fatal(err)
	}

	if len(nodes) != len(test.Output) {
		t.Fatalf(
			"Invalid node count\nwant:%d\nhave:%d",
			len(test.Output),
			len(nodes),
		)
	}

	for i := range nodes {
		if !nodeEqual(&test.Output[i], &nodes[i]) {
			t.Fatalf(
				"Node mismatch at %d\nwant:%+v\nhave:%+v",
				i,
				test.Output[i],
				nodes[i],
			)
		}
	}
}

func testParserFail(t *testing.T, test *failCase) {
	_, err := parser.ParseSource(strings.NewReader(test.Input))

	if test.Error == nil {
		panic("Fail case missing error value")
	}

	if err == nil {
		t.Fatalf(
			"%s produced error of incorrect type"+
				"\nwant:%T (test.Error)\nhave:<nil>",
			t.Name(),
			test.Error,
		)
	}

	if reflect.TypeOf(err) != reflect.TypeOf(test.Error) {
		t.Fatalf(
			"%s produced error of incorrect type"+
				"\nwant:%T (test.Error)\nhave:%T",
			t.Name(),
			test.Error,
			err,
		)
	}
}

func testSuccess(t *testing.T, tests []testCase) {
	t.Run("Success", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				testParserSuccess(t, &test)
			})
		}
	})
}

func testFail(t *testing.T, tests []failCase) {
	t.Run("Fail", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				testParserFail(t, &test)
			})
		}
	})
}

func TestLabels(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "Label",
			Input:  `start:`,
			Output: []parser.Node{label("start")},
		},
		{
			Name:  "Label Then Instruction",
			Input: `start: hlt`,
			Output: []parser.Node{
				label("start"),
				instruction(parser.OPCODE_HLT, nil),
			},
		},
		{
			Name:   "Underscored Label",
			Input:  `_loop_1:`,
			Output: []parser.Node{label("_loop_1")},
		},
		{
			Name:   "Keyword-Named Label",
			Input:  `add:`,
			Output: []parser.Node{label("add")},
		},
		{
			Name:   "Redeclared Label",
			Input:  "x:\nx:",
			Output: []parser.Node{label("x"), label("x")},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Bare Colon",
			Input: `:`,
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Detached Colon",
			Input: `start :`,
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Bare Identifier",
			Input: `start`,
			Error: &parser.UnknownIdentifierError{},
		},
	})
}

func TestPush(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Push Integer",
			Input: `push 1`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, intArg(1)),
			},
		},
		{
			Name:  "Push Zero-Padded Integer",
			Input: `push 007`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, intArg(7)),
			},
		},
		{
			Name:  "Push Float",
			Input: `push 2.5`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, floatArg(2.5)),
			},
		},
		{
			Name:  "Push Dotted Float",
			Input: `push .5`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, floatArg(0.5)),
			},
		},
		{
			Name:  "Push Whole Float",
			Input: `push 2.0`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, floatArg(2.0)),
			},
		},
		{
			Name:  "Push True",
			Input: `push true`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, intArg(1)),
			},
		},
		{
			Name:  "Push False",
			Input: `push false`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, intArg(0)),
			},
		},
		{
			Name:  "Push String",
			Input: `push /hello`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, stringArg("hello")),
			},
		},
		{
			Name:  "Push Underscored String",
			Input: `push /hello_world2`,
			Output: []parser.Node{
				instruction(parser.OPCODE_PUSH, stringArg("hello_world2")),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Push Missing Operand",
			Input: `push`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Push Identifier",
			Input: `push foo`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Push Label Token",
			Input: `push foo:`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Push Trailing Dot",
			Input: `push 2.`,
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Push Detached Marker",
			Input: `push / hello`,
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Push Negative",
			Input: `push -1`,
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Push Oversized Integer",
			Input: `push 99999999999999999999999999`,
			Error: &parser.InvalidLiteralError{},
		},
	})
}

func TestStackOps(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Pop",
			Input: `pop`,
			Output: []parser.Node{
				instruction(parser.OPCODE_POP, nil),
			},
		},
		{
			Name:  "Dup",
			Input: `dup`,
			Output: []parser.Node{
				instruction(parser.OPCODE_DUP, nil),
			},
		},
		{
			Name:  "Dot",
			Input: `dot`,
			Output: []parser.Node{
				instruction(parser.OPCODE_DOT, nil),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Pop Stray Operand",
			Input: `pop 1`,
			Error: &parser.UnexpectedTokenError{},
		},
		{
			Name:  "Dup Stray String",
			Input: `dup /foo`,
			Error: &parser.UnexpectedTokenError{},
		},
	})
}

func TestArithmeticOps(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Arithmetic",
			Input: "add sub mul div pow min max",
			Output: []parser.Node{
				instruction(parser.OPCODE_ADD, nil),
				instruction(parser.OPCODE_SUB, nil),
				instruction(parser.OPCODE_MUL, nil),
				instruction(parser.OPCODE_DIV, nil),
				instruction(parser.OPCODE_POW, nil),
				instruction(parser.OPCODE_MIN, nil),
				instruction(parser.OPCODE_MAX, nil),
			},
		},
	})
}

func TestBranchOps(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Jmp",
			Input: `jmp start`,
			Output: []parser.Node{
				instruction(parser.OPCODE_JMP, labelArg("start")),
			},
		},
		{
			Name:  "Jif",
			Input: `jif done`,
			Output: []parser.Node{
				instruction(parser.OPCODE_JIF, labelArg("done")),
			},
		},
		{
			Name:  "Call",
			Input: `call func`,
			Output: []parser.Node{
				instruction(parser.OPCODE_CALL, labelArg("func")),
			},
		},
		{
			Name:  "Ret",
			Input: `ret`,
			Output: []parser.Node{
				instruction(parser.OPCODE_RET, nil),
			},
		},
		{
			Name:  "Keyword-Named Target",
			Input: `jmp add`,
			Output: []parser.Node{
				instruction(parser.OPCODE_JMP, labelArg("add")),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Jmp Missing Target",
			Input: `jmp`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Jmp Integer Target",
			Input: `jmp 5`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Call String Target",
			Input: `call /func`,
			Error: &parser.InvalidOperandError{},
		},
	})
}

func TestComparisonOps(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Canonical Rewrite",
			Input: "eq ne lt le gt ge",
			Output: []parser.Node{
				instruction(parser.OPCODE_ISEQ, nil),
				instruction(parser.OPCODE_ISNEQ, nil),
				instruction(parser.OPCODE_ISLT, nil),
				instruction(parser.OPCODE_ISLE, nil),
				instruction(parser.OPCODE_ISGT, nil),
				instruction(parser.OPCODE_ISGE, nil),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Eq Stray Operand",
			Input: `eq 1`,
			Error: &parser.UnexpectedTokenError{},
		},
	})
}

func TestMemoryOps(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Store",
			Input: `store x`,
			Output: []parser.Node{
				instruction(parser.OPCODE_STORE_L, identArg("x")),
			},
		},
		{
			Name:  "Load",
			Input: `load x`,
			Output: []parser.Node{
				instruction(parser.OPCODE_LOAD_L, identArg("x")),
			},
		},
		{
			Name:  "GStore",
			Input: `gstore counter`,
			Output: []parser.Node{
				instruction(parser.OPCODE_STORE_G, identArg("counter")),
			},
		},
		{
			Name:  "GLoad",
			Input: `gload counter`,
			Output: []parser.Node{
				instruction(parser.OPCODE_LOAD_G, identArg("counter")),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Store Missing Variable",
			Input: `store`,
			Error: &parser.InvalidOperandError{},
		},
		{
			Name:  "Store Integer Variable",
			Input: `store 1`,
			Error: &parser.InvalidOperandError{},
		},
	})
}

// A keyword followed by more identifier characters is a plain
// identifier, never a keyword match.
func TestKeywordBoundary(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Keyword Prefix Variable",
			Input: `store popular`,
			Output: []parser.Node{
				instruction(parser.OPCODE_STORE_L, identArg("popular")),
			},
		},
		{
			Name:  "Keyword Prefix Label",
			Input: `pushy:`,
			Output: []parser.Node{
				label("pushy"),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Keyword Prefix Opcode",
			Input: `popular`,
			Error: &parser.UnknownIdentifierError{},
		},
		{
			Name:  "Keyword Prefix Push",
			Input: `pushx 1`,
			Error: &parser.UnknownIdentifierError{},
		},
	})
}

func TestHalt(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:  "Hlt",
			Input: `hlt`,
			Output: []parser.Node{
				instruction(parser.OPCODE_HLT, nil),
			},
		},
	})
}

func TestWhitespace(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "Empty",
			Input:  "",
			Output: []parser.Node{},
		},
		{
			Name:   "Whitespace Only",
			Input:  " \t\n\r\n ",
			Output: []parser.Node{},
		},
		{
			Name:  "Single Line Program",
			Input: `start: push 1 push 2 add jmp start`,
			Output: []parser.Node{
				label("start"),
				instruction(parser.OPCODE_PUSH, intArg(1)),
				instruction(parser.OPCODE_PUSH, intArg(2)),
				instruction(parser.OPCODE_ADD, nil),
				instruction(parser.OPCODE_JMP, labelArg("start")),
			},
		},
		{
			Name:  "Multi Line Program",
			Input: "start:\n\tpush 1\n\tpush 2\n\tadd\n\tjmp start\n",
			Output: []parser.Node{
				label("start"),
				instruction(parser.OPCODE_PUSH, intArg(1)),
				instruction(parser.OPCODE_PUSH, intArg(2)),
				instruction(parser.OPCODE_ADD, nil),
				instruction(parser.OPCODE_JMP, labelArg("start")),
			},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Trailing Garbage",
			Input: "push 1\n@",
			Error: &parser.UnexpectedCharacterError{},
		},
		{
			Name:  "Non-ASCII",
			Input: "push \u00e9",
			Error: &parser.OversizedCharacterError{},
		},
	})
}

func TestErrorPositions(t *testing.T) {
	_, err := parser.ParseSource(strings.NewReader("add\n  @"))

	if err == nil {
		t.Fatal("Expected a syntax error")
	}

	tokenErr, ok := err.(parser.TokenError)

	if !ok {
		t.Fatalf("Error %T carries no position", err)
	}

	cursor := tokenErr.GetPosition()

	if cursor.Line != 2 || cursor.Column != 3 {
		t.Fatalf(
			"Cursor mismatch\nwant:02:03\nhave:%02d:%02d",
			cursor.Line,
			cursor.Column,
		)
	}

	if cursor.LineByte != 4 || cursor.Byte != 6 {
		t.Fatalf(
			"Cursor byte mismatch\nwant:4/6\nhave:%d/%d",
			cursor.LineByte,
			cursor.Byte,
		)
	}
}
