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

package assembler

import (
	"fmt"
	"io"

	"gosvm/pkg/encoding"
	"gosvm/pkg/parser"
)

// ResolveLabels is the first pass: it binds every label name to the
// count of instruction nodes preceding it in source order. Labels
// never advance the counter, only instructions do. A redeclared name
// silently takes the later address (last declaration wins). This pass
// never fails; undefined references surface in GenerateCode.
func ResolveLabels(nodes []parser.Node) map[string]int {
	labels := make(map[string]int)

	address := 0

	for i := range nodes {
		switch nodes[i].Type {
		case parser.NODE_LABEL:
			labels[nodes[i].Name] = address

		case parser.NODE_INSTRUCTION:
			address++
		}
	}

	return labels
}

func renderOperand(arg *parser.Operand) string {
	switch arg.Type {
	case parser.OPERAND_INT:
		return encoding.FormatInt(arg.Int)

	case parser.OPERAND_FLOAT:
		return encoding.FormatFloat(arg.Float)
	}

	// String literals render as the bare identifier (the '/' marker
	// is parse-time only), variable names render as-is.
	return arg.Ident
}

// GenerateCode is the second pass: it renders one instruction string
// per instruction node, in source order, substituting resolved
// addresses for branch label operands. Label nodes contribute nothing.
// Fails with *UndefinedLabelError on the first branch target missing
// from the table; forward declarations were already captured by
// ResolveLabels, so only never-declared names fail here.
func GenerateCode(nodes []parser.Node, labels map[string]int) ([]string, error) {
	instructions := make([]string, 0, len(nodes))

	for i := range nodes {
		node := &nodes[i]

		if node.Type != parser.NODE_INSTRUCTION {
			continue
		}

		if node.Arg == nil {
			instructions = append(instructions, node.Opcode.String())
			continue
		}

		if node.Arg.Type == parser.OPERAND_LABEL {
			address, exists := labels[node.Arg.Ident]

			if !exists {
				return nil, &UndefinedLabelError{
					node.Arg.Position, node.Arg.Ident,
				}
			}

			instructions = append(
				instructions,
				fmt.Sprintf("%s %d", node.Opcode, address),
			)

			continue
		}

		instructions = append(
			instructions,
			node.Opcode.String()+" "+renderOperand(node.Arg),
		)
	}

	return instructions, nil
}

// WriteProgram emits one alias directive per instruction, addressed by
// its zero-based slot index within the fixed program namespace.
func WriteProgram(output io.Writer, instructions []string) error {
	for index, instruction := range instructions {
		if _, err := fmt.Fprintf(
			output, "alias %s.%d \"%s\"\n",
			ProgramNamespace, index, instruction,
		); err != nil {
			return err
		}
	}

	return nil
}

// AssembleSource runs the whole pipeline over the source text: parse,
// resolve, generate. On success the optional symtable receives the
// label addresses and per-instruction source offsets. Any failure
// aborts with no partial result.
func AssembleSource(input io.Reader, symtable *SymTable) ([]string, error) {
	nodes, err := parser.ParseSource(input)

	if err != nil {
		return nil, err
	}

	labels := ResolveLabels(nodes)

	instructions, err := GenerateCode(nodes, labels)

	if err != nil {
		return nil, err
	}

	if symtable != nil {
		address := 0

		for i := range nodes {
			if nodes[i].Type == parser.NODE_INSTRUCTION {
				symtable.Symbols[address] = nodes[i].Position.LineByte
				address++
			}
		}

		for name, address := range labels {
			symtable.Labels[name] = address
		}
	}

	return instructions, nil
}
