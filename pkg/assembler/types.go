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

	"gosvm/pkg/parser"
)

// SymTable maps the assembled program back to its source: label names
// to their resolved addresses, and instruction addresses to the byte
// offset of the source line they came from.
type SymTable struct {
	Source  string
	Labels  map[string]int
	Symbols map[int]int64
}

type UndefinedLabelError struct {
	Position parser.Cursor
	Received string
}

func (err *UndefinedLabelError) GetPosition() parser.Cursor {
	return err.Position
}

func (err *UndefinedLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Undefined label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}
