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

package encoding

import (
	"strconv"
	"strings"
)

// Decodes a base-10 integer literal in the format: 123
func DecodeInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Decodes a float literal in the formats: 1.5, .5, 12.25
func DecodeFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func FormatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// Formats a float in its shortest plain decimal form, never
// scientific notation, keeping a decimal point so a whole-valued
// float operand stays visibly a float (2.0 renders as "2.0", not
// "2").
func FormatFloat(value float64) string {
	result := strconv.FormatFloat(value, 'f', -1, 64)

	if !strings.Contains(result, ".") {
		result += ".0"
	}

	return result
}
