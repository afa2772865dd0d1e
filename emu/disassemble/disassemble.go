/*
 * XVM - Disassembler.
 *
 * Copyright 2026, The XVM Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package disassemble turns decoded instructions back into assembler
// mnemonics for the monitor and for assembler listings.
package disassemble

import (
	"fmt"
	"strings"

	op "github.com/xvm-emu/xvm/emu/opcodemap"
)

// Disassemble renders one four-cell instruction. Operand cells beyond the
// opcode's operand count are omitted; an unknown opcode renders as a
// marker with its value.
func Disassemble(opcode, a, b, c int32) string {
	info, ok := op.Table[opcode]
	if !ok {
		return fmt.Sprintf("<unknown opcode: %d>", opcode)
	}

	var str strings.Builder
	str.WriteString(info.Name)
	operands := []int32{a, b, c}
	for i := 0; i < info.Args; i++ {
		fmt.Fprintf(&str, " %d", operands[i])
	}
	return str.String()
}
