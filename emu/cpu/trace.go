/*
 * XVM - Instruction trace.
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

package cpu

import "fmt"

// Emit the trace record for one executed instruction: the decoded
// four-tuple, the register file as eight rows of two right-justified
// fields, and a separator. The format, misspelling included, is an
// external contract consumed by existing tooling.
func (cpu *CPU) printTrace(opcode, a, b, c int32) {
	fmt.Fprintf(cpu.traceOut, "Comand: %d %d %d %d\n", opcode, a, b, c)
	for i := 0; i < NumRegisters; i += 2 {
		fmt.Fprintf(cpu.traceOut, "%4d%4d\n", cpu.regs[i], cpu.regs[i+1])
	}
	fmt.Fprintln(cpu.traceOut, "--------")
}
