/*
 * XVM - Opcode values.
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

// Package opcodemap holds the opcode numbering shared by the CPU, the
// assembler and the disassembler.
package opcodemap

// Instruction opcodes. An instruction occupies four memory cells:
// the opcode followed by three operand cells.
const (
	OpHALT = 0 // Stop execution

	// Memory access.
	OpLODI = 5  // R[a] <- M[b]
	OpLODR = 6  // R[a] <- M[R[b]]
	OpSTRI = 7  // M[a] <- R[b]
	OpSTRR = 8  // M[R[a]] <- R[b]
	OpMOV  = 9  // R[a] <- R[b]
	OpAMIN = 10 // window <- [R[a], R[b]]
	OpSETL = 11 // enable protection window
	OpSETF = 12 // disable protection window

	// Arithmetic.
	OpADD  = 20 // R[a] <- R[b] + R[c]
	OpADDC = 21 // R[a] <- R[b] + c
	OpLOC  = 22 // R[a] <- b
	OpSUB  = 23 // R[a] <- R[b] - R[c]
	OpMULT = 24 // R[a] <- R[b] * R[c]
	OpDIV  = 25 // R[a] <- R[b] / R[c]
	OpMOD  = 26 // R[a] <- R[b] mod R[c]

	// Comparison and control flow.
	OpCMP   = 30 // compare R[a] with R[b]
	OpJMP   = 31 // conditional jump to b on predicate a
	OpGOTOP = 32 // unconditional jump to a
	OpLCMP  = 33 // R[a] <- comparison flag

	// Logic.
	OpLOGOR  = 40 // R[a] <- R[b] or R[c]
	OpLOGAND = 41 // R[a] <- R[b] and R[c]
	OpLOGNOT = 42 // R[a] <- not R[b]

	// Port I/O.
	OpPRTS = 50 // ports[b].SendValue(R[a])
	OpPRCS = 51 // ports[b].SendSignal(a)
	OpPRTG = 52 // ports[b].RecvValue(&R[a])
	OpPRCG = 53 // ports[b].RecvSignal(&R[a])
)

// Info describes one opcode for the assembler and disassembler.
type Info struct {
	Name string // Assembler mnemonic.
	Args int    // Number of operand cells the opcode uses.
}

// Table maps opcode values to their mnemonic and operand count.
var Table = map[int32]Info{
	OpHALT:   {"halt", 0},
	OpLODI:   {"lodi", 2},
	OpLODR:   {"lodr", 2},
	OpSTRI:   {"stri", 2},
	OpSTRR:   {"strr", 2},
	OpMOV:    {"mov", 2},
	OpAMIN:   {"amin", 2},
	OpSETL:   {"setl", 0},
	OpSETF:   {"setf", 0},
	OpADD:    {"add", 3},
	OpADDC:   {"addc", 3},
	OpLOC:    {"loc", 2},
	OpSUB:    {"sub", 3},
	OpMULT:   {"mult", 3},
	OpDIV:    {"div", 3},
	OpMOD:    {"mod", 3},
	OpCMP:    {"cmp", 2},
	OpJMP:    {"jmp", 2},
	OpGOTOP:  {"gotop", 1},
	OpLCMP:   {"lcmp", 1},
	OpLOGOR:  {"logor", 3},
	OpLOGAND: {"logand", 3},
	OpLOGNOT: {"lognot", 2},
	OpPRTS:   {"prts", 2},
	OpPRCS:   {"prcs", 2},
	OpPRTG:   {"prtg", 2},
	OpPRCG:   {"prcg", 2},
}

// Mnemonics is the reverse of Table, keyed by mnemonic.
var Mnemonics = map[string]int32{}

func init() {
	for op, info := range Table {
		Mnemonics[info.Name] = op
	}
}
