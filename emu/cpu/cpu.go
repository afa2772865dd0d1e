/*
 * XVM - CPU state and instruction loop.
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

// Package cpu implements the XVM core: sixteen signed 32-bit registers, a
// comparison flag, a sticky error flag, a memory protection window, a port
// table and the fetch/decode/dispatch loop over four-cell instructions.
package cpu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xvm-emu/xvm/emu/memory"
	"github.com/xvm-emu/xvm/emu/port"
)

const (
	// NumRegisters is the size of the register file.
	NumRegisters = 16

	// RegSyscall is reserved for a future system call vector. Nothing in
	// the current instruction set treats it specially.
	RegSyscall = 13

	// RegIP holds the address of the next instruction.
	RegIP = 14

	// RegStack is reserved for a future stack pointer. Nothing in the
	// current instruction set treats it specially.
	RegStack = 15

	// instrCells is the width of one instruction in memory cells.
	instrCells = 4
)

// Values of the sticky error flag. Nothing in the instruction set clears
// the flag; it is observable post-mortem.
const (
	ErrFlagNone   int32 = 0 // No error
	ErrFlagLoad   int32 = 1 // Protected load outside the window
	ErrFlagStore  int32 = 3 // Protected store outside the window
	ErrFlagIP     int32 = 4 // Negative instruction pointer
	ErrFlagOpcode int32 = 5 // Unknown opcode
)

// The following errors may be returned.
var (
	// ErrHalted indicates the machine stopped cleanly: a halt
	// instruction, a fetch past the end of memory, a negative
	// instruction pointer or an unknown opcode.
	ErrHalted = errors.New("cpu: halted")

	// ErrDivideByZero indicates a division or modulo by zero. It is a
	// fatal fault.
	ErrDivideByZero = errors.New("cpu: division by zero")

	// ErrRAMTooSmall indicates the requested memory cannot hold even a
	// single instruction.
	ErrRAMTooSmall = errors.New("cpu: ram smaller than one instruction")

	// ErrImageTooBig indicates the program image does not fit in the
	// requested memory.
	ErrImageTooBig = errors.New("cpu: image larger than ram")
)

// CPU is a single core together with its memory and peripherals. All
// resources are owned exclusively by the core; a CPU is not goroutine safe.
type CPU struct {
	regs     [NumRegisters]int32
	cmpFlag  int32       // Comparison flag, -1, 0 or +1.
	errFlag  int32       // Sticky soft error flag.
	winLow   int32       // Protection window, inclusive bounds.
	winHigh  int32       //
	safeMode bool        // Window checking enabled.
	halted   bool        // Terminal state reached.
	ram      *memory.RAM // Owned backing memory.
	ports    []port.Port // Port table; 0 terminal, 1 file unit.
	traceOut io.Writer   // Instruction trace destination, nil when off.
}

// New builds a core with ramSize cells, copies the program image to address
// zero and attaches the standard port set. Registers, flags and the
// protection window start zeroed.
func New(image []int32, ramSize int) (*CPU, error) {
	if ramSize < instrCells {
		return nil, fmt.Errorf("%w: %d cells", ErrRAMTooSmall, ramSize)
	}
	if len(image) > ramSize {
		return nil, fmt.Errorf("%w: %d cells into %d", ErrImageTooBig, len(image), ramSize)
	}

	cpu := &CPU{
		ram: memory.NewRAM(ramSize),
		ports: []port.Port{
			port.NewTerminal(os.Stdin, os.Stdout),
			port.NewFileUnit(),
		},
	}
	for i, cell := range image {
		_ = cpu.ram.Store(int32(i), cell)
	}
	return cpu, nil
}

// Reg returns the value of register n, or 0 when n is out of range.
func (cpu *CPU) Reg(n int32) int32 {
	if n < 0 || n >= NumRegisters {
		return 0
	}
	return cpu.regs[n]
}

// IP returns the instruction pointer (register 14).
func (cpu *CPU) IP() int32 {
	return cpu.regs[RegIP]
}

// Cmp returns the comparison flag.
func (cpu *CPU) Cmp() int32 {
	return cpu.cmpFlag
}

// ErrFlag returns the sticky error flag.
func (cpu *CPU) ErrFlag() int32 {
	return cpu.errFlag
}

// Halted reports whether the machine reached a terminal state.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// RAM exposes the backing memory for post-mortem inspection.
func (cpu *CPU) RAM() *memory.RAM {
	return cpu.ram
}

// EnableTrace turns on the per-instruction trace, written to w.
func (cpu *CPU) EnableTrace(w io.Writer) {
	cpu.traceOut = w
}

// DisableTrace turns the per-instruction trace off.
func (cpu *CPU) DisableTrace() {
	cpu.traceOut = nil
}

// Shutdown releases the peripherals. Safe to call more than once.
func (cpu *CPU) Shutdown() {
	for _, p := range cpu.ports {
		p.Shutdown()
	}
}

// Step fetches and executes one instruction. It returns nil while the
// machine keeps running, ErrHalted once it stops cleanly, and any other
// error on a fatal fault. After ErrHalted further calls keep returning
// ErrHalted.
func (cpu *CPU) Step() error {
	if cpu.halted {
		return ErrHalted
	}

	ip := cpu.regs[RegIP]
	if ip < 0 {
		cpu.errFlag = ErrFlagIP
		cpu.halted = true
		return ErrHalted
	}
	// A partial instruction at the end of memory stops the machine the
	// same way an explicit halt does.
	if int(ip)+instrCells > cpu.ram.Size() {
		cpu.halted = true
		return ErrHalted
	}

	var decoded [instrCells]int32
	for i := range decoded {
		cell, err := cpu.ram.Load(ip + int32(i))
		if err != nil {
			return err
		}
		decoded[i] = cell
	}

	err := cpu.execute(decoded[0], decoded[1], decoded[2], decoded[3])
	if err != nil && !errors.Is(err, ErrHalted) {
		return err
	}
	if cpu.traceOut != nil {
		cpu.printTrace(decoded[0], decoded[1], decoded[2], decoded[3])
	}
	return err
}

// Run executes instructions until the machine halts or faults. A clean
// halt returns nil. The peripherals are shut down on every exit path.
func (cpu *CPU) Run() error {
	defer cpu.Shutdown()
	for {
		err := cpu.Step()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrHalted) {
			return nil
		}
		return err
	}
}
