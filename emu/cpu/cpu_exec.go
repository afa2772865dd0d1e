/*
 * XVM - Instruction execution.
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

import (
	op "github.com/xvm-emu/xvm/emu/opcodemap"
	"github.com/xvm-emu/xvm/emu/port"
)

// Check register operand addresses. An instruction with a register operand
// outside the file is a no-op that does not advance the instruction
// pointer, so a malformed program spins on it forever.
func badReg(regs ...int32) bool {
	for _, r := range regs {
		if r < 0 || r >= NumRegisters {
			return true
		}
	}
	return false
}

// Dispatch one decoded instruction.
func (cpu *CPU) execute(opcode, a, b, c int32) error {
	switch opcode {
	case op.OpHALT:
		cpu.halted = true
		return ErrHalted

	case op.OpLODI:
		return cpu.lodi(a, b)
	case op.OpLODR:
		return cpu.lodr(a, b)
	case op.OpSTRI:
		return cpu.stri(a, b)
	case op.OpSTRR:
		return cpu.strr(a, b)
	case op.OpMOV:
		cpu.mov(a, b)
	case op.OpAMIN:
		cpu.amin(a, b)
	case op.OpSETL:
		cpu.safeMode = true
		cpu.advance()
	case op.OpSETF:
		cpu.safeMode = false
		cpu.advance()

	case op.OpADD:
		cpu.alu3(a, b, c, func(x, y int32) int32 { return x + y })
	case op.OpADDC:
		cpu.addc(a, b, c)
	case op.OpLOC:
		cpu.loc(a, b)
	case op.OpSUB:
		cpu.alu3(a, b, c, func(x, y int32) int32 { return x - y })
	case op.OpMULT:
		cpu.alu3(a, b, c, func(x, y int32) int32 { return x * y })
	case op.OpDIV:
		return cpu.div(a, b, c, false)
	case op.OpMOD:
		return cpu.div(a, b, c, true)

	case op.OpCMP:
		cpu.cmp(a, b)
	case op.OpJMP:
		cpu.jmp(a, b)
	case op.OpGOTOP:
		cpu.regs[RegIP] = a
	case op.OpLCMP:
		cpu.lcmp(a)

	case op.OpLOGOR:
		cpu.alu3(a, b, c, func(x, y int32) int32 { return toFlag(x != 0 || y != 0) })
	case op.OpLOGAND:
		cpu.alu3(a, b, c, func(x, y int32) int32 { return toFlag(x != 0 && y != 0) })
	case op.OpLOGNOT:
		cpu.lognot(a, b)

	case op.OpPRTS:
		return cpu.prts(a, b)
	case op.OpPRCS:
		cpu.prcs(a, b)
	case op.OpPRTG:
		return cpu.prtg(a, b)
	case op.OpPRCG:
		cpu.prcg(a, b)

	default:
		cpu.errFlag = ErrFlagOpcode
		cpu.halted = true
		return ErrHalted
	}
	return nil
}

// Move the instruction pointer to the next instruction.
func (cpu *CPU) advance() {
	cpu.regs[RegIP] += instrCells
}

func toFlag(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Check a load or store address against the protection window. When the address is
// outside, the error flag is set and the access is suppressed but the
// instruction still completes.
func (cpu *CPU) windowOK(addr, flag int32) bool {
	if !cpu.safeMode {
		return true
	}
	if addr >= cpu.winLow && addr <= cpu.winHigh {
		return true
	}
	cpu.errFlag = flag
	return false
}

// lodi: R[a] <- M[b].
func (cpu *CPU) lodi(a, b int32) error {
	if badReg(a) {
		return nil
	}
	if cpu.windowOK(b, ErrFlagLoad) {
		value, err := cpu.ram.Load(b)
		if err != nil {
			return err
		}
		cpu.regs[a] = value
	}
	cpu.advance()
	return nil
}

// lodr: R[a] <- M[R[b]].
func (cpu *CPU) lodr(a, b int32) error {
	if badReg(a, b) {
		return nil
	}
	addr := cpu.regs[b]
	if cpu.windowOK(addr, ErrFlagLoad) {
		value, err := cpu.ram.Load(addr)
		if err != nil {
			return err
		}
		cpu.regs[a] = value
	}
	cpu.advance()
	return nil
}

// stri: M[a] <- R[b].
func (cpu *CPU) stri(a, b int32) error {
	if badReg(b) {
		return nil
	}
	if cpu.windowOK(a, ErrFlagStore) {
		if err := cpu.ram.Store(a, cpu.regs[b]); err != nil {
			return err
		}
	}
	cpu.advance()
	return nil
}

// strr: M[R[a]] <- R[b].
func (cpu *CPU) strr(a, b int32) error {
	if badReg(a, b) {
		return nil
	}
	addr := cpu.regs[a]
	if cpu.windowOK(addr, ErrFlagStore) {
		if err := cpu.ram.Store(addr, cpu.regs[b]); err != nil {
			return err
		}
	}
	cpu.advance()
	return nil
}

// mov: R[a] <- R[b].
func (cpu *CPU) mov(a, b int32) {
	if badReg(a, b) {
		return
	}
	cpu.regs[a] = cpu.regs[b]
	cpu.advance()
}

// amin: set the protection window bounds from R[a] and R[b].
func (cpu *CPU) amin(a, b int32) {
	if badReg(a, b) {
		return
	}
	cpu.winLow = cpu.regs[a]
	cpu.winHigh = cpu.regs[b]
	cpu.advance()
}

// Three-register ALU and logic pattern: R[a] <- f(R[b], R[c]).
func (cpu *CPU) alu3(a, b, c int32, f func(x, y int32) int32) {
	if badReg(a, b, c) {
		return
	}
	cpu.regs[a] = f(cpu.regs[b], cpu.regs[c])
	cpu.advance()
}

// addc: R[a] <- R[b] + c, with c a constant.
func (cpu *CPU) addc(a, b, c int32) {
	if badReg(a, b) {
		return
	}
	cpu.regs[a] = cpu.regs[b] + c
	cpu.advance()
}

// loc: R[a] <- b.
func (cpu *CPU) loc(a, b int32) {
	if badReg(a) {
		return
	}
	cpu.regs[a] = b
	cpu.advance()
}

// div implements both quotient and remainder. The quotient truncates
// toward zero. Dividing by zero is a fatal fault.
func (cpu *CPU) div(a, b, c int32, remainder bool) error {
	if badReg(a, b, c) {
		return nil
	}
	if cpu.regs[c] == 0 {
		return ErrDivideByZero
	}
	if remainder {
		cpu.regs[a] = cpu.regs[b] % cpu.regs[c]
	} else {
		cpu.regs[a] = cpu.regs[b] / cpu.regs[c]
	}
	cpu.advance()
	return nil
}

// cmp: set the comparison flag from the sign of R[a] - R[b].
func (cpu *CPU) cmp(a, b int32) {
	if badReg(a, b) {
		return
	}
	switch {
	case cpu.regs[a] == cpu.regs[b]:
		cpu.cmpFlag = 0
	case cpu.regs[a] > cpu.regs[b]:
		cpu.cmpFlag = 1
	default:
		cpu.cmpFlag = -1
	}
	cpu.advance()
}

// jmp: branch to target when the predicate matches the comparison flag.
// Predicates -1, 0 and 1 match exactly; 2 is >=, -2 is <=, 3 is not-equal.
// Any other predicate falls through.
func (cpu *CPU) jmp(cond, target int32) {
	taken := cond == cpu.cmpFlag ||
		(cond == 2 && cpu.cmpFlag >= 0) ||
		(cond == -2 && cpu.cmpFlag <= 0) ||
		(cond == 3 && cpu.cmpFlag != 0)
	if taken {
		cpu.regs[RegIP] = target
		return
	}
	cpu.advance()
}

// lcmp: R[a] <- comparison flag.
func (cpu *CPU) lcmp(a int32) {
	if badReg(a) {
		return
	}
	cpu.regs[a] = cpu.cmpFlag
	cpu.advance()
}

// lognot: R[a] <- 1 when R[b] is zero, else 0.
func (cpu *CPU) lognot(a, b int32) {
	if badReg(a, b) {
		return
	}
	cpu.regs[a] = toFlag(cpu.regs[b] == 0)
	cpu.advance()
}

// Look up a port. Instructions aimed at an unbound index are silent
// no-ops.
func (cpu *CPU) port(idx int32) port.Port {
	if idx < 0 || int(idx) >= len(cpu.ports) {
		return nil
	}
	return cpu.ports[idx]
}

// prts: send R[a] over the data bus of port b.
func (cpu *CPU) prts(a, b int32) error {
	if badReg(a) {
		return nil
	}
	if p := cpu.port(b); p != nil {
		if err := p.SendValue(cpu.regs[a]); err != nil {
			return err
		}
	}
	cpu.advance()
	return nil
}

// prcs: send the literal signal a on the control line of port b.
func (cpu *CPU) prcs(a, b int32) {
	if p := cpu.port(b); p != nil {
		p.SendSignal(a)
	}
	cpu.advance()
}

// prtg: read the data bus of port b into R[a].
func (cpu *CPU) prtg(a, b int32) error {
	if badReg(a) {
		return nil
	}
	if p := cpu.port(b); p != nil {
		if err := p.RecvValue(&cpu.regs[a]); err != nil {
			return err
		}
	}
	cpu.advance()
	return nil
}

// prcg: read the status line of port b into R[a].
func (cpu *CPU) prcg(a, b int32) {
	if badReg(a) {
		return
	}
	if p := cpu.port(b); p != nil {
		p.RecvSignal(&cpu.regs[a])
	}
	cpu.advance()
}
