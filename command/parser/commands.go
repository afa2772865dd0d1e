/*
 * XVM - Monitor commands.
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

package parser

import (
	"errors"
	"fmt"

	"github.com/xvm-emu/xvm/emu/cpu"
	"github.com/xvm-emu/xvm/emu/disassemble"
)

// step [n]: execute up to n instructions, default one.
func step(mon *Monitor, line *cmdLine) (bool, error) {
	count, present, err := line.getNumber()
	if err != nil {
		return false, err
	}
	if !present {
		count = 1
	}
	if count < 1 {
		return false, errors.New("step count must be positive")
	}

	for i := int32(0); i < count; i++ {
		if stop := mon.stepOnce(); stop {
			break
		}
	}
	mon.showNext()
	return false, nil
}

// go: run until a breakpoint, a halt or a fault.
func run(mon *Monitor, _ *cmdLine) (bool, error) {
	for {
		if stop := mon.stepOnce(); stop {
			break
		}
		if _, ok := mon.breaks[mon.machine.IP()]; ok {
			fmt.Fprintf(mon.out, "breakpoint at %d\n", mon.machine.IP())
			break
		}
	}
	mon.showNext()
	return false, nil
}

// regs: print the register file and the flags.
func regs(mon *Monitor, _ *cmdLine) (bool, error) {
	for i := int32(0); i < cpu.NumRegisters; i += 4 {
		fmt.Fprintf(mon.out, "R%-2d %11d  R%-2d %11d  R%-2d %11d  R%-2d %11d\n",
			i, mon.machine.Reg(i),
			i+1, mon.machine.Reg(i+1),
			i+2, mon.machine.Reg(i+2),
			i+3, mon.machine.Reg(i+3))
	}
	fmt.Fprintf(mon.out, "CMP %d ERR %d\n", mon.machine.Cmp(), mon.machine.ErrFlag())
	return false, nil
}

// mem <addr> [count]: print memory cells, eight per row.
func mem(mon *Monitor, line *cmdLine) (bool, error) {
	addr, present, err := line.getNumber()
	if err != nil {
		return false, err
	}
	if !present {
		return false, errors.New("mem needs an address")
	}
	count, present, err := line.getNumber()
	if err != nil {
		return false, err
	}
	if !present {
		count = 8
	}

	ram := mon.machine.RAM()
	for row := int32(0); row < count; row += 8 {
		fmt.Fprintf(mon.out, "%6d:", addr+row)
		for col := row; col < count && col < row+8; col++ {
			value, err := ram.Load(addr + col)
			if err != nil {
				fmt.Fprintln(mon.out)
				return false, err
			}
			fmt.Fprintf(mon.out, " %11d", value)
		}
		fmt.Fprintln(mon.out)
	}
	return false, nil
}

// break <addr>: toggle a breakpoint.
func setBreak(mon *Monitor, line *cmdLine) (bool, error) {
	addr, present, err := line.getNumber()
	if err != nil {
		return false, err
	}
	if !present {
		for addr := range mon.breaks {
			fmt.Fprintf(mon.out, "breakpoint at %d\n", addr)
		}
		return false, nil
	}

	if _, ok := mon.breaks[addr]; ok {
		delete(mon.breaks, addr)
		fmt.Fprintf(mon.out, "breakpoint at %d removed\n", addr)
	} else {
		mon.breaks[addr] = struct{}{}
		fmt.Fprintf(mon.out, "breakpoint at %d set\n", addr)
	}
	return false, nil
}

// trace: toggle the per-instruction trace.
func trace(mon *Monitor, _ *cmdLine) (bool, error) {
	if mon.tracing {
		mon.machine.DisableTrace()
		mon.tracing = false
		fmt.Fprintln(mon.out, "trace off")
	} else {
		mon.machine.EnableTrace(mon.out)
		mon.tracing = true
		fmt.Fprintln(mon.out, "trace on")
	}
	return false, nil
}

// quit: end the session.
func quit(mon *Monitor, _ *cmdLine) (bool, error) {
	mon.machine.Shutdown()
	return true, nil
}

// Execute one instruction; report halts and faults. Returns true when the
// machine cannot continue.
func (mon *Monitor) stepOnce() bool {
	err := mon.machine.Step()
	if err == nil {
		return false
	}
	if errors.Is(err, cpu.ErrHalted) {
		fmt.Fprintf(mon.out, "halted, ERR %d\n", mon.machine.ErrFlag())
	} else {
		fmt.Fprintf(mon.out, "fault: %v\n", err)
	}
	return true
}

// Print the instruction the machine would execute next.
func (mon *Monitor) showNext() {
	if mon.machine.Halted() {
		return
	}
	ip := mon.machine.IP()
	ram := mon.machine.RAM()
	var cells [4]int32
	for i := range cells {
		value, err := ram.Load(ip + int32(i))
		if err != nil {
			return
		}
		cells[i] = value
	}
	fmt.Fprintf(mon.out, "%6d: %s\n", ip,
		disassemble.Disassemble(cells[0], cells[1], cells[2], cells[3]))
}
