/*
 * XVM - Terminal port.
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

package port

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalSendChar(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	for _, v := range []int32{'A', 'B', '\n'} {
		if err := term.SendValue(v); err != nil {
			t.Errorf("SendValue failed: %v", err)
		}
	}
	if out.String() != "AB\n" {
		t.Errorf("Output not correct got: %q expected: %q", out.String(), "AB\n")
	}
}

func TestTerminalSendNumeric(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.SendSignal(TermModeNum)
	for _, v := range []int32{42, -7} {
		if err := term.SendValue(v); err != nil {
			t.Errorf("SendValue failed: %v", err)
		}
	}
	// No trailing separator between values.
	if out.String() != "42-7" {
		t.Errorf("Output not correct got: %q expected: %q", out.String(), "42-7")
	}
}

func TestTerminalSignal(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})

	var state int32 = -1
	term.RecvSignal(&state)
	if state != TermModeChar {
		t.Errorf("Initial state got: %d expected: %d", state, TermModeChar)
	}

	term.SendSignal(TermModeNum)
	term.RecvSignal(&state)
	if state != TermModeNum {
		t.Errorf("State after signal got: %d expected: %d", state, TermModeNum)
	}
}

func TestTerminalRecvChar(t *testing.T) {
	term := NewTerminal(strings.NewReader("  \n x"), &bytes.Buffer{})

	var v int32
	if err := term.RecvValue(&v); err != nil {
		t.Errorf("RecvValue failed: %v", err)
	}
	if v != 'x' {
		t.Errorf("RecvValue got: %d expected: %d", v, 'x')
	}

	// Reading past end of input is an error, not a silent zero.
	if err := term.RecvValue(&v); err == nil {
		t.Errorf("RecvValue at EOF expected error")
	}
}

func TestTerminalRecvNumeric(t *testing.T) {
	term := NewTerminal(strings.NewReader(" 123 -45 7"), &bytes.Buffer{})
	term.SendSignal(TermModeNum)

	expect := []int32{123, -45, 7}
	for _, want := range expect {
		var v int32
		if err := term.RecvValue(&v); err != nil {
			t.Errorf("RecvValue failed: %v", err)
		}
		if v != want {
			t.Errorf("RecvValue got: %d expected: %d", v, want)
		}
	}
}

func TestTerminalRecvNumericBad(t *testing.T) {
	term := NewTerminal(strings.NewReader("abc"), &bytes.Buffer{})
	term.SendSignal(TermModeNum)

	var v int32
	if err := term.RecvValue(&v); err == nil {
		t.Errorf("RecvValue on non-number expected error")
	}
}
