/*
 * XVM - Instruction trace tests.
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
	"bytes"
	"testing"
)

func TestTraceFormat(t *testing.T) {
	image := []int32{
		22, 0, 7, 0, // loc r0 7
		0, 0, 0, 0, // halt
	}
	machine := newTestCPU(t, image, 8)
	var out bytes.Buffer
	machine.EnableTrace(&out)

	if err := machine.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expect := "Comand: 22 0 7 0\n" +
		"   7   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   4   0\n" +
		"--------\n" +
		"Comand: 0 0 0 0\n" +
		"   7   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   0   0\n" +
		"   4   0\n" +
		"--------\n"
	if out.String() != expect {
		t.Errorf("Trace not correct got:\n%q\nexpected:\n%q", out.String(), expect)
	}
}

func TestDisableTrace(t *testing.T) {
	machine := newTestCPU(t, []int32{0, 0, 0, 0}, 4)
	var out bytes.Buffer
	machine.EnableTrace(&out)
	machine.DisableTrace()

	if err := machine.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Trace emitted while disabled: %q", out.String())
	}
}
