/*
 * XVM - Assembler tests.
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

package assemble

import (
	"strings"
	"testing"
)

func checkImage(t *testing.T, got, expect []int32) {
	t.Helper()
	if len(got) != len(expect) {
		t.Fatalf("Image length got: %d expected: %d", len(got), len(expect))
	}
	for i, want := range expect {
		if got[i] != want {
			t.Errorf("Cell %d got: %d expected: %d", i, got[i], want)
		}
	}
}

func TestAssembleBasic(t *testing.T) {
	src := `
	# count to twelve
	loc 0 7
	loc 1 5
	add 2 0 1
	halt
	`
	image, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	checkImage(t, image, []int32{
		22, 0, 7, 0,
		22, 1, 5, 0,
		20, 2, 0, 1,
		0, 0, 0, 0,
	})
}

func TestAssembleLabels(t *testing.T) {
	src := `
	loop: prts 0 0
	      gotop loop
	`
	image, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	checkImage(t, image, []int32{
		50, 0, 0, 0,
		32, 0, 0, 0,
	})
}

func TestAssembleForwardLabelAndWord(t *testing.T) {
	src := `
	lodi 0 data
	gotop end
	data: word 41 42
	end:  halt
	`
	image, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	checkImage(t, image, []int32{
		5, 0, 8, 0,
		32, 10, 0, 0,
		41, 42,
		0, 0, 0, 0,
	})
}

func TestAssembleCharLiteral(t *testing.T) {
	image, err := Assemble(strings.NewReader("loc 0 'A'\n"))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	checkImage(t, image, []int32{22, 0, 65, 0})
}

func TestAssembleErrors(t *testing.T) {
	// Unknown instruction, too many operands, unresolved label, duplicate
	// label, word without a value, bad character literal.
	bad := []string{
		"frob 1 2\n",
		"add 1 2 3 4\n",
		"loc 0 missing\n",
		"x: x: halt\n",
		"word\n",
		"loc 0 'ab'\n",
	}
	for _, src := range bad {
		if _, err := Assemble(strings.NewReader(src)); err == nil {
			t.Errorf("Assemble of %q expected error", src)
		}
	}
}
