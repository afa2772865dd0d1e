/*
 * XVM - Assembler.
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

// Package assemble builds program images from mnemonic source.
//
// Source format, one instruction per line:
//
//	[label:] mnemonic [op1 [op2 [op3]]]   # comment
//
// Operands are decimal integers, single-quoted characters or label names;
// a label names the memory cell its line assembles to. Missing operand
// cells assemble as zero. The "word" directive emits its operands as raw
// data cells.
package assemble

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	op "github.com/xvm-emu/xvm/emu/opcodemap"
)

const instrCells = 4

type srcLine struct {
	num      int      // Source line number.
	mnemonic string   // Lower-cased instruction or "word".
	operands []string // Unresolved operand tokens.
}

// Assemble reads mnemonic source and returns the image cells.
func Assemble(r io.Reader) ([]int32, error) {
	lines, labels, size, err := scan(r)
	if err != nil {
		return nil, err
	}

	image := make([]int32, 0, size)
	for _, line := range lines {
		if line.mnemonic == "word" {
			for _, token := range line.operands {
				cell, err := resolve(token, labels, line.num)
				if err != nil {
					return nil, err
				}
				image = append(image, cell)
			}
			continue
		}

		cells := [instrCells]int32{op.Mnemonics[line.mnemonic]}
		for i, token := range line.operands {
			cell, err := resolve(token, labels, line.num)
			if err != nil {
				return nil, err
			}
			cells[i+1] = cell
		}
		image = append(image, cells[:]...)
	}
	return image, nil
}

// First pass: split lines into labels, mnemonics and operand tokens, and
// assign each label its cell address.
func scan(r io.Reader) ([]srcLine, map[string]int32, int32, error) {
	var lines []srcLine
	labels := make(map[string]int32)
	addr := int32(0)
	num := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		num++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)

		for len(fields) > 0 && strings.HasSuffix(fields[0], ":") {
			name := strings.TrimSuffix(fields[0], ":")
			if name == "" {
				return nil, nil, 0, fmt.Errorf("line %d: empty label", num)
			}
			if _, ok := labels[name]; ok {
				return nil, nil, 0, fmt.Errorf("line %d: duplicate label %q", num, name)
			}
			labels[name] = addr
			fields = fields[1:]
		}
		if len(fields) == 0 {
			continue
		}

		mnemonic := strings.ToLower(fields[0])
		operands := fields[1:]
		switch {
		case mnemonic == "word":
			if len(operands) == 0 {
				return nil, nil, 0, fmt.Errorf("line %d: word needs a value", num)
			}
			addr += int32(len(operands))
		default:
			if _, ok := op.Mnemonics[mnemonic]; !ok {
				return nil, nil, 0, fmt.Errorf("line %d: unknown instruction %q", num, fields[0])
			}
			if len(operands) > instrCells-1 {
				return nil, nil, 0, fmt.Errorf("line %d: too many operands for %q", num, mnemonic)
			}
			addr += instrCells
		}
		lines = append(lines, srcLine{num: num, mnemonic: mnemonic, operands: operands})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, err
	}
	return lines, labels, addr, nil
}

// Resolve one operand token to a cell value.
func resolve(token string, labels map[string]int32, num int) (int32, error) {
	if len(token) >= 3 && token[0] == '\'' && token[len(token)-1] == '\'' {
		runes := []rune(token[1 : len(token)-1])
		if len(runes) != 1 {
			return 0, fmt.Errorf("line %d: bad character literal %s", num, token)
		}
		return int32(runes[0]), nil
	}
	if value, err := strconv.ParseInt(token, 10, 32); err == nil {
		return int32(value), nil
	}
	if addr, ok := labels[token]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("line %d: bad operand %q", num, token)
}
