/*
 * XVM - Low level memory.
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

package memory

import (
	"errors"
	"fmt"
)

// RAM is a fixed-size array of signed integer cells. The backing array is
// allocated once and never resized. A RAM instance is owned by a single CPU
// and is not goroutine safe.
type RAM struct {
	cells []int32
}

// ErrOutOfRange indicates an access outside the backing array. The CPU
// treats it as a fatal fault.
var ErrOutOfRange = errors.New("memory: address out of range")

// NewRAM allocates size zeroed cells.
func NewRAM(size int) *RAM {
	return &RAM{cells: make([]int32, size)}
}

// Size returns the number of cells.
func (ram *RAM) Size() int {
	return len(ram.cells)
}

// Load returns the cell at addr.
func (ram *RAM) Load(addr int32) (int32, error) {
	if addr < 0 || int(addr) >= len(ram.cells) {
		return 0, fmt.Errorf("%w: load at %d", ErrOutOfRange, addr)
	}
	return ram.cells[addr], nil
}

// Store writes value to the cell at addr.
func (ram *RAM) Store(addr, value int32) error {
	if addr < 0 || int(addr) >= len(ram.cells) {
		return fmt.Errorf("%w: store at %d", ErrOutOfRange, addr)
	}
	ram.cells[addr] = value
	return nil
}
