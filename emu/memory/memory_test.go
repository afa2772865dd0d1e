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
	"testing"
)

func TestLoadStore(t *testing.T) {
	ram := NewRAM(64)
	if ram.Size() != 64 {
		t.Errorf("Size not correct got: %d expected: %d", ram.Size(), 64)
	}

	for i := int32(0); i < 64; i++ {
		if err := ram.Store(i, i*3); err != nil {
			t.Errorf("Store failed at %d: %v", i, err)
		}
	}
	for i := int32(0); i < 64; i++ {
		v, err := ram.Load(i)
		if err != nil {
			t.Errorf("Load failed at %d: %v", i, err)
		}
		if v != i*3 {
			t.Errorf("Load not correct got: %d expected: %d", v, i*3)
		}
	}
}

func TestZeroInitialized(t *testing.T) {
	ram := NewRAM(16)
	for i := int32(0); i < 16; i++ {
		v, err := ram.Load(i)
		if err != nil {
			t.Errorf("Load failed at %d: %v", i, err)
		}
		if v != 0 {
			t.Errorf("Cell %d not zero got: %d", i, v)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	ram := NewRAM(8)

	if _, err := ram.Load(8); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Load past end got: %v expected: %v", err, ErrOutOfRange)
	}
	if _, err := ram.Load(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Load negative got: %v expected: %v", err, ErrOutOfRange)
	}
	if err := ram.Store(8, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Store past end got: %v expected: %v", err, ErrOutOfRange)
	}
	if err := ram.Store(-1, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Store negative got: %v expected: %v", err, ErrOutOfRange)
	}

	// A failed store must not touch any cell.
	for i := int32(0); i < 8; i++ {
		v, _ := ram.Load(i)
		if v != 0 {
			t.Errorf("Cell %d modified by rejected store got: %d", i, v)
		}
	}
}
