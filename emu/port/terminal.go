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
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Terminal is the console port. In character mode (state 0) it moves single
// characters; in numeric mode (state 1) it prints and scans decimal numbers.
// Reads skip leading whitespace in both modes.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	state int32
}

// NewTerminal creates a terminal port on the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// SendValue writes one character, or its decimal representation in
// numeric mode. No separator is emitted.
func (term *Terminal) SendValue(v int32) error {
	var err error
	if term.state == TermModeChar {
		_, err = term.out.Write([]byte{byte(v)})
	} else {
		_, err = fmt.Fprintf(term.out, "%d", v)
	}
	return err
}

// SendSignal selects the terminal mode. The value is not validated.
func (term *Terminal) SendSignal(s int32) {
	term.state = s
}

// RecvValue reads one character code, or scans a signed decimal number in
// numeric mode.
func (term *Terminal) RecvValue(dst *int32) error {
	b, err := term.readNonSpace()
	if err != nil {
		return err
	}
	if term.state == TermModeChar {
		*dst = int32(b)
		return nil
	}
	return term.scanNumber(b, dst)
}

// RecvSignal reads the current mode.
func (term *Terminal) RecvSignal(dst *int32) {
	*dst = term.state
}

// Shutdown releases nothing; the terminal does not own its streams.
func (term *Terminal) Shutdown() {
}

// Read the next byte that is not whitespace.
func (term *Terminal) readNonSpace() (byte, error) {
	for {
		b, err := term.in.ReadByte()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b)) {
			return b, nil
		}
	}
}

// Scan a decimal number whose first byte is already in hand. The byte
// following the number stays in the input.
func (term *Terminal) scanNumber(first byte, dst *int32) error {
	neg := false
	seen := false
	var value int32

	b := first
	if b == '-' || b == '+' {
		neg = b == '-'
		var err error
		b, err = term.in.ReadByte()
		if err != nil {
			return err
		}
	}

	eof := false
	for b >= '0' && b <= '9' {
		value = value*10 + int32(b-'0')
		seen = true
		var err error
		b, err = term.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && seen {
				eof = true
				break
			}
			return err
		}
	}
	if seen && !eof {
		_ = term.in.UnreadByte()
	}

	if !seen {
		return errors.New("terminal: expected a number")
	}
	if neg {
		value = -value
	}
	*dst = value
	return nil
}
