/*
 * XVM - File unit port.
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
	"errors"
	"io"
	"os"
)

// FileUnit is the file system port. While no file is open, data-bus writes
// accumulate the path one byte at a time; a control signal then opens the
// named file for read or write. At most one file is open at a time.
//
// Control signals:
//
//	0 - close the file
//	1 - open the accumulated path for read
//	2 - open the accumulated path for write
//
// Any other signal closes the file and reports state 4.
type FileUnit struct {
	filename []byte
	file     *os.File
	state    int32
}

// NewFileUnit creates a closed, idle file unit.
func NewFileUnit() *FileUnit {
	return &FileUnit{}
}

// SendSignal opens or closes the file according to the signal value.
func (unit *FileUnit) SendSignal(s int32) {
	switch s {
	case 0:
		unit.reset(FileClosed)
	case 1:
		if unit.file != nil {
			unit.reset(FileModeClose)
			break
		}
		file, err := os.Open(string(unit.filename))
		if err != nil {
			unit.reset(FileOpenFail)
			break
		}
		unit.file = file
		unit.state = FileReadMode
	case 2:
		if unit.file != nil {
			unit.reset(FileModeClose)
			break
		}
		file, err := os.Create(string(unit.filename))
		if err != nil {
			unit.reset(FileOpenFail)
			break
		}
		unit.file = file
		unit.state = FileWriteMode
	default:
		unit.reset(FileModeClose)
	}
}

// SendValue writes one character to an open file, or appends one byte to
// the pending path while no file is open. Writing while open for read is a
// mode violation: the file closes and the state reports 5.
func (unit *FileUnit) SendValue(v int32) error {
	if unit.file == nil {
		unit.filename = append(unit.filename, byte(v))
		return nil
	}
	if unit.state != FileWriteMode {
		unit.reset(FileBadCmd)
		return nil
	}
	_, err := unit.file.Write([]byte{byte(v)})
	return err
}

// RecvValue reads one character code from an open file; at end of file dst
// receives -1. Reading while open for write is a mode violation: the file
// closes and the state reports 5. With no file open the unit returns to
// idle and discards any pending path.
func (unit *FileUnit) RecvValue(dst *int32) error {
	if unit.file == nil {
		unit.reset(FileClosed)
		return nil
	}
	if unit.state != FileReadMode {
		unit.reset(FileBadCmd)
		return nil
	}
	var buf [1]byte
	_, err := io.ReadFull(unit.file, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			*dst = -1
			return nil
		}
		return err
	}
	*dst = int32(buf[0])
	return nil
}

// RecvSignal reads the unit state.
func (unit *FileUnit) RecvSignal(dst *int32) {
	*dst = unit.state
}

// Shutdown closes any open file.
func (unit *FileUnit) Shutdown() {
	unit.reset(FileClosed)
}

// Close the file if open, clear the pending path and set the state.
func (unit *FileUnit) reset(state int32) {
	if unit.file != nil {
		unit.file.Close()
		unit.file = nil
	}
	unit.filename = unit.filename[:0]
	unit.state = state
}
