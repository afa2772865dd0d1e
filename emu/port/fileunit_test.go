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
	"os"
	"path/filepath"
	"testing"
)

// Push a path into the unit one byte at a time.
func sendName(t *testing.T, unit *FileUnit, name string) {
	t.Helper()
	for _, b := range []byte(name) {
		if err := unit.SendValue(int32(b)); err != nil {
			t.Fatalf("SendValue for path byte failed: %v", err)
		}
	}
}

func state(unit *FileUnit) int32 {
	var s int32
	unit.RecvSignal(&s)
	return s
}

func TestFileWriteThenRead(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.txt")
	unit := NewFileUnit()

	sendName(t, unit, name)
	unit.SendSignal(2)
	if state(unit) != FileWriteMode {
		t.Fatalf("State after open for write got: %d expected: %d", state(unit), FileWriteMode)
	}

	for _, b := range []byte("hi!") {
		if err := unit.SendValue(int32(b)); err != nil {
			t.Errorf("SendValue failed: %v", err)
		}
	}
	unit.SendSignal(0)
	if state(unit) != FileClosed {
		t.Errorf("State after close got: %d expected: %d", state(unit), FileClosed)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hi!" {
		t.Errorf("File content got: %q expected: %q", data, "hi!")
	}

	// Read the file back through the port.
	sendName(t, unit, name)
	unit.SendSignal(1)
	if state(unit) != FileReadMode {
		t.Fatalf("State after open for read got: %d expected: %d", state(unit), FileReadMode)
	}
	for _, want := range []int32{'h', 'i', '!', -1} {
		var v int32
		if err := unit.RecvValue(&v); err != nil {
			t.Errorf("RecvValue failed: %v", err)
		}
		if v != want {
			t.Errorf("RecvValue got: %d expected: %d", v, want)
		}
	}
	unit.SendSignal(0)
}

func TestFileOpenMissing(t *testing.T) {
	unit := NewFileUnit()
	sendName(t, unit, filepath.Join(t.TempDir(), "absent"))
	unit.SendSignal(1)
	if state(unit) != FileOpenFail {
		t.Errorf("State after failed open got: %d expected: %d", state(unit), FileOpenFail)
	}
}

func TestFileOpenWhileOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "f")
	unit := NewFileUnit()

	sendName(t, unit, name)
	unit.SendSignal(2)
	unit.SendSignal(1)
	if state(unit) != FileModeClose {
		t.Errorf("State after reopen got: %d expected: %d", state(unit), FileModeClose)
	}
}

func TestFileBadSignal(t *testing.T) {
	unit := NewFileUnit()
	unit.SendSignal(9)
	if state(unit) != FileModeClose {
		t.Errorf("State after bad signal got: %d expected: %d", state(unit), FileModeClose)
	}
}

func TestFileWriteInReadMode(t *testing.T) {
	name := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	unit := NewFileUnit()

	sendName(t, unit, name)
	unit.SendSignal(1)
	if err := unit.SendValue('y'); err != nil {
		t.Errorf("SendValue failed: %v", err)
	}
	if state(unit) != FileBadCmd {
		t.Errorf("State after write in read mode got: %d expected: %d", state(unit), FileBadCmd)
	}
}

func TestFileReadInWriteMode(t *testing.T) {
	name := filepath.Join(t.TempDir(), "f")
	unit := NewFileUnit()

	sendName(t, unit, name)
	unit.SendSignal(2)
	var v int32
	if err := unit.RecvValue(&v); err != nil {
		t.Errorf("RecvValue failed: %v", err)
	}
	if state(unit) != FileBadCmd {
		t.Errorf("State after read in write mode got: %d expected: %d", state(unit), FileBadCmd)
	}
}

func TestFileRecvWhileClosed(t *testing.T) {
	unit := NewFileUnit()
	sendName(t, unit, "partial")
	var v int32
	if err := unit.RecvValue(&v); err != nil {
		t.Errorf("RecvValue failed: %v", err)
	}
	if state(unit) != FileClosed {
		t.Errorf("State got: %d expected: %d", state(unit), FileClosed)
	}

	// The pending path was discarded; the next path starts clean.
	name := filepath.Join(t.TempDir(), "clean")
	sendName(t, unit, name)
	unit.SendSignal(2)
	if state(unit) != FileWriteMode {
		t.Errorf("State after open got: %d expected: %d", state(unit), FileWriteMode)
	}
	unit.Shutdown()
	if _, err := os.Stat(name); err != nil {
		t.Errorf("Expected file %q to exist: %v", name, err)
	}
}
