/*
 * XVM - Port interface functions.
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

// Package port implements the peripherals the CPU reaches through its port
// table. Every port answers the same four operations: a data write, a
// control write, a data read and a status read.
package port

// Interface for ports to handle data and control traffic.
//
// An error returned by SendValue or RecvValue is a host-level I/O failure
// that has no device state code; the CPU treats it as a fatal fault.
// Device-representable conditions are reported through the status code
// returned by RecvSignal instead.
type Port interface {
	SendValue(v int32) error    // Data-bus write from CPU to device.
	SendSignal(s int32)         // Control-line write from CPU to device.
	RecvValue(dst *int32) error // Data-bus read into a register.
	RecvSignal(dst *int32)      // Status-line read into a register.
	Shutdown()                  // Shutdown device, close any open files.
}

// Terminal status codes.
const (
	TermModeChar int32 = 0 // Character mode
	TermModeNum  int32 = 1 // Numeric mode
)

// File unit status codes.
const (
	FileClosed    int32 = 0 // Closed, idle
	FileReadMode  int32 = 1 // Open for read
	FileWriteMode int32 = 2 // Open for write
	FileOpenFail  int32 = 3 // Open failed
	FileModeClose int32 = 4 // Closed due to open while open, or bad signal
	FileBadCmd    int32 = 5 // Closed due to access in the wrong mode
)
