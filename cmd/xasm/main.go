/*
 * XVM - Assembler process.
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

// The xasm command assembles mnemonic source into the image format the
// emulator loads.
package main

import (
	"fmt"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/xvm-emu/xvm/emu/assemble"
	"github.com/xvm-emu/xvm/emu/disassemble"
)

func main() {
	optOutput := getopt.StringLong("output", 'o', "a.img", "Output image file")
	optListing := getopt.BoolLong("listing", 'l', "Print a listing to stdout")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp || len(getopt.Args()) != 1 {
		getopt.Usage()
		os.Exit(0)
	}

	source, err := os.Open(getopt.Args()[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	image, err := assemble.Assemble(source)
	source.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *optListing {
		printListing(image)
	}

	if err := writeImage(*optOutput, image); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Write the image as whitespace-separated decimal cells, one instruction
// worth of cells per line.
func writeImage(path string, image []int32) error {
	var out strings.Builder
	for i, cell := range image {
		if i > 0 {
			if i%4 == 0 {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
		fmt.Fprintf(&out, "%d", cell)
	}
	out.WriteByte('\n')
	return os.WriteFile(path, []byte(out.String()), 0o644)
}

// Print addresses, cells and a disassembly of each full instruction.
func printListing(image []int32) {
	for addr := 0; addr < len(image); addr += 4 {
		end := addr + 4
		if end > len(image) {
			end = len(image)
		}
		cells := image[addr:end]

		var row strings.Builder
		fmt.Fprintf(&row, "%6d:", addr)
		for _, cell := range cells {
			fmt.Fprintf(&row, " %6d", cell)
		}
		if len(cells) == 4 {
			for row.Len() < 40 {
				row.WriteByte(' ')
			}
			row.WriteString(disassemble.Disassemble(cells[0], cells[1], cells[2], cells[3]))
		}
		fmt.Println(row.String())
	}
}
