/*
 * XVM - Main process.
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

// The xvm command loads a program image and runs it:
//
//	xvm <image-file> <ram-size> [-debug | -monitor]
//
// Exit codes: 0 on a clean halt, 1 on bad arguments, 2 when the image or
// the ram size cannot be read, 3 on an initialisation or run-time fault.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/xvm-emu/xvm/command/parser"
	"github.com/xvm-emu/xvm/command/reader"
	"github.com/xvm-emu/xvm/emu/cpu"
	"github.com/xvm-emu/xvm/emu/loader"
	"github.com/xvm-emu/xvm/util/logger"
)

const (
	exitOK       = 0
	exitArgCount = 1
	exitBadInput = 2
	exitFault    = 3
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	slog.SetDefault(slog.New(logger.NewHandler(nil, nil)))

	// The argument contract is positional: image file, ram size and an
	// optional literal -debug or -monitor token.
	if len(args) != 3 && len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Invalid arguments")
		fmt.Fprintf(os.Stderr, "usage: %s <image-file> <ram-size> [-debug | -monitor]\n", args[0])
		return exitArgCount
	}

	image, err := loader.LoadFile(args[1])
	if err != nil {
		slog.Error("cannot load image", "file", args[1], "err", err.Error())
		return exitBadInput
	}
	ramSize, err := strconv.Atoi(args[2])
	if err != nil {
		slog.Error("cannot parse ram size", "arg", args[2])
		return exitBadInput
	}

	machine, err := cpu.New(image, ramSize)
	if err != nil {
		slog.Error("cannot initialise cpu", "err", err.Error())
		return exitFault
	}

	monitor := false
	if len(args) == 4 {
		switch args[3] {
		case "-debug":
			machine.EnableTrace(os.Stdout)
		case "-monitor":
			monitor = true
		}
	}

	if monitor {
		reader.ConsoleReader(parser.New(machine))
		return exitOK
	}

	if err := machine.Run(); err != nil {
		slog.Error("fault", "err", err.Error(), "ip", machine.IP())
		return exitFault
	}
	slog.Info("halted", "ip", machine.IP(), "cmp", machine.Cmp(), "err_flag", machine.ErrFlag())
	return exitOK
}
