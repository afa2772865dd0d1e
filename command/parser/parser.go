/*
 * XVM - Monitor command parser.
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

// Package parser implements the interactive monitor commands. Commands may
// be abbreviated down to their minimum match length.
package parser

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xvm-emu/xvm/emu/cpu"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum match size.
	process func(*Monitor, *cmdLine) (bool, error)
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "go", min: 1, process: run},
	{name: "regs", min: 1, process: regs},
	{name: "mem", min: 1, process: mem},
	{name: "break", min: 1, process: setBreak},
	{name: "trace", min: 1, process: trace},
	{name: "quit", min: 1, process: quit},
}

// Monitor drives one CPU interactively.
type Monitor struct {
	machine *cpu.CPU
	out     io.Writer
	breaks  map[int32]struct{}
	tracing bool
}

// New creates a monitor for the given core, printing to stdout.
func New(machine *cpu.CPU) *Monitor {
	return &Monitor{
		machine: machine,
		out:     os.Stdout,
		breaks:  make(map[int32]struct{}),
	}
}

// ProcessCommand executes one command line. It returns true when the
// monitor session should end.
func (mon *Monitor) ProcessCommand(commandLine string) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()
	if name == "" {
		return false, nil
	}

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("unique command not found: " + name)
	}
	return match[0].process(mon, &line)
}

// Complete returns the command names matching a partial line, for line
// editing.
func (mon *Monitor) Complete(commandLine string) []string {
	name := strings.TrimLeft(commandLine, " ")
	if strings.Contains(name, " ") {
		return nil
	}
	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.name, strings.ToLower(name)) {
			matches = append(matches, m.name)
		}
	}
	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.name) || len(command) < match.min {
		return false
	}
	return strings.HasPrefix(match.name, command)
}

// Match command against the list of commands.
func matchList(command string) []cmd {
	command = strings.ToLower(command)
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Current command line and scan position.
type cmdLine struct {
	line string
	pos  int
}

func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && line.line[line.pos] == ' ' {
		line.pos++
	}
}

// Collect the next space-delimited word.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	start := line.pos
	for line.pos < len(line.line) && line.line[line.pos] != ' ' {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Collect the next word as a number. The second result reports whether a
// word was present at all.
func (line *cmdLine) getNumber() (int32, bool, error) {
	word := line.getWord()
	if word == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		return 0, true, errors.New("not a number: " + word)
	}
	return int32(value), true, nil
}
