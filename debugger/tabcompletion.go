// This file is part of Fireworks.
//
// Fireworks is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fireworks is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fireworks.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"
	"strings"

	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
)

// tabCompletion completes the last word of the input. repeated calls with the
// previously completed input cycle through the alternative matches
type tabCompletion struct {
	dbg *Debugger

	matches []string
	match   int

	// the input with the final word removed
	prefix string

	// the string most recently returned by Complete()
	last string
}

func newTabCompletion(dbg *Debugger) *tabCompletion {
	return &tabCompletion{dbg: dbg}
}

// Complete implements the terminal.TabCompletion interface
func (tc *tabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = fmt.Sprintf("%s%s ", tc.prefix, tc.matches[tc.match])
		return tc.last
	}

	tc.Reset()

	// the word being completed and everything before it
	var word string
	if i := strings.LastIndexAny(input, " ;"); i >= 0 {
		tc.prefix = input[:i+1]
		word = input[i+1:]
	} else {
		word = input
	}

	// the command that the word is an argument of. words in the command position
	// have no command
	var cmd *command
	cmdInput := tc.prefix
	if i := strings.LastIndex(cmdInput, ";"); i >= 0 {
		cmdInput = cmdInput[i+1:]
	}
	if f := strings.Fields(cmdInput); len(f) > 0 {
		var err error
		cmd, err = lookupCommand(f[0])
		if err != nil {
			return input
		}
	}

	for _, c := range tc.candidates(cmd) {
		if len(c) >= len(word) && strings.EqualFold(c[:len(word)], word) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.last = fmt.Sprintf("%s%s ", tc.prefix, tc.matches[0])
	return tc.last
}

// Reset implements the terminal.TabCompletion interface
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.last = ""
}

// candidates returns the possible completions for an argument of the
// command. a nil command means the word is itself a command
func (tc *tabCompletion) candidates(cmd *command) []string {
	if cmd == nil {
		return commandNames
	}

	switch cmd.complete {
	case completeKeyword:
		return commandNames
	case completeRegister:
		r := make([]string, 0, registers.NumGPR+6)
		for n := range registers.NumGPR {
			r = append(r, registers.Label(n))
		}
		for n := registers.PC; n < registers.PVR0; n++ {
			r = append(r, registers.Label(n))
		}
		return r
	case completeAddress:
		fns := tc.dbg.tab.Functions()
		r := make([]string, 0, len(fns))
		for _, fn := range fns {
			r = append(r, fn.Name)
		}
		return r
	}

	return nil
}
