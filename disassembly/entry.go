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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
)

// Entry is the disassembly of a single address.
type Entry struct {
	Address  uint32
	Word     uint32
	Mnemonic string
	Operands string

	// the address is the exit point of the program
	Exit bool

	// a breakpoint is set on the address
	Breakpoint bool

	// the name of the function that starts at the address. empty if no
	// function starts here
	Label string
}

// newEntry disassembles an instruction
func newEntry(address uint32, word uint32, ins instructions.Instruction) *Entry {
	e := &Entry{
		Address: address,
		Word:    word,
	}

	// look through the markers that wrap a decoded instruction
	for {
		switch w := ins.(type) {
		case *instructions.Breakpoint:
			e.Breakpoint = true
			ins = w.Unwrap()
			continue
		case *instructions.ProgramExit:
			e.Exit = true
			ins = w.Unwrap()
			continue
		}
		break
	}

	e.Mnemonic = ins.String()
	e.Operands = strings.TrimSpace(strings.TrimPrefix(instructions.Disassemble(ins), e.Mnemonic))

	return e
}

// notes column. the breakpoint and exit markers
func (e *Entry) notes() string {
	s := strings.Builder{}
	if e.Breakpoint {
		s.WriteString(" <break>")
	}
	if e.Exit {
		s.WriteString(" <exit>")
	}
	return s.String()
}

func (e *Entry) String() string {
	return strings.TrimRight(fmt.Sprintf("%08x  %08x  %-8s%s%s", e.Address, e.Word, e.Mnemonic, e.Operands, e.notes()), " ")
}
