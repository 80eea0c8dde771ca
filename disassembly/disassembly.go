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
	"io"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/symbols"
)

// Error patterns.
const (
	DisasmError  = "disassembly: %v"
	InvalidRange = "disassembly: invalid range (%08x to %08x)"
)

// Memory is the debug view of memory required by the disassembly.
type Memory interface {
	PeekWord(address uint32) (uint32, error)
}

// InstructionMemory is implemented by memory that holds decoded
// instructions. It is used to note the breakpoints and exit points in the
// disassembly.
type InstructionMemory interface {
	Memory
	Instruction(address uint32) (instructions.Instruction, error)
}

// Disassembly of a memory system.
type Disassembly struct {
	mem Memory
	dec instructions.Decoder

	// symbols used to label the disassembly. can be nil
	Symbols *symbols.Table
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(mem Memory, dec instructions.Decoder) *Disassembly {
	return &Disassembly{
		mem: mem,
		dec: dec,
	}
}

// Entry returns the disassembly of a single word aligned address.
func (dsm *Disassembly) Entry(address uint32) (*Entry, error) {
	address &^= 0x03

	word, err := dsm.mem.PeekWord(address)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	// decoding the word creates a new instruction without touching the
	// instruction held by memory
	ins := dsm.dec.Decode(address, word)

	// decorate with the markers held by memory
	if im, ok := dsm.mem.(InstructionMemory); ok {
		if held, err := im.Instruction(address); err == nil {
			switch instructions.KindOf(held) {
			case instructions.KindBreakpoint, instructions.KindProgramExit:
				ins = held
			}
		}
	}

	e := newEntry(address, word, ins)

	if dsm.Symbols != nil {
		if fn, ok := dsm.Symbols.Lookup(address); ok && fn.Begin == address {
			e.Label = fn.Name
		}
	}

	return e, nil
}

// Write the disassembly of the addresses from begin to end inclusive. An
// address that cannot be read stops the disassembly with an error.
func (dsm *Disassembly) Write(output io.Writer, begin uint32, end uint32) error {
	begin &^= 0x03
	end &^= 0x03
	if end < begin {
		return curated.Errorf(InvalidRange, begin, end)
	}

	for address := begin; ; address += 4 {
		e, err := dsm.Entry(address)
		if err != nil {
			return err
		}
		dsm.WriteEntry(output, e)

		// address would wrap on the next iteration
		if address >= end {
			break
		}
	}

	return nil
}

// WriteEntry writes a single entry, preceded by its label if it has one.
func (dsm *Disassembly) WriteEntry(output io.Writer, e *Entry) {
	if e.Label != "" {
		io.WriteString(output, fmt.Sprintf("%s:\n", e.Label))
	}
	io.WriteString(output, e.String())
	io.WriteString(output, "\n")
}

// Write the disassembly of the addresses from begin to end inclusive without
// symbols.
func Write(output io.Writer, mem Memory, dec instructions.Decoder, begin uint32, end uint32) error {
	return NewDisassembly(mem, dec).Write(output, begin, end)
}
