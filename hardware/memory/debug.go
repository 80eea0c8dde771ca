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

package memory

import (
	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
)

// the debugging functions complete immediately. they do not touch the
// in-flight data access and they report unmapped addresses as errors

func (mem *Memory) debugArea(address uint32, sz size) (memorymap.Area, error) {
	if !aligned(address, sz) {
		return memorymap.Undefined, curated.Errorf(UnalignedAddress, address)
	}
	area := mem.areaOf(address)
	if area == memorymap.Undefined {
		return area, curated.Errorf(UnmappedAddress, address)
	}
	return area, nil
}

// PeekWord implements the bus.DebugBus interface.
func (mem *Memory) PeekWord(address uint32) (uint32, error) {
	area, err := mem.debugArea(address, wordSize)
	if err != nil {
		return 0, err
	}
	return mem.readWord(area, address), nil
}

// PokeWord implements the bus.DebugBus interface.
func (mem *Memory) PokeWord(address uint32, value uint32) error {
	area, err := mem.debugArea(address, wordSize)
	if err != nil {
		return err
	}
	mem.modifyWord(area, address, func(_ uint32) uint32 {
		return value
	})
	return nil
}

// PeekHalf implements the bus.DebugBus interface.
func (mem *Memory) PeekHalf(address uint32) (uint16, error) {
	area, err := mem.debugArea(address, halfSize)
	if err != nil {
		return 0, err
	}
	return uint16(selectHalf(mem.readWord(area, address), address)), nil
}

// PokeHalf implements the bus.DebugBus interface.
func (mem *Memory) PokeHalf(address uint32, value uint16) error {
	area, err := mem.debugArea(address, halfSize)
	if err != nil {
		return err
	}
	mem.modifyWord(area, address, func(w uint32) uint32 {
		return insertHalf(w, address, uint32(value))
	})
	return nil
}

// PeekByte implements the bus.DebugBus interface.
func (mem *Memory) PeekByte(address uint32) (uint8, error) {
	area, err := mem.debugArea(address, byteSize)
	if err != nil {
		return 0, err
	}
	return uint8(selectByte(mem.readWord(area, address), address)), nil
}

// PokeByte implements the bus.DebugBus interface.
func (mem *Memory) PokeByte(address uint32, value uint8) error {
	area, err := mem.debugArea(address, byteSize)
	if err != nil {
		return err
	}
	mem.modifyWord(area, address, func(w uint32) uint32 {
		return insertByte(w, address, uint32(value))
	})
	return nil
}

// Instruction returns the instruction at the address in the same way as
// Fetch() except that an unmapped or misaligned address is an error.
func (mem *Memory) Instruction(address uint32) (instructions.Instruction, error) {
	if _, err := mem.debugArea(address, wordSize); err != nil {
		return nil, err
	}
	return mem.Fetch(address), nil
}

// PutInstruction replaces the decoded instruction at the address without
// changing the data stored there. This is how breakpoints and program exit
// markers are installed.
//
// Instructions at peripheral register addresses are always decoded from the
// register value so the instruction is silently discarded.
func (mem *Memory) PutInstruction(address uint32, ins instructions.Instruction) error {
	area, err := mem.debugArea(address, wordSize)
	if err != nil {
		return err
	}
	if area == memorymap.Device {
		return nil
	}
	mem.insts[address>>2] = ins
	return nil
}
