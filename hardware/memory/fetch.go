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
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
)

// Fetch returns the instruction at the address. Fetching never fails and does
// not affect the in-flight data access:
//
//	a mapped word that has never been written is an Illegal instruction
//	a peripheral register is decoded from the current value of the register
//	an address that is not mapped is an Unmapped instruction
func (mem *Memory) Fetch(address uint32) instructions.Instruction {
	switch mem.areaOf(address) {
	case memorymap.LMB, memorymap.OPB:
		if ins, ok := mem.insts[address>>2]; ok {
			return ins
		}
		return mem.decoder.Illegal(address)
	case memorymap.Device:
		return mem.decoder.Decode(address, mem.registers[address>>2].Get())
	}
	return mem.decoder.Unmapped(address)
}
