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
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
)

// memory is big-endian. the lowest address of a word holds the most
// significant byte

func selectHalf(w uint32, address uint32) uint32 {
	if address&0x02 == 0 {
		return w >> 16
	}
	return w & 0xffff
}

func insertHalf(w uint32, address uint32, v uint32) uint32 {
	if address&0x02 == 0 {
		return (w & 0x0000ffff) | ((v & 0xffff) << 16)
	}
	return (w & 0xffff0000) | (v & 0xffff)
}

func byteShift(address uint32) uint32 {
	return 24 - (address&0x03)*8
}

func selectByte(w uint32, address uint32) uint32 {
	return (w >> byteShift(address)) & 0xff
}

func insertByte(w uint32, address uint32, v uint32) uint32 {
	s := byteShift(address)
	return (w &^ (0xff << s)) | ((v & 0xff) << s)
}

// ReadWord implements the bus.DataBus interface.
func (mem *Memory) ReadWord(address uint32) (uint32, bus.Status) {
	address, area, st := mem.poll(address, wordSize, false)
	if st != bus.Ready {
		return 0, st
	}
	mem.lastRead = mem.readWord(area, address)
	return mem.lastRead, bus.Ready
}

// ReadHalf implements the bus.DataBus interface.
func (mem *Memory) ReadHalf(address uint32) (uint32, bus.Status) {
	address, area, st := mem.poll(address, halfSize, false)
	if st != bus.Ready {
		return 0, st
	}
	mem.lastRead = selectHalf(mem.readWord(area, address), address)
	return mem.lastRead, bus.Ready
}

// ReadByte implements the bus.DataBus interface.
func (mem *Memory) ReadByte(address uint32) (uint32, bus.Status) {
	address, area, st := mem.poll(address, byteSize, false)
	if st != bus.Ready {
		return 0, st
	}
	mem.lastRead = selectByte(mem.readWord(area, address), address)
	return mem.lastRead, bus.Ready
}

// WriteWord implements the bus.DataBus interface.
func (mem *Memory) WriteWord(address uint32, data uint32) bus.Status {
	address, area, st := mem.poll(address, wordSize, true)
	if st != bus.Ready {
		return st
	}
	mem.modifyWord(area, address, func(_ uint32) uint32 {
		return data
	})
	return bus.Ready
}

// WriteHalf implements the bus.DataBus interface.
func (mem *Memory) WriteHalf(address uint32, data uint32) bus.Status {
	address, area, st := mem.poll(address, halfSize, true)
	if st != bus.Ready {
		return st
	}
	mem.modifyWord(area, address, func(w uint32) uint32 {
		return insertHalf(w, address, data)
	})
	return bus.Ready
}

// WriteByte implements the bus.DataBus interface.
func (mem *Memory) WriteByte(address uint32, data uint32) bus.Status {
	address, area, st := mem.poll(address, byteSize, true)
	if st != bus.Ready {
		return st
	}
	mem.modifyWord(area, address, func(w uint32) uint32 {
		return insertByte(w, address, data)
	})
	return bus.Ready
}
