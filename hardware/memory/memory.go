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
	"fmt"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
)

// Error patterns.
const (
	UnmappedAddress  = "memory: address %08x is not mapped"
	UnalignedAddress = "memory: address %08x is not aligned"
	AddressInUse     = "memory: cannot map register to %08x: %s"
	InvalidMap       = "memory: %v"
)

// Memory is the memory system of the simulator. It owns the storage for the
// local memory bus and the peripheral bus, the decoded instruction for every
// word that has been written, and the peripheral registers attached to it.
//
// Only one data access can be in flight at any one time. The access is polled
// once per cycle by the instruction that started it.
type Memory struct {
	mmap    memorymap.Map
	decoder instructions.Decoder

	// word addressed storage. the key is the address shifted right by two
	data  map[uint32]uint32
	insts map[uint32]instructions.Instruction

	// peripheral registers keyed by word address
	registers map[uint32]bus.Register

	// the in-flight data access
	access access

	// the value of the most recent data read
	lastRead uint32
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// memory map is validated and it is an error for the regions to overlap.
func NewMemory(mmap memorymap.Map, decoder instructions.Decoder) (*Memory, error) {
	if err := mmap.Validate(); err != nil {
		return nil, curated.Errorf(InvalidMap, err)
	}

	mem := &Memory{
		mmap:      mmap,
		decoder:   decoder,
		registers: make(map[uint32]bus.Register),
	}
	mem.Reset()

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s%d device registers\n", mem.mmap.Summary(), len(mem.registers))
}

// Map returns the memory map used by the memory system.
func (mem *Memory) Map() memorymap.Map {
	return mem.mmap
}

// MapRegister implements the bus.Mapper interface. The address must be word
// aligned and must not be in the LMB or OPB regions or already be used by
// another register.
func (mem *Memory) MapRegister(address uint32, reg bus.Register) error {
	if address&0x03 != 0 {
		return curated.Errorf(UnalignedAddress, address)
	}
	if a := mem.mmap.MapAddress(address); a != memorymap.Undefined {
		return curated.Errorf(AddressInUse, address, fmt.Sprintf("address is in %s region", a))
	}
	if _, ok := mem.registers[address>>2]; ok {
		return curated.Errorf(AddressInUse, address, "address is already used by another register")
	}
	mem.registers[address>>2] = reg
	return nil
}

// Reset clears the contents of memory and abandons any data access in
// progress. Peripheral registers remain attached.
func (mem *Memory) Reset() {
	mem.data = make(map[uint32]uint32)
	mem.insts = make(map[uint32]instructions.Instruction)
	mem.access = idle{}
	mem.lastRead = 0
}

// ResetAccess abandons any data access in progress.
func (mem *Memory) ResetAccess() {
	mem.access = idle{}
}

// LastRead returns the value of the most recent completed data read.
func (mem *Memory) LastRead() uint32 {
	return mem.lastRead
}

// areaOf returns the area the address belongs to, including peripheral
// registers.
func (mem *Memory) areaOf(address uint32) memorymap.Area {
	if a := mem.mmap.MapAddress(address); a != memorymap.Undefined {
		return a
	}
	if _, ok := mem.registers[address>>2]; ok {
		return memorymap.Device
	}
	return memorymap.Undefined
}

// latency of an access to the address in the area. the latency of a device
// register is taken from the device at the time of the access.
func (mem *Memory) latency(area memorymap.Area, address uint32, write bool) int {
	switch area {
	case memorymap.Device:
		dev := mem.registers[address>>2].Device()
		if write {
			return dev.WriteLatency()
		}
		return dev.ReadLatency()
	default:
		r, _ := mem.mmap.Region(area)
		if write {
			return r.WriteLatency
		}
		return r.ReadLatency
	}
}

// readWord returns the word containing the address. unwritten memory reads as
// zero.
func (mem *Memory) readWord(area memorymap.Area, address uint32) uint32 {
	if area == memorymap.Device {
		return mem.registers[address>>2].Get()
	}
	return mem.data[address>>2]
}

// modifyWord replaces the word containing the address with the result of the
// modify function. the decoded instruction for the word is replaced too, which
// means that self-modifying code is always fetched correctly.
func (mem *Memory) modifyWord(area memorymap.Area, address uint32, modify func(uint32) uint32) {
	if area == memorymap.Device {
		reg := mem.registers[address>>2]
		reg.Put(modify(reg.Get()))
		return
	}

	w := address >> 2
	v := modify(mem.data[w])
	mem.data[w] = v
	mem.insts[w] = mem.decoder.Decode(w<<2, v)
}
