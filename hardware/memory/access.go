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
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
)

// access is the state of the single in-flight data access.
type access interface {
	isAccess()
}

// no access in flight
type idle struct{}

// an access to a mapped region that has not yet reached its latency
type inFlight struct {
	area    memorymap.Area
	address uint32
	cycles  int
	latency int
}

// the address was misaligned. reported on the next poll
type misaligned struct{}

// the address was not mapped. reported once the penalty has elapsed
type unmapped struct {
	cycles int
}

func (idle) isAccess()       {}
func (*inFlight) isAccess()  {}
func (misaligned) isAccess() {}
func (*unmapped) isAccess()  {}

// the size of a data access in bytes
type size uint32

const (
	byteSize size = 1
	halfSize size = 2
	wordSize size = 4
)

func aligned(address uint32, sz size) bool {
	return address&(uint32(sz)-1) == 0
}

// poll advances the in-flight data access by one cycle. If no access is in
// flight then a new access is started for the address.
//
// When the returned status is Ready the caller must complete the access
// immediately, using the returned address and area.
func (mem *Memory) poll(address uint32, sz size, write bool) (uint32, memorymap.Area, bus.Status) {
	switch st := mem.access.(type) {
	case *inFlight:
		st.cycles++
		if st.cycles < st.latency {
			return 0, memorymap.Undefined, bus.Busy
		}
		mem.access = idle{}
		return st.address, st.area, bus.Ready

	case misaligned:
		mem.access = idle{}
		return 0, memorymap.Undefined, bus.Unaligned

	case *unmapped:
		st.cycles++
		if st.cycles <= mem.mmap.UnmappedPenalty {
			return 0, memorymap.Undefined, bus.Busy
		}
		mem.access = idle{}
		return 0, memorymap.Undefined, bus.Unmapped
	}

	area := mem.areaOf(address)
	if area == memorymap.Undefined {
		mem.access = &unmapped{cycles: 1}
		return 0, memorymap.Undefined, bus.Busy
	}

	if !aligned(address, sz) {
		mem.access = misaligned{}
		return 0, memorymap.Undefined, bus.Busy
	}

	latency := mem.latency(area, address, write)
	if latency <= 1 {
		return address, area, bus.Ready
	}

	mem.access = &inFlight{
		area:    area,
		address: address,
		cycles:  1,
		latency: latency,
	}
	return 0, memorymap.Undefined, bus.Busy
}
