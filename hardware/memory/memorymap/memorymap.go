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

package memorymap

import (
	"fmt"

	"github.com/fireworks-sim/fireworks/curated"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case LMB:
		return "LMB"
	case OPB:
		return "OPB"
	case Device:
		return "Device"
	}

	return "undefined"
}

// The different memory areas. Device registers are not part of the Map and
// are attached to the memory system separately.
const (
	Undefined Area = iota
	LMB
	OPB
	Device
)

// Error patterns.
const (
	RegionOverlap = "memorymap: %s and %s regions overlap"
	RegionInvalid = "memorymap: %s region: %s"
)

// Region is an inclusive, word aligned, range of addresses with a fixed read
// and write latency.
type Region struct {
	Begin        uint32
	End          uint32
	ReadLatency  int
	WriteLatency int
}

func (r Region) String() string {
	return fmt.Sprintf("%08x -> %08x", r.Begin, r.End)
}

// Contains returns true if the address is within the region. Comparison is by
// word index so the low two bits of the address are ignored.
func (r Region) Contains(address uint32) bool {
	w := address >> 2
	return w >= r.Begin>>2 && w <= r.End>>2
}

func (r Region) overlaps(o Region) bool {
	return r.Begin <= o.End && o.Begin <= r.End
}

func (r Region) validate(area Area) error {
	if r.Begin > r.End {
		return curated.Errorf(RegionInvalid, area, "begin is after end")
	}
	if r.Begin&0x03 != 0x00 || r.End&0x03 != 0x03 {
		return curated.Errorf(RegionInvalid, area, "not word aligned")
	}
	if r.ReadLatency < 1 || r.WriteLatency < 1 {
		return curated.Errorf(RegionInvalid, area, "latency must be at least one cycle")
	}
	return nil
}

// Map is the static layout of the address space. It is created once and is
// never changed after the memory system has been created.
type Map struct {
	LMB Region

	// the peripheral bus is optional
	OPBEnabled bool
	OPB        Region

	// the number of cycles an access to an unmapped address takes before the
	// fault is reported
	UnmappedPenalty int
}

// NewMap returns a Map with just the local memory bus in the range [begin,
// end] with a latency of one cycle for both reads and writes.
func NewMap(begin uint32, end uint32) Map {
	return Map{
		LMB: Region{
			Begin:        begin,
			End:          end,
			ReadLatency:  1,
			WriteLatency: 1,
		},
	}
}

// Validate checks that the regions are well formed and that they are
// disjoint.
func (m Map) Validate() error {
	if err := m.LMB.validate(LMB); err != nil {
		return err
	}
	if m.OPBEnabled {
		if err := m.OPB.validate(OPB); err != nil {
			return err
		}
		if m.LMB.overlaps(m.OPB) {
			return curated.Errorf(RegionOverlap, LMB, OPB)
		}
	}
	if m.UnmappedPenalty < 0 {
		return curated.Errorf(RegionInvalid, Undefined, "unmapped penalty is negative")
	}
	return nil
}

// MapAddress returns the area the address belongs to. Device registers are
// not known to the Map and so Device is never returned.
func (m Map) MapAddress(address uint32) Area {
	if m.LMB.Contains(address) {
		return LMB
	}
	if m.OPBEnabled && m.OPB.Contains(address) {
		return OPB
	}
	return Undefined
}

// Region returns the region for the area. The second return value is false
// if the area has no region in the map.
func (m Map) Region(area Area) (Region, bool) {
	switch area {
	case LMB:
		return m.LMB, true
	case OPB:
		return m.OPB, m.OPBEnabled
	}
	return Region{}, false
}
