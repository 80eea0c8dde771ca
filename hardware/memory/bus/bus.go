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

package bus

// Status is the result of polling a data access on the bus.
type Status int

// List of valid Status values.
const (
	// the access has completed. for reads the value is valid
	Ready Status = iota

	// the access is in flight. the same access must be polled again on the
	// next cycle
	Busy

	// the address is not aligned for the size of the access
	Unaligned

	// the address is not in any mapped region
	Unmapped
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Busy:
		return "busy"
	case Unaligned:
		return "unaligned"
	case Unmapped:
		return "unmapped"
	}
	return "unknown"
}

// DataBus defines the data access operations of the memory system as seen by
// the instructions of the CPU. Accesses are polled once per cycle until the
// status is no longer Busy.
//
// Half and byte values are returned in (and taken from) the low bits of the
// uint32 value.
type DataBus interface {
	ReadWord(address uint32) (uint32, Status)
	ReadHalf(address uint32) (uint32, Status)
	ReadByte(address uint32) (uint32, Status)
	WriteWord(address uint32, data uint32) Status
	WriteHalf(address uint32, data uint32) Status
	WriteByte(address uint32, data uint32) Status
}
