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

// Device is the part of a peripheral that the memory system needs to know
// about: the number of cycles a read or a write to one of its registers takes.
type Device interface {
	ReadLatency() int
	WriteLatency() int
}

// Register is a single peripheral register mapped into the address space.
// Values are always the full 32 bits of the register. Sub-word writes are
// performed by the memory system as a read-modify-write.
type Register interface {
	Get() uint32
	Put(uint32)

	// the device the register belongs to
	Device() Device
}

// Mapper is the interface used by peripherals to attach their registers to the
// memory system.
type Mapper interface {
	MapRegister(address uint32, reg Register) error
}
