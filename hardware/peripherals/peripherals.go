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

package peripherals

import (
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
)

// Peripheral is a device attached to the OPB. The registers of the device are
// mapped into memory by Attach() and the device is ticked once per system
// cycle after the CPU.
type Peripheral interface {
	bus.Device

	// short name of the device, used in logging and in the terminal
	Label() string

	// map the device registers at the base address
	Attach(m bus.Mapper, base uint32) error

	// advance the device by one cycle. returns the state of the interrupt
	// line at the end of the cycle
	Cycle() bool

	Reset()
}
