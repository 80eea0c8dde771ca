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

package uartlite

import "github.com/fireworks-sim/fireworks/hardware/memory/bus"

// register implements the bus.Register interface for one of the four
// registers of the device.
type register struct {
	u      *UARTLite
	offset uint32
}

// Get returns the value of the register. Reading RX removes the byte from
// the receive queue.
func (r register) Get() uint32 {
	switch r.offset {
	case RX:
		return r.u.pop()
	case STATUS:
		return r.u.Status()
	case CONTROL:
		return r.u.control
	}
	return 0
}

// Put writes to the register. RX and STATUS are read only.
func (r register) Put(v uint32) {
	switch r.offset {
	case TX:
		r.u.tx = v
		r.u.wrote = true
	case CONTROL:
		r.u.nextControl = v
		r.u.wroteCtrl = true
	}
}

func (r register) Device() bus.Device {
	return r.u
}
