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

package timer

import "github.com/fireworks-sim/fireworks/hardware/memory/bus"

type field int

const (
	fieldTCSR field = iota
	fieldTLR
	fieldTCR
)

// register implements the bus.Register interface for one of the six
// registers of the device.
type register struct {
	tmr *Timer
	n   int
	f   field
}

func (r register) Get() uint32 {
	c := &r.tmr.counters[r.n]
	switch r.f {
	case fieldTCSR:
		return c.tcsr
	case fieldTLR:
		return c.tlr
	}
	return c.tcr
}

// Put records the value for the end of the cycle. The count register is
// read only.
func (r register) Put(v uint32) {
	c := &r.tmr.counters[r.n]
	switch r.f {
	case fieldTCSR:
		c.nextTCSR = v
		c.wroteTCSR = true
	case fieldTLR:
		c.nextTLR = v
		c.wroteTLR = true
	}
}

func (r register) Device() bus.Device {
	return r.tmr
}
