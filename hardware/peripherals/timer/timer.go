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

import (
	"fmt"

	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/logger"
)

// Register offsets from the base address of the device.
const (
	TCSR0 = 0x00
	TLR0  = 0x04
	TCR0  = 0x08
	TCSR1 = 0x10
	TLR1  = 0x14
	TCR1  = 0x18
)

// Bits of the control and status registers.
const (
	MDT   uint32 = 0x001 // capture mode
	UDT   uint32 = 0x002 // count down
	GENT  uint32 = 0x004 // enable external generate signal
	CAPT  uint32 = 0x008 // enable external capture trigger
	ARHT  uint32 = 0x010 // auto reload when counter wraps
	LOAD  uint32 = 0x020 // load counter from load register
	ENIT  uint32 = 0x040 // enable interrupt
	ENT   uint32 = 0x080 // enable timer
	TINT  uint32 = 0x100 // interrupt has occurred. write one to clear
	PWMA  uint32 = 0x200 // pulse width modulation
	ENALL uint32 = 0x400 // enable both timers
)

// a single count register with its load and control registers.
type counter struct {
	tcsr uint32
	tlr  uint32
	tcr  uint32

	// values written from the bus. these take effect at the end of the cycle
	nextTCSR  uint32
	nextTLR   uint32
	wroteTCSR bool
	wroteTLR  bool
}

func (c *counter) pending() bool {
	return c.tcsr&ENIT == ENIT && c.tcsr&TINT == TINT
}

// Timer is a model of the OPB timer/counter. It has two timers that count
// up or down in generate mode. Capture mode and PWM mode are recognised but
// the timers do not count while in those modes.
type Timer struct {
	readLatency  int
	writeLatency int

	counters [2]counter

	debug logger.Permission
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(readLatency int, writeLatency int, debug logger.Permission) *Timer {
	return &Timer{
		readLatency:  readLatency,
		writeLatency: writeLatency,
		debug:        debug,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("TCSR0=%08x TLR0=%08x TCR0=%08x TCSR1=%08x TLR1=%08x TCR1=%08x",
		tmr.counters[0].tcsr, tmr.counters[0].tlr, tmr.counters[0].tcr,
		tmr.counters[1].tcsr, tmr.counters[1].tlr, tmr.counters[1].tcr)
}

// Label implements the peripherals.Peripheral interface.
func (tmr *Timer) Label() string {
	return "timer"
}

// ReadLatency implements the bus.Device interface.
func (tmr *Timer) ReadLatency() int {
	return tmr.readLatency
}

// WriteLatency implements the bus.Device interface.
func (tmr *Timer) WriteLatency() int {
	return tmr.writeLatency
}

// Attach implements the peripherals.Peripheral interface.
func (tmr *Timer) Attach(m bus.Mapper, base uint32) error {
	for n := range tmr.counters {
		offset := base + uint32(n)*TCSR1
		for f, o := range []uint32{TCSR0, TLR0, TCR0} {
			if err := m.MapRegister(offset+o, register{tmr: tmr, n: n, f: field(f)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset implements the peripherals.Peripheral interface.
func (tmr *Timer) Reset() {
	tmr.counters = [2]counter{}
}

// Interrupt returns the state of the interrupt line.
func (tmr *Timer) Interrupt() bool {
	return tmr.counters[0].pending() || tmr.counters[1].pending()
}

// Cycle implements the peripherals.Peripheral interface.
func (tmr *Timer) Cycle() bool {
	if tmr.counters[0].tcsr&PWMA == PWMA && tmr.counters[1].tcsr&PWMA == PWMA {
		return tmr.Interrupt()
	}

	for n := range tmr.counters {
		tmr.count(n)
	}

	interrupt := tmr.Interrupt()

	for n := range tmr.counters {
		tmr.update(n)
	}

	return interrupt
}

func (tmr *Timer) count(n int) {
	c := &tmr.counters[n]

	if c.tcsr&MDT == MDT {
		return
	}

	if c.tcsr&LOAD == LOAD {
		c.tcr = c.tlr
	}

	if c.tcsr&ENT != ENT {
		return
	}

	if c.tcsr&UDT == UDT {
		if c.tcr != 0 {
			c.tcr--
			return
		}
		if c.tcsr&ARHT == ARHT {
			c.tcr = c.tlr - 1
		} else {
			c.tcr = 0xffffffff
		}
	} else {
		if c.tcr != 0xffffffff {
			c.tcr++
			return
		}
		if c.tcsr&ARHT == ARHT {
			c.tcr = c.tlr + 1
		} else {
			c.tcr = 0
		}
	}

	c.tcsr |= TINT
	logger.Logf(tmr.debug, "timer", "interrupt from timer %d", n)
}

// apply the register writes made during the cycle
func (tmr *Timer) update(n int) {
	c := &tmr.counters[n]
	other := &tmr.counters[n^1]

	if c.wroteTLR {
		c.wroteTLR = false
		c.tlr = c.nextTLR
	}

	if !c.wroteTCSR {
		return
	}
	c.wroteTCSR = false

	v := c.nextTCSR
	tint := c.tcsr & TINT
	if v&TINT == TINT {
		tint = 0
	}
	c.tcsr = v&^TINT | tint

	if v&ENALL == ENALL {
		c.tcsr |= ENT
		other.tcsr |= ENALL | ENT
	} else {
		other.tcsr &^= ENALL
	}
}
