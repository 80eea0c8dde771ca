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

import (
	"io"
	"sync"

	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/logger"
)

// Register offsets from the base address of the device.
const (
	RX      = 0x0
	TX      = 0x4
	STATUS  = 0x8
	CONTROL = 0xc
)

// Bits of the status register.
const (
	RxValid         uint32 = 0x01
	RxFull          uint32 = 0x02
	TxEmpty         uint32 = 0x04
	TxFull          uint32 = 0x08
	InterruptActive uint32 = 0x10
)

// Bits of the control register.
const (
	ResetTx         uint32 = 0x01
	ResetRx         uint32 = 0x02
	EnableInterrupt uint32 = 0x10
)

// the number of bytes the receive queue will hold before input is dropped
const rxCapacity = 16

// UARTLite is a model of the OPB UART Lite. There is no transmit FIFO: a
// byte written to TX is sent to the output one device cycle after the cycle
// in which it was written. Bytes received with Receive() are queued and read
// one at a time from RX.
type UARTLite struct {
	readLatency  int
	writeLatency int

	out io.Writer

	// the receive queue is written to by Receive() which may be called from
	// a different goroutine to the emulation
	crit sync.Mutex
	rx   []byte

	// transmit holding register. wrote is set during the cycle the register
	// was written to and sending is set for the following cycle
	tx      uint32
	wrote   bool
	sending bool

	control     uint32
	nextControl uint32
	wroteCtrl   bool

	debug logger.Permission
}

// NewUARTLite is the preferred method of initialisation for the UARTLite
// type. Transmitted bytes are written to out, which can be nil.
func NewUARTLite(readLatency int, writeLatency int, out io.Writer, debug logger.Permission) *UARTLite {
	return &UARTLite{
		readLatency:  readLatency,
		writeLatency: writeLatency,
		out:          out,
		rx:           make([]byte, 0, rxCapacity),
		debug:        debug,
	}
}

// Label implements the peripherals.Peripheral interface.
func (u *UARTLite) Label() string {
	return "uartlite"
}

// ReadLatency implements the bus.Device interface.
func (u *UARTLite) ReadLatency() int {
	return u.readLatency
}

// WriteLatency implements the bus.Device interface.
func (u *UARTLite) WriteLatency() int {
	return u.writeLatency
}

// SetOutput changes the destination of transmitted bytes.
func (u *UARTLite) SetOutput(out io.Writer) {
	u.out = out
}

// Receive adds bytes to the receive queue. Bytes that do not fit in the queue
// are dropped and the number of bytes accepted is returned.
func (u *UARTLite) Receive(p []byte) int {
	u.crit.Lock()
	defer u.crit.Unlock()

	n := min(len(p), rxCapacity-len(u.rx))
	u.rx = append(u.rx, p[:n]...)
	if n < len(p) {
		logger.Logf(u.debug, "uartlite", "receive queue full. dropped %d bytes", len(p)-n)
	}
	return n
}

// Attach implements the peripherals.Peripheral interface.
func (u *UARTLite) Attach(m bus.Mapper, base uint32) error {
	for _, r := range []register{
		{u: u, offset: RX},
		{u: u, offset: TX},
		{u: u, offset: STATUS},
		{u: u, offset: CONTROL},
	} {
		if err := m.MapRegister(base+r.offset, r); err != nil {
			return err
		}
	}
	return nil
}

// Reset implements the peripherals.Peripheral interface.
func (u *UARTLite) Reset() {
	u.crit.Lock()
	u.rx = u.rx[:0]
	u.crit.Unlock()

	u.tx = 0
	u.wrote = false
	u.sending = false
	u.control = 0
	u.wroteCtrl = false
}

// Status returns the value of the status register.
func (u *UARTLite) Status() uint32 {
	u.crit.Lock()
	defer u.crit.Unlock()

	var s uint32
	if len(u.rx) > 0 {
		s |= RxValid
	}
	if len(u.rx) == rxCapacity {
		s |= RxFull
	}
	if !u.wrote && !u.sending {
		s |= TxEmpty
	} else {
		s |= TxFull
	}
	if u.control&EnableInterrupt == EnableInterrupt {
		s |= InterruptActive
	}
	return s
}

// Cycle implements the peripherals.Peripheral interface. The interrupt line
// is raised while there is data in the receive queue and for the cycle in
// which a byte is sent.
func (u *UARTLite) Cycle() bool {
	sent := false
	if u.sending {
		u.sending = false
		sent = true
		if u.out != nil {
			if _, err := u.out.Write([]byte{byte(u.tx)}); err != nil {
				logger.Log(u.debug, "uartlite", err)
			}
		}
	}
	if u.wrote {
		u.wrote = false
		u.sending = true
	}

	if u.wroteCtrl {
		u.wroteCtrl = false
		u.control = u.nextControl
		if u.control&ResetTx == ResetTx {
			u.wrote = false
			u.sending = false
		}
		if u.control&ResetRx == ResetRx {
			u.crit.Lock()
			u.rx = u.rx[:0]
			u.crit.Unlock()
		}
	}

	if u.control&EnableInterrupt != EnableInterrupt {
		return false
	}
	return sent || u.Status()&RxValid == RxValid
}

// pop the next byte from the receive queue. returns zero if the queue is empty
func (u *UARTLite) pop() uint32 {
	u.crit.Lock()
	defer u.crit.Unlock()

	if len(u.rx) == 0 {
		return 0
	}
	b := u.rx[0]
	u.rx = append(u.rx[:0], u.rx[1:]...)
	return uint32(b)
}
