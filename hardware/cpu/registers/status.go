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

package registers

import "strings"

// MachineStatus is the machine status register (MSR).
type MachineStatus uint32

// MSR bits.
const (
	InterruptEnable     MachineStatus = 0x00000002
	Carry               MachineStatus = 0x00000004
	BreakInProgress     MachineStatus = 0x00000008
	ExceptionEnable     MachineStatus = 0x00000100
	ExceptionInProgress MachineStatus = 0x00000200
	CarryCopy           MachineStatus = 0x80000000
)

// Is returns true if all the bits are set.
func (m MachineStatus) Is(bits MachineStatus) bool {
	return m&bits == bits
}

// Carry returns the state of the carry flag.
func (m MachineStatus) Carry() bool {
	return m&Carry == Carry
}

// SetCarry sets or clears the carry flag and its copy in the most
// significant bit.
func (m *MachineStatus) SetCarry(c bool) {
	if c {
		*m |= Carry | CarryCopy
	} else {
		*m &^= Carry | CarryCopy
	}
}

// InterruptsAllowed returns true if an external interrupt can be taken:
// interrupts are enabled and neither a break nor an exception is in progress.
func (m MachineStatus) InterruptsAllowed() bool {
	return m&(InterruptEnable|BreakInProgress|ExceptionInProgress) == InterruptEnable
}

// ExceptionsAllowed returns true if a synchronous fault should enter the
// exception handler: exceptions are enabled and no exception is in progress.
func (m MachineStatus) ExceptionsAllowed() bool {
	return m&(ExceptionEnable|ExceptionInProgress) == ExceptionEnable
}

// String returns the flags of the MSR. An upper case letter indicates that the
// flag is set.
func (m MachineStatus) String() string {
	s := strings.Builder{}

	flag := func(bits MachineStatus, set rune, clear rune) {
		if m.Is(bits) {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(ExceptionInProgress, 'X', 'x')
	flag(ExceptionEnable, 'E', 'e')
	flag(BreakInProgress, 'B', 'b')
	flag(Carry, 'C', 'c')
	flag(InterruptEnable, 'I', 'i')

	return s.String()
}
