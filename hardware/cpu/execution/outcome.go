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

package execution

// Outcome is the result of stepping the instruction in the execute slot of
// the pipeline. The pipeline scheduler chooses the next transition from the
// outcome.
type Outcome int

// List of valid Outcome values.
const (
	// the instruction completed and the pipeline can advance
	Normal Outcome = iota

	// a branch with a delay slot. the instruction in the decode slot is
	// executed before the branch target
	DelaySlot

	// the branch was taken and the pipeline must be flushed
	JumpTaken

	// the instruction requires more cycles to complete
	Stall

	// the execute slot held a pipeline bubble
	Empty

	// synchronous faults
	DivideByZero
	Illegal
	UnmappedFetch

	// the program has reached its exit point
	Stop

	// the execute slot held a breakpoint
	Breakpoint

	// a data access is still in flight
	MemAccessInProgress

	// data access faults
	MemUnmapped
	MemUnaligned
)

func (o Outcome) String() string {
	switch o {
	case Normal:
		return "normal"
	case DelaySlot:
		return "delay slot"
	case JumpTaken:
		return "jump"
	case Stall:
		return "stall"
	case Empty:
		return "empty"
	case DivideByZero:
		return "divide by zero"
	case Illegal:
		return "illegal opcode"
	case UnmappedFetch:
		return "instruction bus error"
	case Stop:
		return "stop"
	case Breakpoint:
		return "breakpoint"
	case MemAccessInProgress:
		return "memory access"
	case MemUnmapped:
		return "data bus error"
	case MemUnaligned:
		return "unaligned access"
	}
	return "unknown outcome"
}

// IsFault returns true if the outcome is a synchronous fault that may cause
// the processor to enter the exception handler.
func (o Outcome) IsFault() bool {
	switch o {
	case DivideByZero, Illegal, UnmappedFetch, MemUnmapped, MemUnaligned:
		return true
	}
	return false
}

// ExceptionCause returns the value of the exception status register to use
// when entering the exception handler for this outcome. The existing ESR value
// is required because some causes are OR'd into the register and others
// replace it.
//
// The second return value is false if the outcome is not a fault.
func (o Outcome) ExceptionCause(esr uint32) (uint32, bool) {
	switch o {
	case DivideByZero:
		return 0x05, true
	case MemUnmapped:
		return 0x04, true
	case MemUnaligned:
		return esr | 0x01, true
	case Illegal:
		return esr | 0x02, true
	case UnmappedFetch:
		return esr | 0x03, true
	}
	return esr, false
}
