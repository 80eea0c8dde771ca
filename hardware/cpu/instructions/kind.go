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

package instructions

// Kind discriminates between the marker instructions and instructions decoded
// from an instruction word.
type Kind int

// List of instruction kinds.
const (
	KindOpcode Kind = iota
	KindEmpty
	KindIllegal
	KindUnmapped
	KindProgramExit
	KindBreakpoint
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindOpcode:
		return "opcode"
	case KindEmpty:
		return "empty"
	case KindIllegal:
		return "illegal"
	case KindUnmapped:
		return "unmapped"
	case KindProgramExit:
		return "program exit"
	case KindBreakpoint:
		return "breakpoint"
	case KindVector:
		return "vector"
	}
	return "unknown kind"
}

// KindOf returns the Kind of the instruction.
func KindOf(ins Instruction) Kind {
	switch ins.(type) {
	case Empty, *Empty:
		return KindEmpty
	case *Illegal:
		return KindIllegal
	case *Unmapped:
		return KindUnmapped
	case *ProgramExit:
		return KindProgramExit
	case *Breakpoint:
		return KindBreakpoint
	case Vector, *Vector:
		return KindVector
	}
	return KindOpcode
}

// IsEmpty returns true if the instruction is a pipeline bubble. A nil
// instruction is also considered to be a bubble.
func IsEmpty(ins Instruction) bool {
	return ins == nil || KindOf(ins) == KindEmpty
}

// IsBreakpoint returns true if the instruction is a Breakpoint.
func IsBreakpoint(ins Instruction) bool {
	return KindOf(ins) == KindBreakpoint
}

// IsMarker returns true if the instruction is one of the marker instructions
// rather than an instruction decoded from an instruction word. Note that a
// ProgramExit or Breakpoint is a marker even though it wraps a decoded
// instruction.
func IsMarker(ins Instruction) bool {
	return KindOf(ins) != KindOpcode
}
