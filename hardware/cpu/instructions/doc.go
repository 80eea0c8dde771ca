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

// Package instructions defines the Instruction interface used by the pipeline
// scheduler and the marker instructions that the scheduler and the memory
// system create themselves.
//
// The markers are:
//
//	Empty        a pipeline bubble
//	Illegal      an address that was never written with an instruction
//	Unmapped     an address outside every memory region
//	ProgramExit  the exit point of a program, wrapping the real instruction
//	Breakpoint   a breakpoint, wrapping the real instruction
//	Vector       the jump to the interrupt handler
//
// Use KindOf() to distinguish between markers. Instructions decoded from an
// instruction word are all of KindOpcode.
//
// Decoded instructions are provided by an implementation of the Decoder
// interface. See the microblaze package for the reference instruction set.
package instructions
