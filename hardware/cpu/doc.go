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

// Package cpu implements the three stage pipeline of the processor. The
// pipeline has a fetch, decode and execute slot. Once per clock, Cycle()
// steps the instruction in the execute slot and the outcome of that step
// decides how the pipeline advances:
//
//	Normal                 the slots shift and the next instruction is fetched
//	Stall                  the slots are held (a bubble in decode is filled)
//	MemAccessInProgress    as Stall
//	DelaySlot              the decode slot moves to execute and a bubble is
//	                       left in decode. fetching continues at the target
//	JumpTaken              decode and execute are flushed. fetching continues
//	                       at the target
//	Breakpoint             nothing changes and RunBreakpoint is returned
//	Stop                   nothing changes and RunStopped is returned
//
// An external interrupt is taken at the end of a Normal (or Empty) cycle if
// the MSR allows it, no imm prefix is in effect and the decode slot holds an
// instruction. The address of that instruction is saved in r14 and the jump
// to the interrupt vector is placed in the execute slot.
//
// Synchronous faults (divide by zero, illegal opcode, bus errors) enter the
// exception handler at address 0x20 if the MSR allows it. r17 receives the
// address following the faulting instruction and the ESR records the cause.
// If exceptions are not enabled the fault is treated as a Normal outcome.
//
// The CPU also exposes the debugging operations used by tooling: register
// access by number (see the registers package), breakpoint insertion and
// removal, and relocation of the pipeline by setting the PC.
package cpu
