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

package cpu

import (
	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
)

// InsertBreakpoint wraps the instruction at the address in a breakpoint if it
// is in the decode or fetch slot of the pipeline. The execute slot is not
// considered because that instruction has already started.
//
// It is an error if the instruction is already a breakpoint. If the address
// is not in the pipeline the error is NotInPipeline. Pipeline bubbles never
// match an address.
//
// To set a breakpoint on an address that is not yet in the pipeline, the
// instruction in memory must be wrapped. See hardware.System.SetBreakpoint().
func (mc *CPU) InsertBreakpoint(address uint32) error {
	for _, slot := range []*instructions.Instruction{&mc.decode, &mc.fetch} {
		ins := *slot
		if instructions.IsEmpty(ins) || ins.PC() != address {
			continue
		}
		if instructions.IsBreakpoint(ins) {
			return curated.Errorf(BreakpointInsert, address, "breakpoint already set")
		}
		*slot = &instructions.Breakpoint{Wrapped: ins}
		return nil
	}
	return curated.Errorf(NotInPipeline, address)
}

// RemoveBreakpoint unwraps any breakpoint at the address in the execute,
// decode or fetch slot. It is an error if the slots holding the address are
// not breakpoints. If the address is not in the pipeline the error is
// NotInPipeline.
func (mc *CPU) RemoveBreakpoint(address uint32) error {
	found := false
	removed := false
	for _, slot := range []*instructions.Instruction{&mc.execute, &mc.decode, &mc.fetch} {
		if instructions.IsEmpty(*slot) || (*slot).PC() != address {
			continue
		}
		found = true
		if bp, ok := (*slot).(*instructions.Breakpoint); ok {
			*slot = bp.Unwrap()
			removed = true
		}
	}
	if !found {
		return curated.Errorf(NotInPipeline, address)
	}
	if !removed {
		return curated.Errorf(BreakpointRemove, address, "not a breakpoint")
	}
	return nil
}

// ReleaseBreakpoint replaces a breakpoint in the execute slot with the
// instruction it wraps, allowing execution to continue past the breakpoint.
// Breakpoints in memory are not affected. Returns false if there is no
// breakpoint in the execute slot.
func (mc *CPU) ReleaseBreakpoint() bool {
	if bp, ok := mc.execute.(*instructions.Breakpoint); ok {
		mc.execute = bp.Unwrap()
		return true
	}
	return false
}

// ProgramExit places a ProgramExit marker on the instruction at the address.
// The program will stop when that instruction reaches the execute slot.
func (mc *CPU) ProgramExit(address uint32) error {
	ins, err := mc.mem.Instruction(address)
	if err != nil {
		return curated.Errorf(ProgramExitFail, address, err)
	}
	if instructions.KindOf(ins) == instructions.KindProgramExit {
		return nil
	}
	if err := mc.mem.PutInstruction(address, &instructions.ProgramExit{Wrapped: ins}); err != nil {
		return curated.Errorf(ProgramExitFail, address, err)
	}
	return nil
}
