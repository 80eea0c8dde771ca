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
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
)

// Error patterns.
const (
	InvalidRegister  = "cpu: invalid register (%d)"
	PCRelocation     = "cpu: cannot set pc to %08x: %v"
	BreakpointInsert = "cpu: cannot insert breakpoint at %08x: %s"
	BreakpointRemove = "cpu: cannot remove breakpoint at %08x: %s"
	NotInPipeline    = "cpu: address %08x is not in the pipeline"
	ProgramExitFail  = "cpu: cannot place program exit at %08x: %v"
)

// Register returns the value of the register by number. See the registers
// package for the numbering. The PC register is the address of the most
// recently fetched instruction.
func (mc *CPU) Register(n int) (uint32, error) {
	v, ok := mc.regs.Get(n)
	if !ok {
		return 0, curated.Errorf(InvalidRegister, n)
	}
	return v, nil
}

// SetRegister sets the value of the register by number. Setting the PC
// register redirects the next fetch but does not affect the pipeline.
func (mc *CPU) SetRegister(n int, v uint32) error {
	if !mc.regs.Set(n, v) {
		return curated.Errorf(InvalidRegister, n)
	}
	return nil
}

// DebugRegister is like Register() except that the PC register is the address
// of the instruction in the execute slot. This is the view of the PC expected
// by a debugger.
func (mc *CPU) DebugRegister(n int) (uint32, error) {
	if n == registers.PC {
		return mc.execute.PC(), nil
	}
	return mc.Register(n)
}

// SetDebugRegister is like SetRegister() except that setting the PC register
// refills the pipeline: the instruction at the address is placed in the
// execute slot and the two instructions following it in the decode and fetch
// slots.
//
// Any data access in progress is abandoned. If the address is not mapped or is
// not aligned then an error is returned and the pipeline is unchanged.
func (mc *CPU) SetDebugRegister(n int, v uint32) error {
	if n != registers.PC {
		return mc.SetRegister(n, v)
	}

	ex, err := mc.mem.Instruction(v)
	if err != nil {
		return curated.Errorf(PCRelocation, v, err)
	}
	de, err := mc.mem.Instruction(v + 4)
	if err != nil {
		return curated.Errorf(PCRelocation, v, err)
	}
	fe, err := mc.mem.Instruction(v + 8)
	if err != nil {
		return curated.Errorf(PCRelocation, v, err)
	}

	mc.mem.ResetAccess()
	mc.abandon()
	instructions.Abandon(ex)
	instructions.Abandon(de)
	instructions.Abandon(fe)
	mc.execute = ex
	mc.decode = de
	mc.fetch = fe
	mc.regs.PC = v + 8
	mc.regs.NextPC = v + 12

	return nil
}

// Status is a summary of the pipeline control state.
type Status struct {
	NextPC  uint32
	Imm     uint32
	ImmFlag bool

	// MSR flags
	ExceptionInProgress bool
	BreakInProgress     bool
	InterruptEnable     bool
}

// Status returns the current pipeline control state.
func (mc *CPU) Status() Status {
	return Status{
		NextPC:              mc.regs.NextPC,
		Imm:                 mc.regs.Imm,
		ImmFlag:             mc.regs.ImmFlag,
		ExceptionInProgress: mc.regs.MSR.Is(registers.ExceptionInProgress),
		BreakInProgress:     mc.regs.MSR.Is(registers.BreakInProgress),
		InterruptEnable:     mc.regs.MSR.Is(registers.InterruptEnable),
	}
}
