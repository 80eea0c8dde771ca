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

package instructions_test

import (
	"testing"

	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/test"
)

type mockCore struct {
	regs *registers.File
}

func (c *mockCore) Registers() *registers.File {
	return c.regs
}

func (c *mockCore) DataBus() bus.DataBus {
	return nil
}

// nop is a decoded instruction that does nothing
type nop struct {
	pc uint32
}

func (ins *nop) Step(_ instructions.Stage, _ instructions.Core) execution.Outcome {
	return execution.Normal
}

func (ins *nop) PC() uint32 {
	return ins.pc
}

func (ins *nop) String() string {
	return "nop"
}

func TestMarkers(t *testing.T) {
	core := &mockCore{regs: registers.NewFile(nil)}

	test.ExpectEquality(t, instructions.Bubble.Step(instructions.ExecuteStage, core), execution.Empty)
	test.ExpectEquality(t, instructions.Bubble.PC(), 0)
	test.ExpectSuccess(t, instructions.IsEmpty(instructions.Bubble))
	test.ExpectSuccess(t, instructions.IsEmpty(nil))

	ill := &instructions.Illegal{Address: 0x200}
	test.ExpectEquality(t, ill.Step(instructions.ExecuteStage, core), execution.Illegal)
	test.ExpectEquality(t, ill.PC(), 0x200)
	test.ExpectEquality(t, instructions.KindOf(ill), instructions.KindIllegal)

	unm := &instructions.Unmapped{Address: 0x2000}
	test.ExpectEquality(t, unm.Step(instructions.ExecuteStage, core), execution.UnmappedFetch)
	test.ExpectEquality(t, unm.PC(), 0x2000)
	test.ExpectEquality(t, instructions.KindOf(unm), instructions.KindUnmapped)

	test.ExpectEquality(t, instructions.KindOf(&nop{}), instructions.KindOpcode)
	test.ExpectFailure(t, instructions.IsMarker(&nop{}))
}

func TestProgramExit(t *testing.T) {
	core := &mockCore{regs: registers.NewFile(nil)}

	n := &nop{pc: 0x40}
	ex := &instructions.ProgramExit{Wrapped: n}
	test.ExpectEquality(t, ex.Step(instructions.ExecuteStage, core), execution.Stop)
	test.ExpectEquality(t, ex.PC(), 0x40)
	test.ExpectEquality(t, ex.String(), "nop")
	test.ExpectEquality(t, instructions.Disassemble(ex), "nop")
	test.ExpectEquality(t, instructions.KindOf(ex), instructions.KindProgramExit)
}

func TestBreakpoint(t *testing.T) {
	core := &mockCore{regs: registers.NewFile(nil)}

	n := &nop{pc: 0x40}
	bp := &instructions.Breakpoint{Wrapped: n}
	test.ExpectEquality(t, bp.Step(instructions.ExecuteStage, core), execution.Breakpoint)
	test.ExpectEquality(t, core.regs.GetGPR(16), 0x40)
	test.ExpectEquality(t, bp.PC(), 0x40)
	test.ExpectSuccess(t, instructions.IsBreakpoint(bp))
	test.ExpectEquality[instructions.Instruction](t, bp.Unwrap(), n)
}

func TestVector(t *testing.T) {
	core := &mockCore{regs: registers.NewFile(nil)}
	core.regs.PC = 0x1000

	test.ExpectEquality(t, instructions.InterruptVector.Step(instructions.ExecuteStage, core), execution.JumpTaken)
	test.ExpectEquality(t, core.regs.PC, 0x10)
	test.ExpectEquality(t, instructions.KindOf(instructions.InterruptVector), instructions.KindVector)
	test.ExpectEquality(t, instructions.Disassemble(instructions.InterruptVector), "brai    0x10")
}

// stalling counts the cycles it has spent in the execute slot
type stalling struct {
	nop
	cycles int
}

func (ins *stalling) Step(_ instructions.Stage, _ instructions.Core) execution.Outcome {
	ins.cycles++
	return execution.Stall
}

func (ins *stalling) Abandon() {
	ins.cycles = 0
}

func TestAbandon(t *testing.T) {
	core := &mockCore{regs: registers.NewFile(nil)}

	ins := &stalling{nop: nop{pc: 0x40}}
	ins.Step(instructions.ExecuteStage, core)
	ins.Step(instructions.ExecuteStage, core)
	test.ExpectEquality(t, ins.cycles, 2)
	instructions.Abandon(ins)
	test.ExpectEquality(t, ins.cycles, 0)

	// abandoning a marker abandons the instruction it wraps
	ins.Step(instructions.ExecuteStage, core)
	instructions.Abandon(&instructions.ProgramExit{Wrapped: &instructions.Breakpoint{Wrapped: ins}})
	test.ExpectEquality(t, ins.cycles, 0)

	// instructions without state are unaffected
	instructions.Abandon(instructions.Bubble)
	instructions.Abandon(&nop{pc: 0x44})
}
