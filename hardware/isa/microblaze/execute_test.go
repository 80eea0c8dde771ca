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

package microblaze_test

import (
	"testing"

	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/isa/microblaze"
	"github.com/fireworks-sim/fireworks/test"
)

func TestArithmetic(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	// add sets the carry flag
	c.regs.SetGPR(2, 0xffffffff)
	c.regs.SetGPR(3, 0x00000001)
	test.ExpectEquality(t, run(t, c, dec, 0, typeA(0x00, 1, 2, 3, 0)).outcome, execution.Normal)
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0))
	test.ExpectSuccess(t, c.regs.MSR.Is(registers.Carry|registers.CarryCopy))

	// addc uses the carry flag
	c.regs.SetGPR(2, 0x10)
	c.regs.SetGPR(3, 0x20)
	run(t, c, dec, 0, typeA(0x02, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x31))
	test.ExpectFailure(t, c.regs.MSR.Carry())

	// addk keeps the carry flag
	c.regs.MSR.SetCarry(true)
	run(t, c, dec, 0, addk(1, 2, 3))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x30))
	test.ExpectSuccess(t, c.regs.MSR.Carry())

	// rsub subtracts rA from rB. the carry flag is set when there is no
	// borrow
	c.regs.SetGPR(2, 1)
	c.regs.SetGPR(3, 5)
	run(t, c, dec, 0, typeA(0x01, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(4))
	test.ExpectSuccess(t, c.regs.MSR.Carry())

	run(t, c, dec, 0, typeA(0x01, 1, 3, 2, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xfffffffc))
	test.ExpectFailure(t, c.regs.MSR.Carry())

	// rsubik with a sign extended immediate
	c.regs.SetGPR(2, 3)
	run(t, c, dec, 0, typeB(0x0d, 1, 2, 10))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(7))
	run(t, c, dec, 0, addik(1, 2, -4))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xffffffff))

	// writes to r0 are ignored
	run(t, c, dec, 0, addik(0, 2, 1))
	test.ExpectEquality(t, c.regs.GetGPR(0), uint32(0))
}

func TestImmPrefix(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	run(t, c, dec, 0, prefix(0x1234))
	test.ExpectSuccess(t, c.regs.ImmFlag)
	run(t, c, dec, 4, addik(1, 0, 0x8678))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x12348678))
	test.ExpectFailure(t, c.regs.ImmFlag)

	// without the prefix the immediate is sign extended
	run(t, c, dec, 8, addik(1, 0, 0x8678))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xffff8678))

	// instructions without an immediate operand do not consume the prefix
	run(t, c, dec, 0, prefix(0x1))
	run(t, c, dec, 4, addk(2, 0, 0))
	test.ExpectSuccess(t, c.regs.ImmFlag)
	run(t, c, dec, 8, typeB(0x28, 2, 0, 0x2))
	test.ExpectEquality(t, c.regs.GetGPR(2), uint32(0x00010002))
}

func TestCompare(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	// rA greater than rB sets the most significant bit
	c.regs.SetGPR(2, 5)
	c.regs.SetGPR(3, 3)
	run(t, c, dec, 0, typeA(0x05, 1, 2, 3, 1))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xfffffffe))

	c.regs.SetGPR(2, 3)
	c.regs.SetGPR(3, 5)
	run(t, c, dec, 0, typeA(0x05, 1, 2, 3, 1))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(2))

	// signed and unsigned comparisons differ for negative values
	c.regs.SetGPR(2, 0xffffffff)
	c.regs.SetGPR(3, 1)
	run(t, c, dec, 0, typeA(0x05, 1, 2, 3, 1))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(2))
	run(t, c, dec, 0, typeA(0x05, 1, 2, 3, 3))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x80000002))
}

func TestMultiplyDivide(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	c.regs.SetGPR(2, 0xffffffff)
	c.regs.SetGPR(3, 2)
	run(t, c, dec, 0, typeA(0x10, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xfffffffe))
	run(t, c, dec, 0, typeA(0x10, 1, 2, 3, 1))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xffffffff))
	run(t, c, dec, 0, typeA(0x10, 1, 2, 3, 3))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(1))

	// idiv divides rB by rA
	c.regs.SetGPR(2, 0xfffffffe)
	c.regs.SetGPR(3, 7)
	test.ExpectEquality(t, run(t, c, dec, 0, typeA(0x12, 1, 2, 3, 0)).outcome, execution.Normal)
	test.ExpectEquality(t, int32(c.regs.GetGPR(1)), int32(-3))
	run(t, c, dec, 0, typeA(0x12, 1, 2, 3, 2))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0))

	// division by zero
	c.regs.SetGPR(1, 0xff)
	c.regs.SetGPR(2, 0)
	test.ExpectEquality(t, run(t, c, dec, 0, typeA(0x12, 1, 2, 3, 0)).outcome, execution.DivideByZero)
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0))
}

func TestShifts(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	c.regs.SetGPR(2, 0x80000001)
	run(t, c, dec, 0, typeA(0x24, 1, 2, 0, 0x01))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xc0000000))
	test.ExpectSuccess(t, c.regs.MSR.Carry())

	c.regs.SetGPR(2, 0x00000002)
	run(t, c, dec, 0, typeA(0x24, 1, 2, 0, 0x21))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x80000001))
	test.ExpectFailure(t, c.regs.MSR.Carry())

	c.regs.SetGPR(2, 0x80000000)
	run(t, c, dec, 0, typeA(0x24, 1, 2, 0, 0x41))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x40000000))

	c.regs.SetGPR(2, 0x000080f0)
	run(t, c, dec, 0, typeA(0x24, 1, 2, 0, 0x60))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xfffffff0))
	run(t, c, dec, 0, typeA(0x24, 1, 2, 0, 0x61))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xffff80f0))

	// barrel shifts
	c.regs.SetGPR(2, 0x80000000)
	c.regs.SetGPR(3, 4)
	run(t, c, dec, 0, typeA(0x11, 1, 2, 3, 0x200))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xf8000000))
	run(t, c, dec, 0, typeA(0x11, 1, 2, 3, 0x000))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x08000000))
	run(t, c, dec, 0, typeB(0x19, 1, 3, 0x400|3))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x20))
}

func TestLogical(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	c.regs.SetGPR(2, 0xff00ff00)
	c.regs.SetGPR(3, 0x0ff00ff0)
	run(t, c, dec, 0, typeA(0x20, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xfff0fff0))
	run(t, c, dec, 0, typeA(0x21, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x0f000f00))
	run(t, c, dec, 0, typeA(0x22, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xf0f0f0f0))
	run(t, c, dec, 0, typeA(0x23, 1, 2, 3, 0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0xf000f000))
	run(t, c, dec, 0, typeB(0x29, 1, 2, 0x0ff0))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0x00000f00))

	// pattern compare
	c.regs.SetGPR(2, 0x11223344)
	c.regs.SetGPR(3, 0x55663344)
	run(t, c, dec, 0, typeA(0x20, 1, 2, 3, 0x400))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(3))
	run(t, c, dec, 0, typeA(0x22, 1, 2, 3, 0x400))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(0))
	run(t, c, dec, 0, typeA(0x23, 1, 2, 3, 0x400))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(1))
}

func TestSpecialRegisters(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	// msrset returns the previous value of the MSR
	c.regs.MSR = registers.InterruptEnable
	run(t, c, dec, 0, typeB(0x25, 1, 0, int(registers.Carry)))
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(registers.InterruptEnable))
	test.ExpectSuccess(t, c.regs.MSR.Is(registers.InterruptEnable|registers.Carry|registers.CarryCopy))

	run(t, c, dec, 0, typeB(0x25, 1, 1, int(registers.Carry|registers.InterruptEnable)))
	test.ExpectEquality(t, c.regs.MSR, registers.MachineStatus(0))

	// mfs of the PC is the address of the mfs instruction
	run(t, c, dec, 0x40, typeB(0x25, 3, 0, 0x8000))
	test.ExpectEquality(t, c.regs.GetGPR(3), uint32(0x40))

	run(t, c, dec, 0x40, typeB(0x25, 3, 0, 0xa000))
	test.ExpectEquality(t, c.regs.GetGPR(3), uint32(0xabc))

	// there is only one PVR
	test.ExpectEquality(t, run(t, c, dec, 0x40, typeB(0x25, 3, 0, 0xa001)).outcome, execution.Illegal)

	// mts to the MSR
	c.regs.SetGPR(4, uint32(registers.ExceptionEnable|registers.Carry))
	run(t, c, dec, 0, typeB(0x25, 0, 4, 0xc001))
	test.ExpectSuccess(t, c.regs.MSR.Is(registers.ExceptionEnable|registers.Carry|registers.CarryCopy))

	// the EAR can not be written
	test.ExpectEquality(t, run(t, c, dec, 0, typeB(0x25, 0, 4, 0xc003)).outcome, execution.Illegal)
}

func TestLatency(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	lat := microblaze.DefaultLatencies()
	lat.Execute["beqi"] = 2
	lat.Taken["beqi"] = 4
	dec := microblaze.NewDecoder(lat)

	c.regs.SetGPR(2, 2)
	c.regs.SetGPR(3, 4)
	div := dec.Decode(0, typeA(0x12, 1, 2, 3, 0))
	r := runInstruction(t, c, div)
	test.ExpectEquality(t, r.steps, 32)
	test.ExpectEquality(t, r.outcome, execution.Normal)
	test.ExpectEquality(t, c.regs.GetGPR(1), uint32(2))

	// the cycle count starts again if the instruction is executed again
	r = runInstruction(t, c, div)
	test.ExpectEquality(t, r.steps, 32)

	// instructions not in the table take one cycle
	r = run(t, c, dec, 0, addk(1, 2, 3))
	test.ExpectEquality(t, r.steps, 1)

	// conditional branch not taken
	c.regs.SetGPR(5, 1)
	r = run(t, c, dec, 0x100, typeB(0x2f, 0x00, 5, 0x20))
	test.ExpectEquality(t, r.steps, 2)
	test.ExpectEquality(t, r.outcome, execution.Normal)

	// conditional branch taken
	c.regs.SetGPR(5, 0)
	r = run(t, c, dec, 0x100, typeB(0x2f, 0x00, 5, 0x20))
	test.ExpectEquality(t, r.steps, 4)
	test.ExpectEquality(t, r.outcome, execution.JumpTaken)
	test.ExpectEquality(t, c.regs.PC, uint32(0x120))
}

func TestBranches(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	// relative
	r := run(t, c, dec, 0x100, typeB(0x2e, 0, 0x00, -8))
	test.ExpectEquality(t, r.outcome, execution.JumpTaken)
	test.ExpectEquality(t, c.regs.PC, uint32(0xf8))

	// absolute with delay slot and link
	r = run(t, c, dec, 0x100, typeB(0x2e, 15, 0x1c, 0x200))
	test.ExpectEquality(t, r.outcome, execution.DelaySlot)
	test.ExpectEquality(t, c.regs.PC, uint32(0x200))
	test.ExpectEquality(t, c.regs.GetGPR(15), uint32(0x100))

	// register target
	c.regs.SetGPR(3, 0x40)
	r = run(t, c, dec, 0x100, typeA(0x26, 0, 0x10, 3, 0))
	test.ExpectEquality(t, r.outcome, execution.DelaySlot)
	test.ExpectEquality(t, c.regs.PC, uint32(0x140))

	// brki sets break in progress
	r = run(t, c, dec, 0x100, typeB(0x2e, 16, 0x0c, 0x18))
	test.ExpectEquality(t, r.outcome, execution.JumpTaken)
	test.ExpectEquality(t, c.regs.PC, uint32(0x18))
	test.ExpectEquality(t, c.regs.GetGPR(16), uint32(0x100))
	test.ExpectSuccess(t, c.regs.MSR.Is(registers.BreakInProgress))

	// conditional with register offset
	c.regs.SetGPR(4, 0xfffffff0)
	c.regs.SetGPR(5, 0xffffffff)
	r = run(t, c, dec, 0x100, typeA(0x27, 0x12, 5, 4, 0))
	test.ExpectEquality(t, r.outcome, execution.DelaySlot)
	test.ExpectEquality(t, c.regs.PC, uint32(0xf0))

	// a branch that is not taken still consumes the imm prefix
	c.regs.PC = 0
	run(t, c, dec, 0xfc, prefix(0x1))
	r = run(t, c, dec, 0x100, typeB(0x2f, 0x04, 5, 0x20))
	test.ExpectEquality(t, r.outcome, execution.Normal)
	test.ExpectEquality(t, c.regs.PC, uint32(0))
	test.ExpectFailure(t, c.regs.ImmFlag)
}

func TestReturns(t *testing.T) {
	c, _ := newCore(t, 1, 1)
	dec := microblaze.NewDecoder(microblaze.Latencies{})

	c.regs.SetGPR(15, 0x200)
	r := run(t, c, dec, 0x100, typeB(0x2d, 0x10, 15, 8))
	test.ExpectEquality(t, r.outcome, execution.DelaySlot)
	test.ExpectEquality(t, c.regs.PC, uint32(0x208))

	run(t, c, dec, 0x100, typeB(0x2d, 0x11, 15, 0))
	test.ExpectSuccess(t, c.regs.MSR.Is(registers.InterruptEnable))

	c.regs.MSR |= registers.BreakInProgress
	run(t, c, dec, 0x100, typeB(0x2d, 0x12, 15, 0))
	test.ExpectFailure(t, c.regs.MSR.Is(registers.BreakInProgress))

	c.regs.MSR = registers.ExceptionInProgress
	run(t, c, dec, 0x100, typeB(0x2d, 0x14, 15, 0))
	test.ExpectEquality(t, c.regs.MSR, registers.ExceptionEnable)
}
