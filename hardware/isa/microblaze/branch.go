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

package microblaze

import (
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
)

// the variants of the unconditional branch. the values are those of the rA
// field of the instruction word.
const (
	branchLink     = 0x04
	branchAbsolute = 0x08
	branchDelay    = 0x10
)

// the rA field value of the brk and brki instructions
const branchBreak = branchAbsolute | branchLink

// the result of a branch depends on whether it has a delay slot.
func redirect(delay bool) execution.Outcome {
	if delay {
		return execution.DelaySlot
	}
	return execution.JumpTaken
}

// branch returns the effect of an unconditional branch. the variant is the rA
// field of the instruction word. the target is rB or the immediate value,
// relative to the address of the branch unless the absolute flag is set.
func branch(variant int) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		target := ins.operand(regs)

		if variant&branchLink == branchLink {
			regs.SetGPR(ins.rd, ins.pc)
		}
		if variant == branchBreak {
			regs.MSR |= registers.BreakInProgress
		}

		if variant&branchAbsolute == branchAbsolute {
			regs.PC = target
		} else {
			regs.PC = ins.pc + target
		}

		return redirect(variant&branchDelay == branchDelay)
	}
}

// the conditions of the conditional branches, in the order of the low three
// bits of the rD field.
var conditions = []struct {
	name string
	test func(v int32) bool
}{
	{"eq", func(v int32) bool { return v == 0 }},
	{"ne", func(v int32) bool { return v != 0 }},
	{"lt", func(v int32) bool { return v < 0 }},
	{"le", func(v int32) bool { return v <= 0 }},
	{"gt", func(v int32) bool { return v > 0 }},
	{"ge", func(v int32) bool { return v >= 0 }},
}

// conditional returns the effect of a conditional branch. the target is
// relative to the address of the branch. the immediate operand is consumed
// whether or not the branch is taken.
func conditional(delay bool) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		offset := ins.operand(regs)

		if !ins.def.condition(int32(regs.GetGPR(ins.ra))) {
			return execution.Normal
		}

		regs.PC = ins.pc + offset
		return redirect(delay)
	}
}

// the variants of the return instruction. the values are those of the rD
// field of the instruction word.
const (
	returnSubroutine = 0x10
	returnInterrupt  = 0x11
	returnBreak      = 0x12
	returnException  = 0x14
)

// ret returns the effect of a return instruction. all return instructions
// have a delay slot.
func ret(variant int) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		regs.PC = regs.GetGPR(ins.ra) + ins.operand(regs)

		switch variant {
		case returnInterrupt:
			regs.MSR |= registers.InterruptEnable
		case returnBreak:
			regs.MSR &^= registers.BreakInProgress
		case returnException:
			regs.MSR |= registers.ExceptionEnable
			regs.MSR &^= registers.ExceptionInProgress
		}

		return execution.DelaySlot
	}
}
