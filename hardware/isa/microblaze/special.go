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

// the imm instruction. the immediate value becomes the upper half of the
// immediate operand of the next instruction.
func prefix(ins *opcode, core instructions.Core) execution.Outcome {
	core.Registers().SetIMM(ins.imm)
	return execution.Normal
}

// move from special register. an invalid selector is an illegal instruction.
func moveFromSpecial(ins *opcode, core instructions.Core) execution.Outcome {
	regs := core.Registers()
	v, ok := regs.Special(uint32(ins.imm&0x3fff), ins.pc)
	if !ok {
		return execution.Illegal
	}
	regs.SetGPR(ins.rd, v)
	return execution.Normal
}

// move to special register. only the MSR and FSR can be written.
func moveToSpecial(ins *opcode, core instructions.Core) execution.Outcome {
	regs := core.Registers()
	if !regs.SetSpecial(uint32(ins.imm&0x7), regs.GetGPR(ins.ra)) {
		return execution.Illegal
	}
	syncCarry(regs)
	return execution.Normal
}

// msrset and msrclr. the previous value of the MSR is written to rD.
func modifyStatus(set bool) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		regs.SetGPR(ins.rd, uint32(regs.MSR))

		bits := registers.MachineStatus(ins.imm & 0x3fff)
		if set {
			regs.MSR |= bits
		} else {
			regs.MSR &^= bits
		}
		syncCarry(regs)
		return execution.Normal
	}
}

// wdc and wic. there are no caches.
func cacheMaintenance(_ *opcode, _ instructions.Core) execution.Outcome {
	return execution.Normal
}
