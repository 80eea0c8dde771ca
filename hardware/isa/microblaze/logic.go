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
)

// logical returns the effect of a bitwise instruction. the second operand is
// rB or the immediate value.
func logical(op func(a uint32, b uint32) uint32) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		regs.SetGPR(ins.rd, op(regs.GetGPR(ins.ra), ins.operand(regs)))
		return execution.Normal
	}
}

func or(a uint32, b uint32) uint32 {
	return a | b
}

func and(a uint32, b uint32) uint32 {
	return a & b
}

func xor(a uint32, b uint32) uint32 {
	return a ^ b
}

func andNot(a uint32, b uint32) uint32 {
	return a &^ b
}

// pattern compare byte find. the result is the position of the first byte,
// counting from one at the most significant byte, that is the same in rA and
// rB. zero if there is no such byte.
func patternByteFind(a uint32, b uint32) uint32 {
	for i := uint32(0); i < 4; i++ {
		s := 24 - i*8
		if (a>>s)&0xff == (b>>s)&0xff {
			return i + 1
		}
	}
	return 0
}

func patternEqual(a uint32, b uint32) uint32 {
	if a == b {
		return 1
	}
	return 0
}

func patternNotEqual(a uint32, b uint32) uint32 {
	if a != b {
		return 1
	}
	return 0
}
