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

// the variants of the add and reverse subtract instructions are selected by
// the low three bits of the opcode.
const (
	arithSubtract = 0x01
	arithCarryIn  = 0x02
	arithKeep     = 0x04
)

// add returns the effect for the add/rsub instruction selected by variant.
//
// rsub subtracts rA from the second operand. the carry flag is the carry out
// of the addition unless the instruction is one of the "keep" variants.
func add(variant uint32) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()

		a := uint64(regs.GetGPR(ins.ra))
		b := uint64(ins.operand(regs))

		var c uint64
		if variant&arithSubtract == arithSubtract {
			a = uint64(^uint32(a))
			c = 1
		}
		if variant&arithCarryIn == arithCarryIn {
			c = 0
			if regs.MSR.Carry() {
				c = 1
			}
		}

		r := a + b + c
		regs.SetGPR(ins.rd, uint32(r))
		if variant&arithKeep != arithKeep {
			regs.MSR.SetCarry(r>>32 != 0)
		}
		return execution.Normal
	}
}

// compare rA with rB. the result is rB-rA with the most significant bit
// indicating whether rA is greater than rB.
func compare(unsigned bool) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		a := regs.GetGPR(ins.ra)
		b := regs.GetGPR(ins.rb)

		r := b - a
		var gt bool
		if unsigned {
			gt = a > b
		} else {
			gt = int32(a) > int32(b)
		}
		if gt {
			r |= 0x80000000
		} else {
			r &^= 0x80000000
		}
		regs.SetGPR(ins.rd, r)
		return execution.Normal
	}
}

// the part of the 64bit product kept by a multiply instruction.
type product int

const (
	productLow product = iota
	productHighSigned
	productHighUnsigned
)

func multiply(part product) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		a := regs.GetGPR(ins.ra)
		b := ins.operand(regs)

		var r uint32
		switch part {
		case productLow:
			r = a * b
		case productHighSigned:
			r = uint32(uint64(int64(int32(a))*int64(int32(b))) >> 32)
		case productHighUnsigned:
			r = uint32((uint64(a) * uint64(b)) >> 32)
		}
		regs.SetGPR(ins.rd, r)
		return execution.Normal
	}
}

// divide rB by rA. division by zero leaves zero in rD and reports the fault
// to the pipeline.
func divide(unsigned bool) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		a := regs.GetGPR(ins.ra)
		b := regs.GetGPR(ins.rb)

		if a == 0 {
			regs.SetGPR(ins.rd, 0)
			return execution.DivideByZero
		}

		if unsigned {
			regs.SetGPR(ins.rd, b/a)
		} else {
			// the most negative value divided by -1 leaves the most negative
			// value
			regs.SetGPR(ins.rd, uint32(int32(b)/int32(a)))
		}
		return execution.Normal
	}
}

// the direction of a barrel shift.
type barrel int

const (
	barrelRightLogical barrel = iota
	barrelRightArithmetic
	barrelLeft
)

func barrelShift(dir barrel) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		a := regs.GetGPR(ins.ra)

		var n uint32
		if ins.def.immediate {
			n = uint32(ins.imm & 0x1f)
		} else {
			n = regs.GetGPR(ins.rb) & 0x1f
		}

		var r uint32
		switch dir {
		case barrelRightLogical:
			r = a >> n
		case barrelRightArithmetic:
			r = uint32(int32(a) >> n)
		case barrelLeft:
			r = a << n
		}
		regs.SetGPR(ins.rd, r)
		return execution.Normal
	}
}

// the bit shifted into the most significant bit by a single bit shift.
type shiftIn int

const (
	shiftInSign shiftIn = iota
	shiftInCarry
	shiftInZero
)

// shift rA right by one. the carry flag receives the bit shifted out.
func shift(in shiftIn) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()
		a := regs.GetGPR(ins.ra)

		r := a >> 1
		switch in {
		case shiftInSign:
			r |= a & 0x80000000
		case shiftInCarry:
			if regs.MSR.Carry() {
				r |= 0x80000000
			}
		}

		regs.MSR.SetCarry(a&0x01 == 0x01)
		regs.SetGPR(ins.rd, r)
		return execution.Normal
	}
}

func signExtend8(ins *opcode, core instructions.Core) execution.Outcome {
	regs := core.Registers()
	regs.SetGPR(ins.rd, uint32(int32(int8(regs.GetGPR(ins.ra)))))
	return execution.Normal
}

func signExtend16(ins *opcode, core instructions.Core) execution.Outcome {
	regs := core.Registers()
	regs.SetGPR(ins.rd, uint32(int32(int16(regs.GetGPR(ins.ra)))))
	return execution.Normal
}

// keep the carry copy bit of the MSR in step with the carry bit after a
// direct write to the MSR.
func syncCarry(regs *registers.File) {
	regs.MSR.SetCarry(regs.MSR.Is(registers.Carry))
}
