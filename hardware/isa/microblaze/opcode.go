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
	"fmt"

	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
)

// the function that performs the effect of an instruction. it is called
// once the instruction has spent its latency in the execute slot. load and
// store instructions are called on every cycle until the access completes.
type effect func(ins *opcode, core instructions.Core) execution.Outcome

// the operand layout of an instruction. used for disassembly.
type format int

const (
	formatDAB       format = iota // rD, rA, rB
	formatDAI                     // rD, rA, imm
	formatDAImm5                  // rD, rA, imm (5bit shift amount)
	formatDA                      // rD, rA
	formatAB                      // rA, rB
	formatAI                      // rA, imm
	formatB                       // rB
	formatDB                      // rD, rB
	formatI                       // imm
	formatDI                      // rD, imm
	formatAbsolute                // imm as an address
	formatDAbsolute               // rD, imm as an address
	formatMfs                     // rD, special
	formatMts                     // special, rA
	formatMsr                     // rD, imm14
)

// definition of an instruction shared by every decoded instance of it.
type definition struct {
	mnemonic string
	format   format

	// the instruction uses the 16bit immediate field as an operand. the
	// operand is combined with an imm prefix if there is one
	immediate bool

	// for conditional branches, tests the value of rA
	condition func(v int32) bool

	effect effect
}

// opcode is a decoded instruction. it implements the Instruction interface
// of the instructions package.
type opcode struct {
	def  *definition
	pc   uint32
	word uint32

	rd  int
	ra  int
	rb  int
	imm uint16

	latency int
	taken   int

	// number of cycles spent in the execute slot. starts at one
	cycles int

	// the effective address of the load or store in progress
	address   uint32
	accessing bool
}

func newOpcode(def *definition, lat Latencies, pc uint32, word uint32) *opcode {
	ins := &opcode{
		def:     def,
		pc:      pc,
		word:    word,
		rd:      int((word >> 21) & 0x1f),
		ra:      int((word >> 16) & 0x1f),
		rb:      int((word >> 11) & 0x1f),
		imm:     uint16(word),
		latency: lat.execute(def.mnemonic),
		cycles:  1,
	}
	if def.condition != nil {
		ins.taken = lat.taken(def.mnemonic)
	}
	return ins
}

// Step implements the instructions.Instruction interface.
func (ins *opcode) Step(_ instructions.Stage, core instructions.Core) execution.Outcome {
	latency := ins.latency
	if ins.def.condition != nil && ins.def.condition(int32(core.Registers().GetGPR(ins.ra))) {
		latency = ins.taken
	}

	if ins.cycles < latency {
		ins.cycles++
		return execution.Stall
	}

	outcome := ins.def.effect(ins, core)
	if outcome != execution.MemAccessInProgress {
		ins.cycles = 1
	}
	return outcome
}

// Abandon implements the instructions.Abandoner interface.
func (ins *opcode) Abandon() {
	ins.cycles = 1
	ins.accessing = false
}

// PC implements the instructions.Instruction interface.
func (ins *opcode) PC() uint32 {
	return ins.pc
}

// String implements the instructions.Instruction interface.
func (ins *opcode) String() string {
	return ins.def.mnemonic
}

// operand returns the second source operand. this is either rB or the
// immediate value, depending on the instruction.
func (ins *opcode) operand(regs *registers.File) uint32 {
	if ins.def.immediate {
		return regs.SignExtendIMM(ins.imm)
	}
	return regs.GetGPR(ins.rb)
}

// Disassemble implements the instructions.Disassembler interface.
func (ins *opcode) Disassemble() string {
	return fmt.Sprintf("%-8s%s", ins.def.mnemonic, ins.operands())
}

func (ins *opcode) operands() string {
	simm := int16(ins.imm)

	switch ins.def.format {
	case formatDAB:
		return fmt.Sprintf("r%d, r%d, r%d", ins.rd, ins.ra, ins.rb)
	case formatDAI:
		return fmt.Sprintf("r%d, r%d, %d", ins.rd, ins.ra, simm)
	case formatDAImm5:
		return fmt.Sprintf("r%d, r%d, %d", ins.rd, ins.ra, ins.imm&0x1f)
	case formatDA:
		return fmt.Sprintf("r%d, r%d", ins.rd, ins.ra)
	case formatAB:
		return fmt.Sprintf("r%d, r%d", ins.ra, ins.rb)
	case formatAI:
		return fmt.Sprintf("r%d, %d", ins.ra, simm)
	case formatB:
		return fmt.Sprintf("r%d", ins.rb)
	case formatDB:
		return fmt.Sprintf("r%d, r%d", ins.rd, ins.rb)
	case formatI:
		return fmt.Sprintf("%d", simm)
	case formatDI:
		return fmt.Sprintf("r%d, %d", ins.rd, simm)
	case formatAbsolute:
		return fmt.Sprintf("0x%x", ins.imm)
	case formatDAbsolute:
		return fmt.Sprintf("r%d, 0x%x", ins.rd, ins.imm)
	case formatMfs:
		return fmt.Sprintf("r%d, %s", ins.rd, special(uint32(ins.imm&0x3fff)))
	case formatMts:
		return fmt.Sprintf("%s, r%d", special(uint32(ins.imm&0x7)), ins.ra)
	case formatMsr:
		return fmt.Sprintf("r%d, 0x%x", ins.rd, ins.imm&0x3fff)
	}
	return ""
}

// the assembler name of a special register selector.
func special(sel uint32) string {
	switch sel {
	case registers.SelectPC:
		return "rpc"
	case registers.SelectMSR:
		return "rmsr"
	case registers.SelectEAR:
		return "rear"
	case registers.SelectESR:
		return "resr"
	case registers.SelectFSR:
		return "rfsr"
	case registers.SelectBTR:
		return "rbtr"
	}
	if sel >= registers.SelectPVR0 {
		return fmt.Sprintf("rpvr%d", sel-registers.SelectPVR0)
	}
	return fmt.Sprintf("0x%x", sel)
}
