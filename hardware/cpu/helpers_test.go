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

package cpu_test

import (
	"testing"

	"github.com/fireworks-sim/fireworks/hardware/cpu"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/memory"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
	"github.com/fireworks-sim/fireworks/test"
)

// the scripted instruction set used to test the pipeline independently of any
// real instruction set. the top byte of the word is the operation and the
// remaining bits are the argument
const (
	opNop   = 0x01
	opDelay = 0x02 // branch with delay slot to argument
	opJump  = 0x03 // branch to argument
	opStall = 0x04 // stall for argument cycles
	opDiv   = 0x05 // divide by zero
	opStop  = 0x06
	opLoad  = 0x07 // load word at argument into r3
	opImm   = 0x08 // imm prefix
)

func word(op uint32, arg uint32) uint32 {
	return op<<24 | (arg & 0xffffff)
}

type scripted struct {
	pc     uint32
	word   uint32
	cycles int
}

func (ins *scripted) Step(_ instructions.Stage, core instructions.Core) execution.Outcome {
	arg := ins.word & 0xffffff
	regs := core.Registers()

	switch ins.word >> 24 {
	case opNop:
		regs.ClearIMM()
		return execution.Normal
	case opDelay:
		regs.PC = arg
		return execution.DelaySlot
	case opJump:
		regs.PC = arg
		return execution.JumpTaken
	case opStall:
		if ins.cycles < int(arg) {
			ins.cycles++
			return execution.Stall
		}
		ins.cycles = 0
		return execution.Normal
	case opDiv:
		return execution.DivideByZero
	case opStop:
		return execution.Stop
	case opLoad:
		v, st := core.DataBus().ReadWord(arg)
		switch st {
		case bus.Busy:
			return execution.MemAccessInProgress
		case bus.Ready:
			regs.SetGPR(3, v)
			return execution.Normal
		case bus.Unaligned:
			return execution.MemUnaligned
		}
		return execution.MemUnmapped
	case opImm:
		regs.SetIMM(uint16(arg))
		return execution.Normal
	}
	return execution.Illegal
}

func (ins *scripted) PC() uint32 {
	return ins.pc
}

func (ins *scripted) String() string {
	return "scripted"
}

type scriptDecoder struct{}

func (scriptDecoder) Decode(address uint32, w uint32) instructions.Instruction {
	return &scripted{pc: address, word: w}
}

func (scriptDecoder) Illegal(address uint32) instructions.Instruction {
	return &instructions.Illegal{Address: address}
}

func (scriptDecoder) Unmapped(address uint32) instructions.Instruction {
	return &instructions.Unmapped{Address: address}
}

// newCPU creates a CPU with memory in the range [0x0, 0xfff]. The read
// latency of memory is given by the latency argument.
func newCPU(t *testing.T, latency int) (*cpu.CPU, *memory.Memory) {
	t.Helper()
	m := memorymap.NewMap(0x0, 0xfff)
	m.LMB.ReadLatency = latency
	mem, err := memory.NewMemory(m, scriptDecoder{})
	test.DemandSuccess(t, err)
	return cpu.NewCPU(nil, mem, nil), mem
}

// load words into memory at origin
func load(t *testing.T, mem *memory.Memory, origin uint32, words ...uint32) {
	t.Helper()
	for i, w := range words {
		test.DemandSuccess(t, mem.PokeWord(origin+uint32(i*4), w))
	}
}

// nops fills memory in the range with nop instructions
func nops(t *testing.T, mem *memory.Memory, begin uint32, end uint32) {
	t.Helper()
	for a := begin; a <= end; a += 4 {
		test.DemandSuccess(t, mem.PokeWord(a, word(opNop, 0)))
	}
}

// cycle the CPU n times, expecting a normal status for every cycle
func cycle(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandEquality(t, mc.Cycle(false), execution.RunNormal, i)
	}
}

// expectPipeline checks the address of each pipeline slot. an address of -1
// means the slot should be empty
func expectPipeline(t *testing.T, mc *cpu.CPU, execute int, decode int, fetch int) {
	t.Helper()
	for _, s := range []struct {
		stage   instructions.Stage
		address int
	}{
		{stage: instructions.ExecuteStage, address: execute},
		{stage: instructions.DecodeStage, address: decode},
		{stage: instructions.FetchStage, address: fetch},
	} {
		ins := mc.StageInstruction(s.stage)
		if s.address == -1 {
			test.ExpectSuccess(t, instructions.IsEmpty(ins), s.stage)
		} else {
			test.ExpectFailure(t, instructions.IsEmpty(ins), s.stage)
			test.ExpectEquality(t, ins.PC(), uint32(s.address), s.stage)
		}
	}
}
