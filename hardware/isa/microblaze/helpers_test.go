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
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/isa/microblaze"
	"github.com/fireworks-sim/fireworks/hardware/memory"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
	"github.com/fireworks-sim/fireworks/test"
)

// encode a type A instruction word
func typeA(op uint32, rd uint32, ra uint32, rb uint32, fn uint32) uint32 {
	return op<<26 | rd<<21 | ra<<16 | rb<<11 | fn&0x7ff
}

// encode a type B instruction word
func typeB(op uint32, rd uint32, ra uint32, imm int) uint32 {
	return op<<26 | rd<<21 | ra<<16 | uint32(imm)&0xffff
}

// or r0, r0, r0
var nop = typeA(0x20, 0, 0, 0, 0)

func addik(rd uint32, ra uint32, v int) uint32    { return typeB(0x0c, rd, ra, v) }
func addk(rd uint32, ra uint32, rb uint32) uint32 { return typeA(0x04, rd, ra, rb, 0) }
func prefix(v int) uint32                         { return typeB(0x2c, 0, 0, v) }

// core is a processor without a pipeline. instructions are stepped directly
type core struct {
	regs *registers.File
	db   bus.DataBus
}

func (c *core) Registers() *registers.File {
	return c.regs
}

func (c *core) DataBus() bus.DataBus {
	return c.db
}

// newCore creates a core with memory in the range [0x0, 0xfff]. addresses
// outside that range are unmapped, with a penalty of two cycles
func newCore(t *testing.T, readLatency int, writeLatency int) (*core, *memory.Memory) {
	t.Helper()
	m := memorymap.NewMap(0x0, 0xfff)
	m.LMB.ReadLatency = readLatency
	m.LMB.WriteLatency = writeLatency
	m.UnmappedPenalty = 2
	mem, err := memory.NewMemory(m, microblaze.NewDecoder(microblaze.Latencies{}))
	test.DemandSuccess(t, err)
	return &core{regs: registers.NewFile([]uint32{0xabc}), db: mem}, mem
}

// result of running an instruction to completion
type result struct {
	outcome execution.Outcome

	// number of calls to Step()
	steps int
}

// run the instruction word at pc until it produces an outcome other than Stall
// or MemAccessInProgress
func run(t *testing.T, c *core, dec *microblaze.Decoder, pc uint32, word uint32) result {
	t.Helper()
	return runInstruction(t, c, dec.Decode(pc, word))
}

func runInstruction(t *testing.T, c *core, ins instructions.Instruction) result {
	t.Helper()
	var r result
	for r.steps < 100 {
		r.steps++
		r.outcome = ins.Step(instructions.ExecuteStage, c)
		if r.outcome != execution.Stall && r.outcome != execution.MemAccessInProgress {
			return r
		}
	}
	t.Fatalf("instruction at %08x did not complete", ins.PC())
	return r
}
