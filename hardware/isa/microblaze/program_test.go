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

	"github.com/fireworks-sim/fireworks/hardware/cpu"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/isa/microblaze"
	"github.com/fireworks-sim/fireworks/hardware/memory"
	"github.com/fireworks-sim/fireworks/hardware/memory/memorymap"
	"github.com/fireworks-sim/fireworks/test"
)

// runProgram loads the program at address zero and runs it until the
// instruction at exit reaches the execute slot. returns the number of cycles
func runProgram(t *testing.T, mc *cpu.CPU, mem *memory.Memory, exit uint32, program ...uint32) int {
	t.Helper()
	for i, w := range program {
		test.DemandSuccess(t, mem.PokeWord(uint32(i*4), w))
	}
	test.DemandSuccess(t, mc.ProgramExit(exit))

	for c := 1; c < 10000; c++ {
		switch mc.Cycle(false) {
		case execution.RunStopped:
			return c
		case execution.RunBreakpoint:
			t.Fatalf("unexpected breakpoint")
		}
	}
	t.Fatalf("program did not stop")
	return 0
}

func newSystem(t *testing.T, lat microblaze.Latencies) (*cpu.CPU, *memory.Memory) {
	t.Helper()
	mem, err := memory.NewMemory(memorymap.NewMap(0x0, 0xfff), microblaze.NewDecoder(lat))
	test.DemandSuccess(t, err)
	return cpu.NewCPU([]uint32{0}, mem, nil), mem
}

func TestProgramLoop(t *testing.T) {
	mc, mem := newSystem(t, microblaze.Latencies{})

	runProgram(t, mc, mem, 0x1c,
		addik(3, 0, 5),           // 00
		addik(4, 0, 0),           // 04
		addk(4, 4, 3),            // 08 loop
		addik(3, 3, -1),          // 0c
		typeB(0x2f, 0x11, 3, -8), // 10 bneid r3, loop
		nop,                      // 14 delay slot
		typeB(0x3e, 4, 0, 0x100), // 18 swi r4, r0, 0x100
		nop,                      // 1c exit
	)

	v, err := mem.PeekWord(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(15))
}

func TestProgramSubroutine(t *testing.T) {
	mc, mem := newSystem(t, microblaze.Latencies{})

	runProgram(t, mc, mem, 0x0c,
		typeB(0x2e, 15, 0x14, 0x10), // 00 brlid r15, sub
		addik(5, 0, 1),              // 04 delay slot
		addik(5, 5, 0x10),           // 08 return address
		nop,                         // 0c exit
		addik(6, 0, 0x20),           // 10 sub
		typeB(0x2d, 0x10, 15, 8),    // 14 rtsd r15, 8
		addik(6, 6, 1),              // 18 delay slot
	)

	test.ExpectEquality(t, mc.Registers().GetGPR(5), uint32(0x11))
	test.ExpectEquality(t, mc.Registers().GetGPR(6), uint32(0x21))
	test.ExpectEquality(t, mc.Registers().GetGPR(15), uint32(0x0))
}

func TestProgramLatency(t *testing.T) {
	program := []uint32{
		addik(2, 0, 3),          // 00
		addik(3, 0, 12),         // 04
		typeA(0x12, 4, 2, 3, 0), // 08 idiv r4, r2, r3
		nop,                     // 0c exit
	}

	mc, mem := newSystem(t, microblaze.Latencies{})
	fast := runProgram(t, mc, mem, 0x0c, program...)
	test.ExpectEquality(t, mc.Registers().GetGPR(4), uint32(4))

	mc, mem = newSystem(t, microblaze.DefaultLatencies())
	slow := runProgram(t, mc, mem, 0x0c, program...)
	test.ExpectEquality(t, mc.Registers().GetGPR(4), uint32(4))

	// the divide takes 32 cycles rather than one
	test.ExpectEquality(t, slow-fast, 31)
}

func TestProgramException(t *testing.T) {
	mc, mem := newSystem(t, microblaze.Latencies{})

	// the exception handler at 0x20 loads the ESR into r7 and the return
	// address into r8
	runProgram(t, mc, mem, 0x28,
		typeB(0x25, 0, 0, 0x100),  // 00 msrset r0, EE
		typeA(0x12, 4, 0, 3, 0),   // 04 idiv r4, r0, r3
		nop,                       // 08
		nop,                       // 0c
		nop,                       // 10
		nop,                       // 14
		nop,                       // 18
		nop,                       // 1c
		typeB(0x25, 7, 0, 0x8005), // 20 mfs r7, resr
		addk(8, 17, 0),            // 24
		nop,                       // 28 exit
	)

	regs := mc.Registers()
	test.ExpectEquality(t, regs.GetGPR(7), uint32(5))
	test.ExpectEquality(t, regs.GetGPR(8), uint32(0x08))
	test.ExpectSuccess(t, regs.MSR.Is(registers.ExceptionInProgress))
	test.ExpectFailure(t, regs.MSR.Is(registers.ExceptionEnable))
}
