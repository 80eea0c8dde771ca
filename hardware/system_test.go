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

package hardware_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/config"
	"github.com/fireworks-sim/fireworks/hardware/cpu"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/peripherals/timer"
	"github.com/fireworks-sim/fireworks/test"
)

func typeA(op uint32, rd uint32, ra uint32, rb uint32, fn uint32) uint32 {
	return op<<26 | rd<<21 | ra<<16 | rb<<11 | fn&0x7ff
}

func typeB(op uint32, rd uint32, ra uint32, imm int) uint32 {
	return op<<26 | rd<<21 | ra<<16 | uint32(imm)&0xffff
}

var nop = typeA(0x20, 0, 0, 0, 0)

func addik(rd uint32, ra uint32, v int) uint32    { return typeB(0x0c, rd, ra, v) }
func addk(rd uint32, ra uint32, rb uint32) uint32 { return typeA(0x04, rd, ra, rb, 0) }
func swi(rd uint32, ra uint32, v int) uint32      { return typeB(0x3e, rd, ra, v) }
func prefix(v int) uint32                         { return typeB(0x2c, 0, 0, v) }

// sum the numbers 1 to 5 and store the result at 0x100
var loop = []uint32{
	addik(3, 0, 5),           // 00
	addik(4, 0, 0),           // 04
	addk(4, 4, 3),            // 08 loop
	addik(3, 3, -1),          // 0c
	typeB(0x2f, 0x11, 3, -8), // 10 bneid r3, loop
	nop,                      // 14 delay slot
	swi(4, 0, 0x100),         // 18
	nop,                      // 1c exit
}

func newSystem(t *testing.T, uart *bytes.Buffer) *hardware.System {
	t.Helper()
	var sys *hardware.System
	var err error
	if uart == nil {
		sys, err = hardware.NewSystem(config.Default(), nil, nil)
	} else {
		sys, err = hardware.NewSystem(config.Default(), uart, nil)
	}
	test.DemandSuccess(t, err)
	return sys
}

func load(t *testing.T, sys *hardware.System, origin uint32, exit uint32, program ...uint32) {
	t.Helper()
	test.DemandSuccess(t, sys.LoadWords(origin, program...))
	test.DemandSuccess(t, sys.ProgramExit(exit))
}

// limit the number of cycles a test program can run for
func limit(sys *hardware.System, n uint64) func() (bool, error) {
	return func() (bool, error) {
		if sys.Cycles() >= n {
			return false, errors.New("program did not stop")
		}
		return true, nil
	}
}

func expectRegister(t *testing.T, sys *hardware.System, n int, v uint32) {
	t.Helper()
	r, err := sys.CPU.Register(n)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, v, n)
}

func TestContinue(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)

	v, err := sys.Mem.PeekWord(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 15)

	// a stopped system does not run again until it is restarted
	cycles := sys.Cycles()
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)
	test.ExpectEquality(t, sys.Cycles(), cycles)

	sys.Restart()
	test.ExpectEquality(t, sys.Cycles(), 0)
	test.ExpectEquality(t, sys.Status(), execution.RunNormal)
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)
	test.ExpectEquality(t, sys.Cycles(), cycles)
}

func TestBreakpoint(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	test.ExpectSuccess(t, sys.SetBreakpoint(0x08))
	test.ExpectFailure(t, sys.SetBreakpoint(0x08))
	test.ExpectFailure(t, sys.ClearBreakpoint(0x0c))
	test.ExpectEquality(t, len(sys.Breakpoints()), 1)

	test.ExpectEquality(t, sys.Continue(), execution.RunBreakpoint)
	pc, err := sys.CPU.DebugRegister(registers.PC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pc, 0x08)
	expectRegister(t, sys, 16, 0x08)
	expectRegister(t, sys, 4, 0)

	// the breakpoint is hit on every iteration of the loop
	test.ExpectEquality(t, sys.Continue(), execution.RunBreakpoint)
	expectRegister(t, sys, 4, 5)
	expectRegister(t, sys, 3, 4)

	test.ExpectSuccess(t, sys.ClearBreakpoint(0x08))
	test.ExpectEquality(t, len(sys.Breakpoints()), 0)
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)

	v, err := sys.Mem.PeekWord(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 15)
}

func TestBreakpointInPipeline(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	// run until the first instruction is in the execute slot. the following
	// instructions have already been fetched
	test.ExpectEquality(t, sys.RunToAddress(0x00), execution.RunNormal)
	test.ExpectSuccess(t, sys.SetBreakpoint(0x04))
	test.ExpectEquality(t, sys.Continue(), execution.RunBreakpoint)

	ex := sys.CPU.StageInstruction(instructions.ExecuteStage)
	test.ExpectSuccess(t, instructions.IsBreakpoint(ex))
	test.ExpectEquality(t, ex.PC(), 0x04)
}

func TestBreakpointPipelineErrors(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)
	test.ExpectEquality(t, sys.RunToAddress(0x00), execution.RunNormal)

	// the execute slot is never wrapped but setting and clearing a breakpoint
	// on its address succeeds
	test.ExpectSuccess(t, sys.SetBreakpoint(0x00))
	test.ExpectSuccess(t, sys.ClearBreakpoint(0x00))

	// writing to memory replaces the breakpoint in memory but not the copy in
	// the pipeline. the copy in the pipeline can not be wrapped again
	test.ExpectSuccess(t, sys.SetBreakpoint(0x04))
	test.ExpectSuccess(t, sys.Mem.PokeWord(0x04, loop[1]))
	err := sys.SetBreakpoint(0x04)
	test.ExpectSuccess(t, curated.Is(err, hardware.BreakpointError))
	test.ExpectSuccess(t, curated.Has(err, cpu.BreakpointInsert))
}

func TestStep(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	test.ExpectEquality(t, sys.Step(), execution.RunNormal)
	pc, _ := sys.CPU.DebugRegister(registers.PC)
	test.ExpectEquality(t, pc, 0x04)
	expectRegister(t, sys, 3, 5)

	test.ExpectEquality(t, sys.Step(), execution.RunNormal)
	pc, _ = sys.CPU.DebugRegister(registers.PC)
	test.ExpectEquality(t, pc, 0x08)

	test.ExpectEquality(t, sys.CPU.Instructions(), 2)
}

func TestRunModes(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	test.ExpectEquality(t, sys.RunCycles(2), execution.RunNormal)
	test.ExpectEquality(t, sys.Cycles(), 2)

	test.ExpectEquality(t, sys.RunInstructions(3), execution.RunNormal)
	test.ExpectEquality(t, sys.CPU.Instructions(), 3)
	expectRegister(t, sys, 4, 5)

	test.ExpectEquality(t, sys.RunToAddress(0x18), execution.RunNormal)
	expectRegister(t, sys, 4, 15)
	ex := sys.CPU.StageInstruction(instructions.ExecuteStage)
	test.ExpectEquality(t, ex.PC(), 0x18)

	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)
}

type counter struct {
	retired int
	last    uint64
}

func (c *counter) Retired(_ instructions.Instruction, cycle uint64) {
	c.retired++
	c.last = cycle
}

func TestObserver(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	c := &counter{}
	sys.AddObserver(c)
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)

	// the program exit marker is counted by the CPU but is not retired
	test.ExpectEquality(t, uint64(c.retired)+1, sys.CPU.Instructions())
	test.ExpectEquality(t, c.last < sys.Cycles(), true)

	sys.RemoveObserver(c)
	sys.Restart()
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)
	test.ExpectEquality(t, uint64(c.retired)+1, sys.CPU.Instructions())
}

func TestHalt(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)

	st, err := sys.Run(func() (bool, error) {
		if sys.Cycles() == 5 {
			sys.Halt()
		}
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunNormal)
	test.ExpectEquality(t, sys.Cycles(), 5)

	// halt is cleared when the system is run again
	test.ExpectEquality(t, sys.Continue(), execution.RunStopped)
}

func TestUART(t *testing.T) {
	var out bytes.Buffer
	sys := newSystem(t, &out)

	load(t, sys, 0, 0x24,
		prefix(0x4060),   // 00
		addik(5, 0, 0),   // 04 r5 = uart base
		addik(3, 0, 'o'), // 08
		swi(3, 5, 4),     // 0c
		addik(3, 0, 'k'), // 10
		swi(3, 5, 4),     // 14
		nop,              // 18
		nop,              // 1c
		nop,              // 20
		nop,              // 24 exit
	)

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)
	test.ExpectEquality(t, out.String(), "ok")
}

func TestTimerInterrupt(t *testing.T) {
	sys := newSystem(t, nil)

	// jump over the vectors
	load(t, sys, 0, 0x10, typeB(0x2e, 0, 0, 0x100))

	test.DemandSuccess(t, sys.LoadWords(0x100,
		prefix(0x41c0),         // 100
		addik(5, 0, 0),         // 104 r5 = timer base
		addik(3, 0, -16),       // 108
		swi(3, 5, timer.TLR0),  // 10c
		addik(3, 0, 0x20),      // 110 LOAD
		swi(3, 5, timer.TCSR0), // 114
		addik(3, 0, 0xd0),      // 118 ENT | ENIT | ARHT
		swi(3, 5, timer.TCSR0), // 11c
		typeB(0x25, 0, 0, 0x2), // 120 msrset r0, IE
		typeB(0x2e, 0, 0, 0),   // 124 bri 0
	))

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)

	// the interrupt handler returns to the loop
	expectRegister(t, sys, 14, 0x124)
	test.ExpectSuccess(t, sys.Interrupt())
	test.ExpectFailure(t, sys.CPU.Registers().MSR.Is(registers.InterruptEnable))
}

func TestLoadImage(t *testing.T) {
	sys := newSystem(t, nil)

	n, err := sys.LoadImage(bytes.NewReader([]byte{0x30, 0x60, 0x00, 0x05, 0x12}), 0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	v, _ := sys.Mem.PeekWord(0x200)
	test.ExpectEquality(t, v, 0x30600005)
	v, _ = sys.Mem.PeekWord(0x204)
	test.ExpectEquality(t, v, 0x12000000)

	n, err = sys.LoadImage(bytes.NewReader(nil), 0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	_, err = sys.LoadImage(bytes.NewReader([]byte{0, 0, 0, 0}), 0x201)
	test.ExpectFailure(t, err)

	// image runs past the end of memory
	_, err = sys.LoadImage(bytes.NewReader(make([]byte, 8)), 0xfffc)
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x1c, loop...)
	test.ExpectSuccess(t, sys.SetBreakpoint(0x08))
	test.ExpectEquality(t, sys.Continue(), execution.RunBreakpoint)

	sys.Reset()
	test.ExpectEquality(t, sys.Cycles(), 0)
	test.ExpectEquality(t, len(sys.Breakpoints()), 0)
	v, _ := sys.Mem.PeekWord(0x08)
	test.ExpectEquality(t, v, 0)
}

func TestNewSystem(t *testing.T) {
	cfg := config.Default()
	cfg.Timer.Base = 0x41c00002
	_, err := hardware.NewSystem(cfg, nil, nil)
	test.ExpectFailure(t, err)

	// timer registers inside the LMB
	cfg = config.Default()
	cfg.Timer.Base = 0x100
	_, err = hardware.NewSystem(cfg, nil, nil)
	test.ExpectFailure(t, err)

	cfg = config.Default()
	cfg.Timer.Enabled = false
	cfg.UARTLite.Enabled = false
	sys, err := hardware.NewSystem(cfg, nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(sys.Peripherals), 0)
	test.ExpectEquality(t, sys.Timer == nil, true)
}

func TestShared(t *testing.T) {
	sys := newSystem(t, nil)
	sh := hardware.NewShared(sys)

	err := sh.Borrow(func(s *hardware.System) error {
		test.ExpectEquality(t, s, sys)
		return nil
	})
	test.ExpectSuccess(t, err)

	e := errors.New("test error")
	test.ExpectEquality(t, sh.Borrow(func(_ *hardware.System) error { return e }), e)
}

// cycle the system until the outcome of the execute slot is the one wanted
func cycleUntil(t *testing.T, sys *hardware.System, outcome execution.Outcome) {
	t.Helper()
	for i := 0; i < 100; i++ {
		sys.Cycle()
		if sys.CPU.LastOutcome == outcome {
			return
		}
	}
	t.Fatalf("outcome %v never reached", outcome)
}

func lwi(rd uint32, ra uint32, v int) uint32 { return typeB(0x3a, rd, ra, v) }

// a load that is abandoned part way through must calculate its address again
// the next time it is executed
func newSlowLoad(t *testing.T) *hardware.System {
	t.Helper()
	cfg := config.Default()
	cfg.Map.LMB.ReadLatency = 4
	sys, err := hardware.NewSystem(cfg, nil, nil)
	test.DemandSuccess(t, err)

	load(t, sys, 0, 0x10,
		addik(5, 0, 0x200), // 00
		nop,                // 04
		nop,                // 08
		lwi(6, 5, 0),       // 0c
		nop,                // 10 exit
	)
	test.DemandSuccess(t, sys.Mem.PokeWord(0x200, 0xaaaa))
	test.DemandSuccess(t, sys.Mem.PokeWord(0x300, 0xbbbb))

	cycleUntil(t, sys, execution.MemAccessInProgress)
	return sys
}

func TestRestartDuringAccess(t *testing.T) {
	sys := newSlowLoad(t)

	test.DemandSuccess(t, sys.Mem.PokeWord(0x00, addik(5, 0, 0x300)))
	sys.Restart()

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)
	expectRegister(t, sys, 5, 0x300)
	expectRegister(t, sys, 6, 0xbbbb)
}

func TestRelocateDuringAccess(t *testing.T) {
	sys := newSlowLoad(t)

	test.DemandSuccess(t, sys.CPU.SetRegister(5, 0x300))
	test.DemandSuccess(t, sys.CPU.SetDebugRegister(registers.PC, 0x0c))

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)
	expectRegister(t, sys, 6, 0xbbbb)
}

func TestRestartDuringStall(t *testing.T) {
	sys := newSystem(t, nil)
	load(t, sys, 0, 0x10,
		addik(3, 0, 6),          // 00
		addik(4, 0, 7),          // 04
		typeA(0x10, 5, 3, 4, 0), // 08 mul
		nop,                     // 0c
		nop,                     // 10 exit
	)

	st, err := sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)
	expectRegister(t, sys, 5, 42)
	cycles := sys.Cycles()

	// restart while the multiply is stalled. the multiply takes its full
	// latency when the program is run again
	sys.Restart()
	cycleUntil(t, sys, execution.Stall)
	sys.Restart()

	st, err = sys.Run(limit(sys, 1000))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, execution.RunStopped)
	test.ExpectEquality(t, sys.Cycles(), cycles)
}
