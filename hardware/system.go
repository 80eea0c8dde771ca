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

package hardware

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware/config"
	"github.com/fireworks-sim/fireworks/hardware/cpu"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/isa/microblaze"
	"github.com/fireworks-sim/fireworks/hardware/memory"
	"github.com/fireworks-sim/fireworks/hardware/peripherals"
	"github.com/fireworks-sim/fireworks/hardware/peripherals/timer"
	"github.com/fireworks-sim/fireworks/hardware/peripherals/uartlite"
	"github.com/fireworks-sim/fireworks/logger"
)

// Error patterns.
const (
	InvalidConfig   = "hardware: %v"
	AttachFailed    = "hardware: cannot attach %s: %v"
	BreakpointError = "hardware: breakpoint at %08x: %s"
	LoadError       = "hardware: cannot load image at %08x: %v"
)

// Observer is notified of every instruction retired by the CPU. The cycle
// argument is the number of the cycle in which the instruction retired.
type Observer interface {
	Retired(ins instructions.Instruction, cycle uint64)
}

// System is the simulated hardware: the CPU, the memory it is attached to
// and the peripherals on the peripheral bus.
type System struct {
	Config config.Config

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Decoder *microblaze.Decoder

	// the timer and uart will be nil if they are not enabled in the config
	Timer *timer.Timer
	UART  *uartlite.UARTLite

	// all attached peripherals in the order they are ticked
	Peripherals []peripherals.Peripheral

	cycles uint64

	// the interrupt line as it was at the end of the previous cycle
	interrupt bool

	// result of the most recent cycle
	status execution.RunStatus

	// addresses with a breakpoint in memory
	breakpoints map[uint32]bool

	observers []Observer

	// set by Halt() to stop a running system. checked after every cycle
	halt atomic.Bool
}

// NewSystem creates the hardware described by the configuration. Bytes sent
// by the uart are written to uartOut, which can be nil.
func NewSystem(cfg config.Config, uartOut io.Writer, debug logger.Permission) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, curated.Errorf(InvalidConfig, err)
	}

	sys := &System{
		Config:      cfg,
		Decoder:     microblaze.NewDecoder(cfg.Latencies),
		breakpoints: make(map[uint32]bool),
	}

	var err error

	sys.Mem, err = memory.NewMemory(cfg.Map, sys.Decoder)
	if err != nil {
		return nil, curated.Errorf(InvalidConfig, err)
	}

	sys.CPU = cpu.NewCPU(cfg.PVR, sys.Mem, debug)

	if cfg.Timer.Enabled {
		sys.Timer = timer.NewTimer(cfg.Timer.ReadLatency, cfg.Timer.WriteLatency, debug)
		if err := sys.attach(sys.Timer, cfg.Timer.Base); err != nil {
			return nil, err
		}
	}

	if cfg.UARTLite.Enabled {
		sys.UART = uartlite.NewUARTLite(cfg.UARTLite.ReadLatency, cfg.UARTLite.WriteLatency, uartOut, debug)
		if err := sys.attach(sys.UART, cfg.UARTLite.Base); err != nil {
			return nil, err
		}
	}

	return sys, nil
}

func (sys *System) attach(p peripherals.Peripheral, base uint32) error {
	if err := p.Attach(sys.Mem, base); err != nil {
		return curated.Errorf(AttachFailed, p.Label(), err)
	}
	sys.Peripherals = append(sys.Peripherals, p)
	return nil
}

func (sys *System) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycles: %d  instructions: %d  status: %s\n", sys.cycles, sys.CPU.Instructions(), sys.status))
	s.WriteString(sys.CPU.String())
	return s.String()
}

// Cycles returns the number of cycles since the last reset.
func (sys *System) Cycles() uint64 {
	return sys.cycles
}

// Interrupt returns the state of the interrupt line.
func (sys *System) Interrupt() bool {
	return sys.interrupt
}

// Status returns the result of the most recent cycle.
func (sys *System) Status() execution.RunStatus {
	return sys.status
}

// AddObserver adds an Observer to the list of observers.
func (sys *System) AddObserver(o Observer) {
	sys.observers = append(sys.observers, o)
}

// RemoveObserver removes an Observer previously added with AddObserver().
func (sys *System) RemoveObserver(o Observer) {
	for i := range sys.observers {
		if sys.observers[i] == o {
			sys.observers = append(sys.observers[:i], sys.observers[i+1:]...)
			return
		}
	}
}

// Halt stops a running system at the end of the current cycle. Safe to call
// from any goroutine.
func (sys *System) Halt() {
	sys.halt.Store(true)
}

// Cycle advances the system by one clock. The CPU sees the interrupt line
// from the end of the previous cycle. The peripherals are then ticked and
// their interrupt lines combined for the next cycle.
//
// A cycle in which the CPU reports a breakpoint does not advance the system
// and is not counted.
func (sys *System) Cycle() execution.RunStatus {
	ex := sys.CPU.StageInstruction(instructions.ExecuteStage)
	retired := sys.CPU.Instructions()

	sys.status = sys.CPU.Cycle(sys.interrupt)
	if sys.status == execution.RunBreakpoint {
		return sys.status
	}

	sys.cycles++

	interrupt := false
	for _, p := range sys.Peripherals {
		if p.Cycle() {
			interrupt = true
		}
	}
	sys.interrupt = interrupt

	if sys.status == execution.RunNormal && sys.CPU.Instructions() != retired {
		for _, o := range sys.observers {
			o.Retired(ex, sys.cycles)
		}
	}

	return sys.status
}

// Restart returns the CPU and the peripherals to their initial state. The
// contents of memory, including breakpoints and program exit markers, are
// preserved.
func (sys *System) Restart() {
	sys.CPU.Reset()
	sys.Mem.ResetAccess()
	for _, p := range sys.Peripherals {
		p.Reset()
	}
	sys.cycles = 0
	sys.interrupt = false
	sys.status = execution.RunNormal
	sys.halt.Store(false)
}

// Reset is like Restart() except that memory is also cleared.
func (sys *System) Reset() {
	sys.Mem.Reset()
	clear(sys.breakpoints)
	sys.Restart()
}

// SetBreakpoint wraps the instruction at the address in a breakpoint. The
// instruction is wrapped in memory and in the pipeline if it has already been
// fetched.
func (sys *System) SetBreakpoint(address uint32) error {
	ins, err := sys.Mem.Instruction(address)
	if err != nil {
		return curated.Errorf(BreakpointError, address, err)
	}
	if instructions.IsBreakpoint(ins) {
		return curated.Errorf(BreakpointError, address, "already set")
	}

	// the address will often not be in the pipeline
	if err := sys.CPU.InsertBreakpoint(address); err != nil && !curated.Is(err, cpu.NotInPipeline) {
		return curated.Errorf(BreakpointError, address, err)
	}

	if err := sys.Mem.PutInstruction(address, &instructions.Breakpoint{Wrapped: ins}); err != nil {
		return curated.Errorf(BreakpointError, address, err)
	}
	sys.breakpoints[address] = true

	return nil
}

// ClearBreakpoint removes the breakpoint at the address from memory and from
// anywhere in the pipeline.
func (sys *System) ClearBreakpoint(address uint32) error {
	ins, err := sys.Mem.Instruction(address)
	if err != nil {
		return curated.Errorf(BreakpointError, address, err)
	}
	bp, ok := ins.(*instructions.Breakpoint)
	if !ok {
		return curated.Errorf(BreakpointError, address, "not set")
	}

	// the address may not be in the pipeline. if it is then it can be
	// unwrapped because the instruction was in the execute slot when the
	// breakpoint was set, or because the breakpoint has been released. the
	// instruction in memory is the only copy that must be unwrapped
	if err := sys.CPU.RemoveBreakpoint(address); err != nil {
		if !curated.Is(err, cpu.NotInPipeline) && !curated.Is(err, cpu.BreakpointRemove) {
			return curated.Errorf(BreakpointError, address, err)
		}
	}

	if err := sys.Mem.PutInstruction(address, bp.Unwrap()); err != nil {
		return curated.Errorf(BreakpointError, address, err)
	}
	delete(sys.breakpoints, address)

	return nil
}

// Breakpoints returns the breakpoint addresses in ascending order.
func (sys *System) Breakpoints() []uint32 {
	l := make([]uint32, 0, len(sys.breakpoints))
	for a := range sys.breakpoints {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

// ProgramExit marks the instruction at the address as the end of the
// program.
func (sys *System) ProgramExit(address uint32) error {
	return sys.CPU.ProgramExit(address)
}
