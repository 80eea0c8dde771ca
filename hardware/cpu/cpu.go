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

package cpu

import (
	"fmt"
	"strings"

	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
	"github.com/fireworks-sim/fireworks/logger"
)

// Memory is the view of the memory system required by the CPU.
type Memory interface {
	bus.DataBus

	// Fetch never fails. See the memory package for details
	Fetch(address uint32) instructions.Instruction

	Instruction(address uint32) (instructions.Instruction, error)
	PutInstruction(address uint32, ins instructions.Instruction) error
	ResetAccess()
}

// the address of the exception handler
const exceptionVector = 0x20

// link registers for interrupts and exceptions
const (
	interruptLink = 14
	exceptionLink = 17
)

// CPU implements the three stage pipeline of the processor: fetch, decode and
// execute. Register logic is implemented by the File type in the registers
// sub-package.
type CPU struct {
	regs *registers.File
	mem  Memory

	// the three pipeline slots. a slot is never nil. an empty slot holds
	// instructions.Bubble
	fetch   instructions.Instruction
	decode  instructions.Instruction
	execute instructions.Instruction

	// the number of instructions retired since the last reset
	instructions uint64

	// the outcome of the execute slot in the most recent cycle
	LastOutcome execution.Outcome

	// exceptions and interrupts are logged if debug allows it
	debug logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU type. The pvr
// argument is the initial value of each processor version register.
func NewCPU(pvr []uint32, mem Memory, debug logger.Permission) *CPU {
	mc := &CPU{
		regs:  registers.NewFile(pvr),
		mem:   mem,
		debug: debug,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(mc.regs.String())
	for _, stg := range []instructions.Stage{instructions.ExecuteStage, instructions.DecodeStage, instructions.FetchStage} {
		ins := mc.StageInstruction(stg)
		if instructions.IsEmpty(ins) {
			s.WriteString(fmt.Sprintf("%-8s -\n", stg))
		} else {
			s.WriteString(fmt.Sprintf("%-8s %08x %s\n", stg, ins.PC(), instructions.Disassemble(ins)))
		}
	}
	return s.String()
}

// Reset all registers and empty the pipeline. Memory is not affected.
func (mc *CPU) Reset() {
	mc.abandon()
	mc.regs.Reset()
	mc.fetch = instructions.Bubble
	mc.decode = instructions.Bubble
	mc.execute = instructions.Bubble
	mc.instructions = 0
	mc.LastOutcome = execution.Empty
}

// abandon the instructions in every pipeline slot. decoded instructions are
// shared with the memory system and must not carry a partial stall or access
// into their next execution
func (mc *CPU) abandon() {
	instructions.Abandon(mc.fetch)
	instructions.Abandon(mc.decode)
	instructions.Abandon(mc.execute)
}

// Registers implements the instructions.Core interface.
func (mc *CPU) Registers() *registers.File {
	return mc.regs
}

// DataBus implements the instructions.Core interface.
func (mc *CPU) DataBus() bus.DataBus {
	return mc.mem
}

// Instructions returns the number of instructions retired since the last
// reset.
func (mc *CPU) Instructions() uint64 {
	return mc.instructions
}

// StageInstruction returns the instruction in the pipeline slot.
func (mc *CPU) StageInstruction(stage instructions.Stage) instructions.Instruction {
	switch stage {
	case instructions.FetchStage:
		return mc.fetch
	case instructions.DecodeStage:
		return mc.decode
	}
	return mc.execute
}

// Cycle advances the pipeline by one clock. The interrupt argument is the
// state of the external interrupt line.
func (mc *CPU) Cycle(interrupt bool) execution.RunStatus {
	outcome := mc.execute.Step(instructions.ExecuteStage, mc)
	mc.LastOutcome = outcome

	switch outcome {
	case execution.Normal:
		mc.instructions++
		mc.advance(interrupt)

	case execution.Empty:
		mc.advance(interrupt)

	case execution.Stall, execution.MemAccessInProgress:
		// the execute slot is busy but a bubble in the decode slot can still
		// be filled
		if instructions.IsEmpty(mc.decode) {
			mc.regs.PC = mc.regs.NextPC
			mc.regs.NextPC = mc.regs.PC + 4
			mc.decode = mc.fetch
			mc.fetch = mc.mem.Fetch(mc.regs.PC)
		}

	case execution.DelaySlot:
		// the branch has written the target to the PC. the instruction in the
		// decode slot is the delay slot and is executed next
		mc.instructions++
		mc.regs.NextPC = mc.regs.PC + 4
		mc.execute = mc.decode
		mc.decode = instructions.Bubble
		mc.fetch = mc.mem.Fetch(mc.regs.PC)

	case execution.JumpTaken:
		mc.instructions++
		mc.regs.NextPC = mc.regs.PC + 4
		mc.execute = instructions.Bubble
		mc.decode = instructions.Bubble
		mc.fetch = mc.mem.Fetch(mc.regs.PC)

	case execution.Breakpoint:
		return execution.RunBreakpoint

	case execution.Stop:
		mc.instructions++
		return execution.RunStopped

	default:
		if !outcome.IsFault() {
			panic(fmt.Sprintf("cpu: unhandled outcome (%s)", outcome))
		}

		if mc.regs.MSR.ExceptionsAllowed() {
			mc.exception(outcome)
		} else {
			// a masked fault is treated as if the instruction completed
			mc.instructions++
			mc.shift()
		}
	}

	return execution.RunNormal
}

// advance the pipeline after a completed instruction, or a bubble, taking the
// interrupt if possible.
func (mc *CPU) advance(interrupt bool) {
	if interrupt && mc.regs.MSR.InterruptsAllowed() && !mc.regs.ImmFlag && !instructions.IsEmpty(mc.decode) {
		logger.Logf(mc.debug, "cpu", "interrupt taken, returning to %08x", mc.decode.PC())

		// the instruction in the decode slot has not been executed yet and
		// is where the interrupt handler returns to
		mc.regs.SetGPR(interruptLink, mc.decode.PC())
		mc.regs.MSR &^= registers.InterruptEnable

		mc.execute = instructions.InterruptVector
		mc.decode = mc.fetch
		mc.fetch = mc.mem.Fetch(mc.regs.PC + 4)
		return
	}

	mc.shift()
}

// shift the pipeline slots in program order and fetch the next instruction.
func (mc *CPU) shift() {
	mc.regs.PC = mc.regs.NextPC
	mc.regs.NextPC = mc.regs.PC + 4
	mc.execute = mc.decode
	mc.decode = mc.fetch
	mc.fetch = mc.mem.Fetch(mc.regs.PC)
}

// enter the exception handler for the fault outcome.
func (mc *CPU) exception(outcome execution.Outcome) {
	logger.Logf(mc.debug, "cpu", "%s exception at %08x", outcome, mc.execute.PC())

	mc.regs.SetGPR(exceptionLink, mc.execute.PC()+4)
	mc.regs.ESR, _ = outcome.ExceptionCause(mc.regs.ESR)

	mc.regs.MSR |= registers.ExceptionInProgress
	mc.regs.MSR &^= registers.ExceptionEnable

	mc.regs.PC = exceptionVector
	mc.regs.NextPC = exceptionVector + 4
	mc.execute = instructions.Bubble
	mc.decode = instructions.Bubble
	mc.fetch = mc.mem.Fetch(mc.regs.PC)
}
