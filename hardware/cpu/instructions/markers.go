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

package instructions

import (
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
)

// Empty is a pipeline bubble.
type Empty struct{}

// Bubble is the Empty instruction used to fill pipeline slots.
var Bubble Instruction = Empty{}

// Step implements the Instruction interface.
func (Empty) Step(_ Stage, _ Core) execution.Outcome {
	return execution.Empty
}

// PC implements the Instruction interface. A bubble has no address.
func (Empty) PC() uint32 {
	return 0
}

func (Empty) String() string {
	return ""
}

// Illegal is the instruction for an address that holds no valid instruction.
type Illegal struct {
	Address uint32
}

// Step implements the Instruction interface.
func (ins *Illegal) Step(_ Stage, _ Core) execution.Outcome {
	return execution.Illegal
}

// PC implements the Instruction interface.
func (ins *Illegal) PC() uint32 {
	return ins.Address
}

func (ins *Illegal) String() string {
	return "illegal"
}

// Unmapped is the instruction for an address that is not mapped to any memory
// region.
type Unmapped struct {
	Address uint32
}

// Step implements the Instruction interface.
func (ins *Unmapped) Step(_ Stage, _ Core) execution.Outcome {
	return execution.UnmappedFetch
}

// PC implements the Instruction interface.
func (ins *Unmapped) PC() uint32 {
	return ins.Address
}

func (ins *Unmapped) String() string {
	return "unmapped"
}

// ProgramExit wraps the instruction at the exit point of a program. When it
// reaches the execute slot the program stops. It presents itself as the
// wrapped instruction in every other respect.
type ProgramExit struct {
	Wrapped Instruction
}

// Step implements the Instruction interface.
func (ins *ProgramExit) Step(_ Stage, _ Core) execution.Outcome {
	return execution.Stop
}

// PC implements the Instruction interface.
func (ins *ProgramExit) PC() uint32 {
	return ins.Wrapped.PC()
}

func (ins *ProgramExit) String() string {
	return ins.Wrapped.String()
}

// Disassemble implements the Disassembler interface.
func (ins *ProgramExit) Disassemble() string {
	return Disassemble(ins.Wrapped)
}

// Unwrap returns the wrapped instruction.
func (ins *ProgramExit) Unwrap() Instruction {
	return ins.Wrapped
}

// the register that receives the address of the breakpoint
const breakpointLink = 16

// Breakpoint wraps an instruction. When it reaches the execute slot the
// address of the wrapped instruction is written to r16 and the pipeline halts
// without executing the wrapped instruction.
type Breakpoint struct {
	Wrapped Instruction
}

// Step implements the Instruction interface.
func (ins *Breakpoint) Step(_ Stage, core Core) execution.Outcome {
	core.Registers().SetGPR(breakpointLink, ins.Wrapped.PC())
	return execution.Breakpoint
}

// PC implements the Instruction interface.
func (ins *Breakpoint) PC() uint32 {
	return ins.Wrapped.PC()
}

func (ins *Breakpoint) String() string {
	return "breakpoint"
}

// Unwrap returns the wrapped instruction.
func (ins *Breakpoint) Unwrap() Instruction {
	return ins.Wrapped
}

// the address of the interrupt handler
const interruptVector = 0x10

// Vector is the jump to the interrupt handler that the scheduler places in
// the execute slot when it takes an interrupt.
type Vector struct{}

// InterruptVector is the Vector instruction used by the scheduler.
var InterruptVector Instruction = Vector{}

// Step implements the Instruction interface.
func (Vector) Step(_ Stage, core Core) execution.Outcome {
	core.Registers().PC = interruptVector
	return execution.JumpTaken
}

// PC implements the Instruction interface.
func (Vector) PC() uint32 {
	return 0
}

func (Vector) String() string {
	return "brai"
}

// Disassemble implements the Disassembler interface.
func (Vector) Disassemble() string {
	return "brai    0x10"
}
