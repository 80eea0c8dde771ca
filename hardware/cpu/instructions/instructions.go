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
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
)

// Stage identifies a slot in the pipeline.
type Stage int

// List of pipeline stages.
const (
	FetchStage Stage = iota
	DecodeStage
	ExecuteStage
)

func (s Stage) String() string {
	switch s {
	case FetchStage:
		return "fetch"
	case DecodeStage:
		return "decode"
	case ExecuteStage:
		return "execute"
	}
	return "unknown stage"
}

// Core is the view of the processor given to an instruction when it is
// stepped.
type Core interface {
	Registers() *registers.File
	DataBus() bus.DataBus
}

// Instruction is a single decoded instruction held in a pipeline slot.
//
// Instructions are stateful. An instruction that takes more than one cycle to
// complete keeps count of the cycles that have passed and returns Stall (or
// MemAccessInProgress) until it has completed. The scheduler only ever steps
// the instruction in the execute slot.
type Instruction interface {
	Step(stage Stage, core Core) execution.Outcome

	// the address the instruction was fetched from
	PC() uint32

	// the mnemonic of the instruction. this is also the string used for
	// profiling
	String() string
}

// Wrapper is implemented by marker instructions that wrap a decoded
// instruction.
type Wrapper interface {
	Unwrap() Instruction
}

// Abandoner is implemented by instructions that keep state between cycles.
// Abandon discards that state so that the next Step() starts the instruction
// from its first cycle.
type Abandoner interface {
	Abandon()
}

// Abandon the instruction if it implements the Abandoner interface. Wrapped
// instructions are abandoned too.
func Abandon(ins Instruction) {
	if a, ok := ins.(Abandoner); ok {
		a.Abandon()
	}
	if w, ok := ins.(Wrapper); ok {
		Abandon(w.Unwrap())
	}
}

// Disassembler is implemented by instructions that can describe their
// operands in addition to their mnemonic.
type Disassembler interface {
	Disassemble() string
}

// Decoder creates instructions from instruction words. Decoded instructions
// are long lived and are kept by the memory system until the memory location
// is written to.
type Decoder interface {
	Decode(address uint32, word uint32) Instruction
	Illegal(address uint32) Instruction
	Unmapped(address uint32) Instruction
}

// Disassemble returns the full disassembly for an instruction if it is
// available, otherwise the mnemonic only.
func Disassemble(ins Instruction) string {
	if d, ok := ins.(Disassembler); ok {
		return d.Disassemble()
	}
	return ins.String()
}
