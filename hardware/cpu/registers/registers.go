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

package registers

import (
	"fmt"
	"strings"
)

// NumGPR is the number of general purpose registers.
const NumGPR = 32

// DefaultPVR is the number of processor version registers when none are
// specified.
const DefaultPVR = 12

// File is the register file of the processor. The pipeline scheduler owns the
// File and instructions access it through the Core interface of the
// instructions package.
type File struct {
	GPR [NumGPR]uint32

	// PC is the address of the instruction most recently fetched. NextPC is the
	// address of the next instruction to fetch. Branches write to PC and the
	// scheduler fetches the branch target from there.
	PC     uint32
	NextPC uint32

	MSR MachineStatus
	EAR uint32
	ESR uint32
	FSR uint32
	BTR uint32

	// processor version registers. read only to software
	PVR []uint32

	// the value of the last imm prefix instruction, already shifted into the
	// upper half of the word. valid only while ImmFlag is true
	Imm     uint32
	ImmFlag bool
}

// NewFile is the preferred method of initialisation for the File type. The pvr
// argument is the initial value of each processor version register. The number
// of PVR registers is len(pvr).
func NewFile(pvr []uint32) *File {
	f := &File{
		PVR: make([]uint32, len(pvr)),
	}
	copy(f.PVR, pvr)
	f.Reset()
	return f
}

// Reset all registers to zero with the exception of the PVR registers.
func (f *File) Reset() {
	f.GPR = [NumGPR]uint32{}
	f.PC = 0
	f.NextPC = 0
	f.MSR = 0
	f.EAR = 0
	f.ESR = 0
	f.FSR = 0
	f.BTR = 0
	f.Imm = 0
	f.ImmFlag = false
}

// SetGPR writes a value to a general purpose register. Writes to r0 are
// ignored.
func (f *File) SetGPR(r int, v uint32) {
	r &= 0x1f
	if r == 0 {
		return
	}
	f.GPR[r] = v
}

// GetGPR returns the value of a general purpose register.
func (f *File) GetGPR(r int) uint32 {
	return f.GPR[r&0x1f]
}

// SetIMM records the operand of an imm prefix instruction. The value will be
// used as the upper half of the next immediate operand.
func (f *File) SetIMM(v uint16) {
	f.Imm = uint32(v) << 16
	f.ImmFlag = true
}

// SignExtendIMM returns the 32bit value of a 16bit immediate operand. If an imm
// prefix is in effect the prefix is combined with the operand and the prefix
// is consumed. Otherwise the operand is sign extended.
func (f *File) SignExtendIMM(v uint16) uint32 {
	if f.ImmFlag {
		f.ImmFlag = false
		return f.Imm | uint32(v)
	}
	return uint32(int32(int16(v)))
}

// ClearIMM discards any imm prefix currently in effect. Instructions that do
// not take an immediate operand clear the prefix when they execute.
func (f *File) ClearIMM() {
	f.ImmFlag = false
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < NumGPR; i++ {
		s.WriteString(fmt.Sprintf("%-4s %08x", Label(i), f.GPR[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	s.WriteString(fmt.Sprintf("pc   %08x  msr  %08x  ear  %08x  esr  %08x\n", f.PC, uint32(f.MSR), f.EAR, f.ESR))
	s.WriteString(fmt.Sprintf("fsr  %08x  btr  %08x  [%s]\n", f.FSR, f.BTR, f.MSR))
	return s.String()
}
