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
	"strconv"
	"strings"
)

// Register numbers used by tooling. General purpose registers are numbered 0
// to 31. The PVR registers start at PVR0 and continue for as many PVR
// registers as the processor has.
const (
	PC   = 32
	MSR  = 33
	EAR  = 34
	ESR  = 35
	FSR  = 36
	BTR  = 37
	PVR0 = 38
)

// Special register selectors used by the mfs and mts instructions.
const (
	SelectPC   = 0x0000
	SelectMSR  = 0x0001
	SelectEAR  = 0x0003
	SelectESR  = 0x0005
	SelectFSR  = 0x0007
	SelectBTR  = 0x000b
	SelectPVR0 = 0x2000
)

// Label returns the canonical name for the register number.
func Label(n int) string {
	switch {
	case n >= 0 && n < NumGPR:
		return fmt.Sprintf("r%d", n)
	case n == PC:
		return "pc"
	case n == MSR:
		return "msr"
	case n == EAR:
		return "ear"
	case n == ESR:
		return "esr"
	case n == FSR:
		return "fsr"
	case n == BTR:
		return "btr"
	case n >= PVR0:
		return fmt.Sprintf("pvr%d", n-PVR0)
	}
	return "unknown"
}

// Number is the inverse of Label(). It also accepts a plain decimal register
// number. The second return value is false if the name is not recognised.
func Number(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "pc":
		return PC, true
	case "msr":
		return MSR, true
	case "ear":
		return EAR, true
	case "esr":
		return ESR, true
	case "fsr":
		return FSR, true
	case "btr":
		return BTR, true
	}

	if n, ok := strings.CutPrefix(name, "pvr"); ok {
		v, err := strconv.Atoi(n)
		if err != nil || v < 0 {
			return 0, false
		}
		return PVR0 + v, true
	}

	name = strings.TrimPrefix(name, "r")
	v, err := strconv.Atoi(name)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Get returns the value of the register by number. The PC register returns
// the PC register of the File, which is the address of the instruction in the
// fetch slot. The second return value is false if the number is not valid.
func (f *File) Get(n int) (uint32, bool) {
	switch {
	case n >= 0 && n < NumGPR:
		return f.GPR[n], true
	case n == PC:
		return f.PC, true
	case n == MSR:
		return uint32(f.MSR), true
	case n == EAR:
		return f.EAR, true
	case n == ESR:
		return f.ESR, true
	case n == FSR:
		return f.FSR, true
	case n == BTR:
		return f.BTR, true
	case n >= PVR0 && n < PVR0+len(f.PVR):
		return f.PVR[n-PVR0], true
	}
	return 0, false
}

// Set the value of the register by number. Writes to r0 are ignored but are
// not an error. Returns false if the number is not valid.
func (f *File) Set(n int, v uint32) bool {
	switch {
	case n >= 0 && n < NumGPR:
		f.SetGPR(n, v)
	case n == PC:
		f.PC = v
	case n == MSR:
		f.MSR = MachineStatus(v)
	case n == EAR:
		f.EAR = v
	case n == ESR:
		f.ESR = v
	case n == FSR:
		f.FSR = v
	case n == BTR:
		f.BTR = v
	case n >= PVR0 && n < PVR0+len(f.PVR):
		f.PVR[n-PVR0] = v
	default:
		return false
	}
	return true
}

// Special returns the value of the special register selected by the
// selector field of an mfs instruction. The pc argument is the address of the
// mfs instruction itself. The second return value is false if the selector
// is not valid.
func (f *File) Special(sel uint32, pc uint32) (uint32, bool) {
	switch sel {
	case SelectPC:
		return pc, true
	case SelectMSR:
		return uint32(f.MSR), true
	case SelectEAR:
		return f.EAR, true
	case SelectESR:
		return f.ESR, true
	case SelectFSR:
		return f.FSR, true
	case SelectBTR:
		return f.BTR, true
	}
	if sel >= SelectPVR0 && int(sel-SelectPVR0) < len(f.PVR) {
		return f.PVR[sel-SelectPVR0], true
	}
	return 0, false
}

// SetSpecial writes to the special register selected by the selector field of
// an mts instruction. Only MSR and FSR are writable in this way. Returns false
// if the selector is not valid for writing.
func (f *File) SetSpecial(sel uint32, v uint32) bool {
	switch sel {
	case SelectMSR:
		f.MSR = MachineStatus(v)
	case SelectFSR:
		f.FSR = v
	default:
		return false
	}
	return true
}
