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

package microblaze

import (
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/memory/bus"
)

// the width of a load or store. the values are those of the low two bits of
// the opcode.
type width int

const (
	widthByte width = iota
	widthHalf
	widthWord
)

// bits of the ESR describing an unaligned access.
const (
	esrStore = 0x400
	esrWord  = 0x800
)

// access returns the effect of a load or store instruction. the effective
// address is rA plus rB or the immediate value. it is calculated on the first
// cycle of the access and used until the memory system has completed the
// access.
func access(w width, store bool) effect {
	return func(ins *opcode, core instructions.Core) execution.Outcome {
		regs := core.Registers()

		if !ins.accessing {
			ins.address = regs.GetGPR(ins.ra) + ins.operand(regs)
			ins.accessing = true
		}

		db := core.DataBus()

		var v uint32
		var st bus.Status
		if store {
			d := regs.GetGPR(ins.rd)
			switch w {
			case widthByte:
				st = db.WriteByte(ins.address, d)
			case widthHalf:
				st = db.WriteHalf(ins.address, d)
			case widthWord:
				st = db.WriteWord(ins.address, d)
			}
		} else {
			switch w {
			case widthByte:
				v, st = db.ReadByte(ins.address)
			case widthHalf:
				v, st = db.ReadHalf(ins.address)
			case widthWord:
				v, st = db.ReadWord(ins.address)
			}
		}

		if st == bus.Busy {
			return execution.MemAccessInProgress
		}
		ins.accessing = false

		switch st {
		case bus.Ready:
			if !store {
				regs.SetGPR(ins.rd, v)
			}
			return execution.Normal

		case bus.Unaligned:
			esr := uint32(ins.rd) << 5
			if store {
				esr |= esrStore
			}
			if w == widthWord {
				esr |= esrWord
			}
			regs.ESR = esr
			regs.EAR = ins.address
			return execution.MemUnaligned
		}

		regs.EAR = ins.address
		return execution.MemUnmapped
	}
}
