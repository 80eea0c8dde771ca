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
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
)

// Decoder implements the instructions.Decoder interface.
type Decoder struct {
	lat Latencies
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(lat Latencies) *Decoder {
	return &Decoder{lat: lat}
}

// Decode implements the instructions.Decoder interface. Words that do not
// encode a valid instruction decode as an illegal instruction.
func (dec *Decoder) Decode(address uint32, word uint32) instructions.Instruction {
	def := lookup(word)
	if def == nil {
		return dec.Illegal(address)
	}
	return newOpcode(def, dec.lat, address, word)
}

// Illegal implements the instructions.Decoder interface.
func (dec *Decoder) Illegal(address uint32) instructions.Instruction {
	return &instructions.Illegal{Address: address}
}

// Unmapped implements the instructions.Decoder interface.
func (dec *Decoder) Unmapped(address uint32) instructions.Instruction {
	return &instructions.Unmapped{Address: address}
}

// Disassemble returns the assembly language representation of an instruction
// word.
func Disassemble(word uint32) string {
	def := lookup(word)
	if def == nil {
		return "illegal"
	}
	return newOpcode(def, Latencies{}, 0, word).Disassemble()
}

// Mnemonic returns the mnemonic of an instruction word or the empty string if
// the word is not a valid instruction.
func Mnemonic(word uint32) string {
	def := lookup(word)
	if def == nil {
		return ""
	}
	return def.mnemonic
}

// lookup the definition for an instruction word. returns nil if the word is
// not a valid instruction.
func lookup(word uint32) *definition {
	op := word >> 26
	rd := (word >> 21) & 0x1f
	ra := (word >> 16) & 0x1f
	typeA := word & 0x7ff

	def := func(m string) *definition {
		return definitions[m]
	}

	switch op {
	case 0x00, 0x01, 0x02, 0x03, 0x04, 0x06, 0x07:
		if typeA != 0 {
			return nil
		}
		return def(arithmetic[op])

	case 0x05:
		switch typeA {
		case 0x000:
			return def("rsubk")
		case 0x001:
			return def("cmp")
		case 0x003:
			return def("cmpu")
		}
		return nil

	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f:
		return def(arithmeticImmediate[op&0x07])

	case 0x10:
		switch typeA {
		case 0x000:
			return def("mul")
		case 0x001:
			return def("mulh")
		case 0x003:
			return def("mulhu")
		}
		return nil

	case 0x11:
		switch typeA {
		case 0x000:
			return def("bsrl")
		case 0x200:
			return def("bsra")
		case 0x400:
			return def("bsll")
		}
		return nil

	case 0x12:
		switch typeA {
		case 0x000:
			return def("idiv")
		case 0x002:
			return def("idivu")
		}
		return nil

	case 0x18:
		return def("muli")

	case 0x19:
		// the shift amount is in the low five bits. the rB field must be zero
		if (word>>11)&0x1f != 0 {
			return nil
		}
		switch (word >> 5) & 0x3f {
		case 0x00:
			return def("bsrli")
		case 0x10:
			return def("bsrai")
		case 0x20:
			return def("bslli")
		}
		return nil

	case 0x20:
		switch typeA {
		case 0x000:
			return def("or")
		case 0x400:
			return def("pcmpbf")
		}
		return nil

	case 0x21:
		if typeA == 0x000 {
			return def("and")
		}
		return nil

	case 0x22:
		switch typeA {
		case 0x000:
			return def("xor")
		case 0x400:
			return def("pcmpeq")
		}
		return nil

	case 0x23:
		switch typeA {
		case 0x000:
			return def("andn")
		case 0x400:
			return def("pcmpne")
		}
		return nil

	case 0x24:
		if rd == 0 {
			switch typeA {
			case 0x064:
				return def("wdc")
			case 0x068:
				return def("wic")
			}
			return nil
		}
		switch word & 0xffff {
		case 0x0001:
			return def("sra")
		case 0x0021:
			return def("src")
		case 0x0041:
			return def("srl")
		case 0x0060:
			return def("sext8")
		case 0x0061:
			return def("sext16")
		}
		return nil

	case 0x25:
		switch (word >> 14) & 0x3 {
		case 0x0:
			switch ra {
			case 0x00:
				return def("msrset")
			case 0x01:
				return def("msrclr")
			}
		case 0x2:
			if ra == 0 {
				return def("mfs")
			}
		case 0x3:
			if (word>>3)&0x1fff == 0x1800 && rd == 0 {
				return def("mts")
			}
		}
		return nil

	case 0x26, 0x2e:
		if op == 0x26 && typeA != 0 {
			return nil
		}
		m, ok := unconditional[ra]
		if !ok {
			return nil
		}
		// only the link variants have a destination register
		if int(ra)&branchLink != branchLink && rd != 0 {
			return nil
		}
		if op == 0x2e {
			m = immediateBranch(m)
		}
		return def(m)

	case 0x27, 0x2f:
		if op == 0x27 && typeA != 0 {
			return nil
		}
		c := rd & 0x0f
		if c >= uint32(len(conditions)) {
			return nil
		}
		m := "b" + conditions[c].name
		if op == 0x2f {
			m += "i"
		}
		if rd&0x10 == 0x10 {
			m += "d"
		}
		return def(m)

	case 0x28:
		return def("ori")
	case 0x29:
		return def("andi")
	case 0x2a:
		return def("xori")
	case 0x2b:
		return def("andni")

	case 0x2c:
		if rd == 0 && ra == 0 {
			return def("imm")
		}
		return nil

	case 0x2d:
		switch rd {
		case returnSubroutine:
			return def("rtsd")
		case returnInterrupt:
			return def("rtid")
		case returnBreak:
			return def("rtbd")
		case returnException:
			return def("rted")
		}
		return nil

	case 0x30, 0x31, 0x32, 0x34, 0x35, 0x36:
		if typeA != 0 {
			return nil
		}
		return def(loadStore[op&0x07])

	case 0x38, 0x39, 0x3a, 0x3c, 0x3d, 0x3e:
		return def(loadStore[op&0x07] + "i")
	}

	return nil
}

// mnemonics indexed by the low three bits of the opcode.
var arithmetic = [8]string{"add", "rsub", "addc", "rsubc", "addk", "rsubk", "addkc", "rsubkc"}
var arithmeticImmediate = [8]string{"addi", "rsubi", "addic", "rsubic", "addik", "rsubik", "addikc", "rsubikc"}
var loadStore = [8]string{"lbu", "lhu", "lw", "", "sb", "sh", "sw", ""}

// unconditional branch mnemonics indexed by the rA field.
var unconditional = map[uint32]string{
	0x00:                         "br",
	branchAbsolute:               "bra",
	branchBreak:                  "brk",
	branchDelay:                  "brd",
	branchDelay | branchLink:     "brld",
	branchDelay | branchAbsolute: "brad",
	branchDelay | branchAbsolute | branchLink: "brald",
}

// the immediate form of an unconditional branch mnemonic.
func immediateBranch(m string) string {
	if m[len(m)-1] == 'd' {
		return m[:len(m)-1] + "id"
	}
	return m + "i"
}
