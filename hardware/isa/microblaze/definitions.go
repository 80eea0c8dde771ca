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

import "sort"

// every instruction in the instruction set, keyed by mnemonic.
var definitions = buildDefinitions()

func buildDefinitions() map[string]*definition {
	defs := make(map[string]*definition)

	put := func(def *definition) {
		if _, ok := defs[def.mnemonic]; ok {
			panic("microblaze: duplicate definition: " + def.mnemonic)
		}
		defs[def.mnemonic] = def
	}

	// add and reverse subtract. the variant suffixes are in the order used by
	// the assembler
	for variant := uint32(0); variant < 8; variant++ {
		m := "add"
		if variant&arithSubtract == arithSubtract {
			m = "rsub"
		}
		var suffix string
		if variant&arithKeep == arithKeep {
			suffix += "k"
		}
		if variant&arithCarryIn == arithCarryIn {
			suffix += "c"
		}
		put(&definition{mnemonic: m + suffix, format: formatDAB, effect: add(variant)})
		put(&definition{mnemonic: m + "i" + suffix, format: formatDAI, immediate: true, effect: add(variant)})
	}

	put(&definition{mnemonic: "cmp", format: formatDAB, effect: compare(false)})
	put(&definition{mnemonic: "cmpu", format: formatDAB, effect: compare(true)})

	put(&definition{mnemonic: "mul", format: formatDAB, effect: multiply(productLow)})
	put(&definition{mnemonic: "mulh", format: formatDAB, effect: multiply(productHighSigned)})
	put(&definition{mnemonic: "mulhu", format: formatDAB, effect: multiply(productHighUnsigned)})
	put(&definition{mnemonic: "muli", format: formatDAI, immediate: true, effect: multiply(productLow)})

	put(&definition{mnemonic: "idiv", format: formatDAB, effect: divide(false)})
	put(&definition{mnemonic: "idivu", format: formatDAB, effect: divide(true)})

	put(&definition{mnemonic: "bsrl", format: formatDAB, effect: barrelShift(barrelRightLogical)})
	put(&definition{mnemonic: "bsra", format: formatDAB, effect: barrelShift(barrelRightArithmetic)})
	put(&definition{mnemonic: "bsll", format: formatDAB, effect: barrelShift(barrelLeft)})

	// the barrel shift immediate instructions do not combine with an imm
	// prefix. the immediate flag selects the shift amount from the
	// instruction word
	put(&definition{mnemonic: "bsrli", format: formatDAImm5, immediate: true, effect: barrelShift(barrelRightLogical)})
	put(&definition{mnemonic: "bsrai", format: formatDAImm5, immediate: true, effect: barrelShift(barrelRightArithmetic)})
	put(&definition{mnemonic: "bslli", format: formatDAImm5, immediate: true, effect: barrelShift(barrelLeft)})

	put(&definition{mnemonic: "sra", format: formatDA, effect: shift(shiftInSign)})
	put(&definition{mnemonic: "src", format: formatDA, effect: shift(shiftInCarry)})
	put(&definition{mnemonic: "srl", format: formatDA, effect: shift(shiftInZero)})
	put(&definition{mnemonic: "sext8", format: formatDA, effect: signExtend8})
	put(&definition{mnemonic: "sext16", format: formatDA, effect: signExtend16})

	put(&definition{mnemonic: "or", format: formatDAB, effect: logical(or)})
	put(&definition{mnemonic: "and", format: formatDAB, effect: logical(and)})
	put(&definition{mnemonic: "xor", format: formatDAB, effect: logical(xor)})
	put(&definition{mnemonic: "andn", format: formatDAB, effect: logical(andNot)})
	put(&definition{mnemonic: "ori", format: formatDAI, immediate: true, effect: logical(or)})
	put(&definition{mnemonic: "andi", format: formatDAI, immediate: true, effect: logical(and)})
	put(&definition{mnemonic: "xori", format: formatDAI, immediate: true, effect: logical(xor)})
	put(&definition{mnemonic: "andni", format: formatDAI, immediate: true, effect: logical(andNot)})
	put(&definition{mnemonic: "pcmpbf", format: formatDAB, effect: logical(patternByteFind)})
	put(&definition{mnemonic: "pcmpeq", format: formatDAB, effect: logical(patternEqual)})
	put(&definition{mnemonic: "pcmpne", format: formatDAB, effect: logical(patternNotEqual)})

	put(&definition{mnemonic: "imm", format: formatI, effect: prefix})
	put(&definition{mnemonic: "mfs", format: formatMfs, effect: moveFromSpecial})
	put(&definition{mnemonic: "mts", format: formatMts, effect: moveToSpecial})
	put(&definition{mnemonic: "msrset", format: formatMsr, effect: modifyStatus(true)})
	put(&definition{mnemonic: "msrclr", format: formatMsr, effect: modifyStatus(false)})
	put(&definition{mnemonic: "wdc", format: formatAB, effect: cacheMaintenance})
	put(&definition{mnemonic: "wic", format: formatAB, effect: cacheMaintenance})

	// unconditional branches
	for _, b := range []struct {
		variant int
		name    string
	}{
		{0, "br"},
		{branchAbsolute, "bra"},
		{branchDelay, "brd"},
		{branchDelay | branchLink, "brld"},
		{branchDelay | branchAbsolute, "brad"},
		{branchDelay | branchAbsolute | branchLink, "brald"},
		{branchBreak, "brk"},
	} {
		reg := formatB
		imm := formatI
		if b.variant&branchLink == branchLink {
			reg = formatDB
			imm = formatDI
			if b.variant&branchAbsolute == branchAbsolute {
				imm = formatDAbsolute
			}
		} else if b.variant&branchAbsolute == branchAbsolute {
			imm = formatAbsolute
		}

		put(&definition{mnemonic: b.name, format: reg, effect: branch(b.variant)})
		put(&definition{mnemonic: immediateBranch(b.name), format: imm, immediate: true, effect: branch(b.variant)})
	}

	// conditional branches
	for _, c := range conditions {
		put(&definition{mnemonic: "b" + c.name, format: formatAB, condition: c.test, effect: conditional(false)})
		put(&definition{mnemonic: "b" + c.name + "d", format: formatAB, condition: c.test, effect: conditional(true)})
		put(&definition{mnemonic: "b" + c.name + "i", format: formatAI, immediate: true, condition: c.test, effect: conditional(false)})
		put(&definition{mnemonic: "b" + c.name + "id", format: formatAI, immediate: true, condition: c.test, effect: conditional(true)})
	}

	put(&definition{mnemonic: "rtsd", format: formatAI, immediate: true, effect: ret(returnSubroutine)})
	put(&definition{mnemonic: "rtid", format: formatAI, immediate: true, effect: ret(returnInterrupt)})
	put(&definition{mnemonic: "rtbd", format: formatAI, immediate: true, effect: ret(returnBreak)})
	put(&definition{mnemonic: "rted", format: formatAI, immediate: true, effect: ret(returnException)})

	// loads and stores
	for _, ls := range []struct {
		name  string
		w     width
		store bool
	}{
		{"lbu", widthByte, false},
		{"lhu", widthHalf, false},
		{"lw", widthWord, false},
		{"sb", widthByte, true},
		{"sh", widthHalf, true},
		{"sw", widthWord, true},
	} {
		put(&definition{mnemonic: ls.name, format: formatDAB, effect: access(ls.w, ls.store)})
		put(&definition{mnemonic: ls.name + "i", format: formatDAI, immediate: true, effect: access(ls.w, ls.store)})
	}

	return defs
}

// IsMnemonic returns true if the mnemonic is part of the instruction set.
func IsMnemonic(mnemonic string) bool {
	_, ok := definitions[mnemonic]
	return ok
}

func isConditional(mnemonic string) bool {
	def, ok := definitions[mnemonic]
	return ok && def.condition != nil
}

// Mnemonics returns a sorted list of every mnemonic in the instruction set.
func Mnemonics() []string {
	m := make([]string, 0, len(definitions))
	for k := range definitions {
		m = append(m, k)
	}
	sort.Strings(m)
	return m
}
