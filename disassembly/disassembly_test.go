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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/disassembly"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/config"
	"github.com/fireworks-sim/fireworks/symbols"
	"github.com/fireworks-sim/fireworks/test"
)

var program = []uint32{
	0x30600005, // 00 addik r3, r0, 5
	0x30830001, // 04 addik r4, r3, 1
	0x80000000, // 08 or r0, r0, r0
	0xfc000000, // 0c illegal
}

func newSystem(t *testing.T) *hardware.System {
	t.Helper()
	sys, err := hardware.NewSystem(config.Default(), nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.LoadWords(0, program...))
	return sys
}

func TestWrite(t *testing.T) {
	sys := newSystem(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, disassembly.Write(w, sys.Mem, sys.Decoder, 0x00, 0x0c))
	test.ExpectEquality(t, w.String(), ""+
		"00000000  30600005  addik   r3, r0, 5\n"+
		"00000004  30830001  addik   r4, r3, 1\n"+
		"00000008  80000000  or      r0, r0, r0\n"+
		"0000000c  fc000000  illegal\n")

	// unaligned addresses are rounded down
	w.Clear()
	test.ExpectSuccess(t, disassembly.Write(w, sys.Mem, sys.Decoder, 0x05, 0x06))
	test.ExpectSuccess(t, w.Compare("00000004  30830001  addik   r4, r3, 1\n"))

	// invalid range
	test.ExpectFailure(t, disassembly.Write(w, sys.Mem, sys.Decoder, 0x08, 0x04))

	// the disassembly stops at the first unmapped address
	w.Clear()
	err := disassembly.Write(w, sys.Mem, sys.Decoder, 0xfffc, 0x10004)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.DisasmError))
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 1)
}

func TestMarkers(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.ProgramExit(0x08))
	test.DemandSuccess(t, sys.SetBreakpoint(0x04))

	dsm := disassembly.NewDisassembly(sys.Mem, sys.Decoder)

	e, err := dsm.Entry(0x04)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, e.Breakpoint)
	test.ExpectFailure(t, e.Exit)
	test.ExpectEquality(t, e.Mnemonic, "addik")
	test.ExpectEquality(t, e.String(), "00000004  30830001  addik   r4, r3, 1 <break>")

	e, err = dsm.Entry(0x08)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, e.Breakpoint)
	test.ExpectSuccess(t, e.Exit)
	test.ExpectEquality(t, e.String(), "00000008  80000000  or      r0, r0, r0 <exit>")
}

func TestSymbols(t *testing.T) {
	sys := newSystem(t)

	tab := symbols.NewTable()
	test.DemandSuccess(t, tab.Read(strings.NewReader("start 0 3\nnext 4 f\n")))

	dsm := disassembly.NewDisassembly(sys.Mem, sys.Decoder)
	dsm.Symbols = tab

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, dsm.Write(w, 0x00, 0x08))
	test.ExpectEquality(t, w.String(), ""+
		"start:\n"+
		"00000000  30600005  addik   r3, r0, 5\n"+
		"next:\n"+
		"00000004  30830001  addik   r4, r3, 1\n"+
		"00000008  80000000  or      r0, r0, r0\n")
}

func TestTracer(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.ProgramExit(0x08))

	tab := symbols.NewTable()
	test.DemandSuccess(t, tab.Read(strings.NewReader("start 0 f\n")))

	w := &test.CompareWriter{}
	trc := disassembly.NewTracer(w)
	trc.Symbols = tab
	sys.AddObserver(trc)

	sys.Continue()
	test.ExpectEquality(t, trc.Lines(), 2)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "  00000000  addik   r3, r0, 5  <start>"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "  00000004  addik   r4, r3, 1  <start+0x4>"))
}
