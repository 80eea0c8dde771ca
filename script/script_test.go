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

package script_test

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/config"
	"github.com/fireworks-sim/fireworks/script"
	"github.com/fireworks-sim/fireworks/test"
)

func typeA(op uint32, rd uint32, ra uint32, rb uint32, fn uint32) uint32 {
	return op<<26 | rd<<21 | ra<<16 | rb<<11 | fn&0x7ff
}

func typeB(op uint32, rd uint32, ra uint32, imm int) uint32 {
	return op<<26 | rd<<21 | ra<<16 | uint32(imm)&0xffff
}

var nop = typeA(0x20, 0, 0, 0, 0)

// sum the numbers 1 to 5 and store the result at 0x100
var loop = []uint32{
	typeB(0x0c, 3, 0, 5),     // 00 addik r3, r0, 5
	typeB(0x0c, 4, 0, 0),     // 04 addik r4, r0, 0
	typeA(0x04, 4, 4, 3, 0),  // 08 addk r4, r4, r3
	typeB(0x0c, 3, 3, -1),    // 0c addik r3, r3, -1
	typeB(0x2f, 0x11, 3, -8), // 10 bneid r3, loop
	nop,                      // 14 delay slot
	typeB(0x3e, 4, 0, 0x100), // 18 swi r4, r0, 0x100
	nop,                      // 1c exit
}

// writes the program to a binary image in a temporary directory
func image(t *testing.T, program []uint32) string {
	t.Helper()

	b := make([]byte, 0, len(program)*4)
	for _, w := range program {
		b = binary.BigEndian.AppendUint32(b, w)
	}

	filename := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(filename, b, 0o644))

	return filename
}

func newScript(t *testing.T, output io.Writer) *script.Script {
	t.Helper()
	sys, err := hardware.NewSystem(config.Default(), nil, nil)
	test.DemandSuccess(t, err)
	scr := script.NewScript(sys, output)
	t.Cleanup(scr.Close)
	return scr
}

func TestProgram(t *testing.T) {
	filename := image(t, loop)

	out := &test.CompareWriter{}
	scr := newScript(t, out)

	test.ExpectSuccess(t, scr.RunString(`
		n = load("`+filepath.ToSlash(filename)+`", 0)
		expect(n == 8, "image length")
		exit(0x1c)
		expect(run() == "stopped", "run status")
		expect(reg("r4") == 15, "sum")
		expect(reg(3) == 0, "counter")
		expect(peek(0x100) == 15, "stored value")
		expect(instructions() > 8)
		expect(cycles() > 8)
	`))
	test.ExpectEquality(t, scr.Expectations(), 7)
	test.ExpectEquality(t, scr.Failures(), 0)
	test.ExpectEquality(t, out.String(), "")
}

func TestFailures(t *testing.T) {
	out := &test.CompareWriter{}
	scr := newScript(t, out)

	test.ExpectSuccess(t, scr.RunString(`
		setreg("r5", 10)
		expect(reg("r5") == 10, "setreg")
		expect(reg("r5") == 11, "wrong value")
		expect(false)
	`))
	test.ExpectEquality(t, scr.Expectations(), 3)
	test.ExpectEquality(t, scr.Failures(), 2)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "FAIL: "))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "wrong value"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "FAIL: "))
}

func TestBreakpoint(t *testing.T) {
	out := &test.CompareWriter{}
	scr := newScript(t, out)

	test.ExpectSuccess(t, scr.RunString(`
		poke(0, `+join(loop)+`)
		exit(0x1c)
		breakpoint(0x18)
		expect(run() == "breakpoint", "breakpoint")
		expect(reg("r4") == 15)
		expect(peek(0x100) == 0, "store not yet executed")
		clear(0x18)
		expect(run() == "stopped", "stopped")
		expect(peek(0x100) == 15, "store executed")

		restart()
		expect(cycles() == 0)
		expect(step() == "normal")
		expect(instructions() == 1)
		expect(cycles(2) == "normal")
		expect(cycles() > 2)
	`))
	test.ExpectEquality(t, scr.Failures(), 0)
	test.ExpectEquality(t, out.String(), "")
}

func TestPrint(t *testing.T) {
	out := &test.CompareWriter{}
	scr := newScript(t, out)

	test.ExpectSuccess(t, scr.RunString(`print("hello", 1)`))
	test.ExpectEquality(t, out.String(), "hello\t1\n")
}

func TestErrors(t *testing.T) {
	scr := newScript(t, nil)

	// unmapped address
	err := scr.RunString(`peek(0x10000)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	test.ExpectFailure(t, scr.RunString(`reg("wibble")`))
	test.ExpectFailure(t, scr.RunString(`load("non_existent_file")`))
	test.ExpectFailure(t, scr.RunString(`this is not lua`))

	// the program never stops
	scr.Limit = 1000
	test.ExpectFailure(t, scr.RunString(`run()`))
}

func TestRun(t *testing.T) {
	program := image(t, loop)

	filename := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(filename, []byte(`
		load("`+filepath.ToSlash(program)+`")
		exit(0x1c)
		run()
		expect(reg("r4") == 15)
		expect(reg("r4") == 16)
	`), 0o644))

	sys, err := hardware.NewSystem(config.Default(), nil, nil)
	test.DemandSuccess(t, err)

	failures, err := script.Run(sys, filename, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, failures, 1)

	_, err = script.Run(sys, "non_existent_script.lua", nil)
	test.ExpectFailure(t, err)
}

// join the words as a list of lua arguments
func join(words []uint32) string {
	s := make([]string, len(words))
	for i, w := range words {
		s[i] = strconv.FormatUint(uint64(w), 10)
	}
	return strings.Join(s, ", ")
}
