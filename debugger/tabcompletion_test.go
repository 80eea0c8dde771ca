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

package debugger

import (
	"testing"

	"github.com/fireworks-sim/fireworks/symbols"
	"github.com/fireworks-sim/fireworks/test"
)

func TestTabCompletion(t *testing.T) {
	tab := symbols.NewTable()
	test.DemandSuccess(t, tab.Add(symbols.Function{Name: "main", Begin: 0x00, End: 0x1f}))
	test.DemandSuccess(t, tab.Add(symbols.Function{Name: "memcpy", Begin: 0x20, End: 0x3f}))

	tc := newTabCompletion(&Debugger{tab: tab})

	test.ExpectEquality(t, tc.Complete("br"), "BREAK ")

	// cycle through the alternatives and back to the first
	completion := tc.Complete("RE")
	test.ExpectEquality(t, completion, "REG ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "REGS ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "RESET ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "RESTART ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "REG ")

	tc.Reset()
	completion = tc.Complete("BREAK m")
	test.ExpectEquality(t, completion, "BREAK main ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "BREAK memcpy ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("REG p"), "REG pc ")
	test.ExpectEquality(t, tc.Complete("HELP dis"), "HELP DISASM ")

	// the completer preserves whitespace and earlier commands
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("LIST;  b  ma"), "LIST;  b  main ")
	test.ExpectEquality(t, tc.Complete("LIST; CO"), "LIST; CONTINUE ")

	// no completion
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("WIBBLE x"), "WIBBLE x")
	test.ExpectEquality(t, tc.Complete("STEP 1"), "STEP 1")
	test.ExpectEquality(t, tc.Complete("BREAK x"), "BREAK x")
}

func TestLookupCommand(t *testing.T) {
	cmd, err := lookupCommand("s")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.name, cmdStep)

	cmd, err = lookupCommand("reg")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.name, cmdReg)

	cmd, err = lookupCommand("PIP")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.name, cmdPipeline)

	_, err = lookupCommand("CL")
	test.ExpectSuccess(t, err)

	_, err = lookupCommand("RES")
	test.ExpectFailure(t, err)
	_, err = lookupCommand("WIBBLE")
	test.ExpectFailure(t, err)
}
