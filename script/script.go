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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/logger"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns.
const (
	ScriptError = "script: %v"
	RunLimit    = "script: run() did not stop after %d cycles"
)

// DefaultLimit is the number of cycles a single call to run() is allowed
// before it raises an error.
const DefaultLimit = 10000000

// Script is a Lua environment attached to the hardware.
type Script struct {
	sys *hardware.System
	L   *lua.LState

	// the output of print() and of failed expectations
	output io.Writer

	// the number of cycles allowed for each call to run()
	Limit uint64

	expectations int
	failures     int
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the script is written to the io.Writer. A nil writer discards
// the output.
func NewScript(sys *hardware.System, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		sys:    sys,
		L:      lua.NewState(),
		output: output,
		Limit:  DefaultLimit,
	}

	for name, fn := range map[string]lua.LGFunction{
		"load":         scr.load,
		"poke":         scr.poke,
		"peek":         scr.peek,
		"reg":          scr.reg,
		"setreg":       scr.setreg,
		"run":          scr.run,
		"step":         scr.step,
		"cycles":       scr.cycles,
		"instructions": scr.instructions,
		"exit":         scr.exit,
		"breakpoint":   scr.breakpoint,
		"clear":        scr.clear,
		"restart":      scr.restart,
		"expect":       scr.expect,
		"print":        scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua environment. The Script can not be used after Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Expectations returns the number of expect() calls made by the script.
func (scr *Script) Expectations() int {
	return scr.expectations
}

// Failures returns the number of failed expectations.
func (scr *Script) Failures() int {
	return scr.failures
}

// Run the Lua script in the named file against the hardware. Returns the
// number of failed expectations.
func Run(sys *hardware.System, filename string, output io.Writer) (int, error) {
	scr := NewScript(sys, output)
	defer scr.Close()

	if err := scr.RunFile(filename); err != nil {
		return scr.failures, err
	}

	logger.Logf(logger.Allow, "script", "%s: %d expectations, %d failed", filename, scr.expectations, scr.failures)

	return scr.failures, nil
}

// lua numbers are float64 but all hardware values are 32bit. negative values
// are converted to their two's complement form
func checkWord(L *lua.LState, n int) uint32 {
	return uint32(int64(L.CheckNumber(n)))
}

// checkRegister accepts a register number or a register name
func checkRegister(L *lua.LState, n int) int {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return int(v)
	case lua.LString:
		r, ok := registers.Number(string(v))
		if !ok {
			L.ArgError(n, fmt.Sprintf("unknown register (%s)", v))
		}
		return r
	}
	L.TypeError(n, lua.LTNumber)
	return 0
}

func (scr *Script) load(L *lua.LState) int {
	filename := L.CheckString(1)
	origin := uint32(L.OptInt64(2, 0))

	f, err := os.Open(filename)
	if err != nil {
		L.RaiseError("load: %v", err)
		return 0
	}
	defer f.Close()

	n, err := scr.sys.LoadImage(f, origin)
	if err != nil {
		L.RaiseError("load: %v", err)
		return 0
	}

	L.Push(lua.LNumber(n))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkWord(L, 1)
	if L.GetTop() < 2 {
		L.ArgError(2, "value expected")
	}
	for i := 2; i <= L.GetTop(); i++ {
		if err := scr.sys.Mem.PokeWord(address, checkWord(L, i)); err != nil {
			L.RaiseError("poke: %v", err)
		}
		address += 4
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.sys.Mem.PeekWord(checkWord(L, 1))
	if err != nil {
		L.RaiseError("peek: %v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	v, err := scr.sys.CPU.DebugRegister(checkRegister(L, 1))
	if err != nil {
		L.RaiseError("reg: %v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	if err := scr.sys.CPU.SetDebugRegister(checkRegister(L, 1), checkWord(L, 2)); err != nil {
		L.RaiseError("setreg: %v", err)
	}
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	limit := scr.sys.Cycles() + scr.Limit

	st, err := scr.sys.Run(func() (bool, error) {
		if scr.sys.Cycles() >= limit {
			return false, curated.Errorf(RunLimit, scr.Limit)
		}
		return true, nil
	})
	if err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LString(st.String()))
	return 1
}

func (scr *Script) step(L *lua.LState) int {
	L.Push(lua.LString(scr.sys.Step().String()))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	if L.GetTop() == 0 {
		L.Push(lua.LNumber(scr.sys.Cycles()))
		return 1
	}
	n := L.CheckInt64(1)
	if n < 0 {
		L.ArgError(1, "negative cycle count")
	}
	L.Push(lua.LString(scr.sys.RunCycles(uint64(n)).String()))
	return 1
}

func (scr *Script) instructions(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sys.CPU.Instructions()))
	return 1
}

func (scr *Script) exit(L *lua.LState) int {
	if err := scr.sys.ProgramExit(checkWord(L, 1)); err != nil {
		L.RaiseError("exit: %v", err)
	}
	return 0
}

func (scr *Script) breakpoint(L *lua.LState) int {
	if err := scr.sys.SetBreakpoint(checkWord(L, 1)); err != nil {
		L.RaiseError("breakpoint: %v", err)
	}
	return 0
}

func (scr *Script) clear(L *lua.LState) int {
	if err := scr.sys.ClearBreakpoint(checkWord(L, 1)); err != nil {
		L.RaiseError("clear: %v", err)
	}
	return 0
}

func (scr *Script) restart(L *lua.LState) int {
	scr.sys.Restart()
	return 0
}

func (scr *Script) expect(L *lua.LState) int {
	scr.expectations++

	ok := L.ToBool(1)
	if !ok {
		scr.failures++

		where := strings.TrimSuffix(L.Where(1), ":")
		if msg := L.OptString(2, ""); msg != "" {
			fmt.Fprintf(scr.output, "FAIL: %s %s\n", where, msg)
		} else {
			fmt.Fprintf(scr.output, "FAIL: %s\n", where)
		}
	}

	L.Push(lua.LBool(ok))
	return 1
}

// print replaces the Lua print() function so that output goes to the script's
// io.Writer
func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
