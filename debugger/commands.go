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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/logger"
	"github.com/fireworks-sim/fireworks/paths"
)

// command is a single entry in the command table
type command struct {
	name string

	// argument summary shown in the help text
	args string

	// number of arguments accepted. a maxArgs of -1 means no limit
	minArgs int
	maxArgs int

	// the type of argument completed by tab completion
	complete completion

	fn func(dbg *Debugger, tk *tokens) error
}

func (cmd *command) usage() string {
	if cmd.args == "" {
		return cmd.name
	}
	return fmt.Sprintf("%s %s", cmd.name, cmd.args)
}

// the argument type of a command for the purposes of tab completion
type completion int

const (
	completeNone completion = iota
	completeAddress
	completeRegister
	completeKeyword
)

// List of commands.
const (
	cmdBreak        = "BREAK"
	cmdClear        = "CLEAR"
	cmdContinue     = "CONTINUE"
	cmdCPU          = "CPU"
	cmdCycles       = "CYCLES"
	cmdDisasm       = "DISASM"
	cmdExit         = "EXIT"
	cmdHelp         = "HELP"
	cmdInstructions = "INSTRUCTIONS"
	cmdList         = "LIST"
	cmdLoad         = "LOAD"
	cmdLog          = "LOG"
	cmdMemviz       = "MEMVIZ"
	cmdPeek         = "PEEK"
	cmdPipeline     = "PIPELINE"
	cmdPoke         = "POKE"
	cmdQuit         = "QUIT"
	cmdReg          = "REG"
	cmdRegs         = "REGS"
	cmdReset        = "RESET"
	cmdRestart      = "RESTART"
	cmdRunTo        = "RUNTO"
	cmdStep         = "STEP"
	cmdSymbol       = "SYMBOL"
	cmdTrace        = "TRACE"
)

// short forms of the most common commands. these take priority over prefix
// matching
var aliases = map[string]string{
	"B": cmdBreak,
	"C": cmdContinue,
	"S": cmdStep,
	"Q": cmdQuit,
	"R": cmdRegs,
	"D": cmdDisasm,
}

var commands map[string]*command

// sorted list of command names
var commandNames []string

func init() {
	list := []*command{
		{name: cmdBreak, args: "<address>", minArgs: 1, maxArgs: 1, complete: completeAddress, fn: (*Debugger).cmdBreak},
		{name: cmdClear, args: "<address> | ALL", minArgs: 1, maxArgs: 1, complete: completeAddress, fn: (*Debugger).cmdClear},
		{name: cmdContinue, fn: (*Debugger).cmdContinue},
		{name: cmdCPU, fn: (*Debugger).cmdCPU},
		{name: cmdCycles, args: "<n>", minArgs: 1, maxArgs: 1, fn: (*Debugger).cmdCycles},
		{name: cmdDisasm, args: "[<begin> [<end>]]", maxArgs: 2, complete: completeAddress, fn: (*Debugger).cmdDisasm},
		{name: cmdExit, args: "<address>", minArgs: 1, maxArgs: 1, complete: completeAddress, fn: (*Debugger).cmdExit},
		{name: cmdHelp, args: "[<command>]", maxArgs: 1, complete: completeKeyword, fn: (*Debugger).cmdHelp},
		{name: cmdInstructions, args: "<n>", minArgs: 1, maxArgs: 1, fn: (*Debugger).cmdInstructions},
		{name: cmdList, fn: (*Debugger).cmdList},
		{name: cmdLoad, args: "<file> [<origin>]", minArgs: 1, maxArgs: 2, fn: (*Debugger).cmdLoad},
		{name: cmdLog, args: "[LAST [<n>] | CLEAR | ECHO ON|OFF]", maxArgs: 2, fn: (*Debugger).cmdLog},
		{name: cmdMemviz, args: "[<file>]", maxArgs: 1, fn: (*Debugger).cmdMemviz},
		{name: cmdPeek, args: "<address> [<words>]", minArgs: 1, maxArgs: 2, complete: completeAddress, fn: (*Debugger).cmdPeek},
		{name: cmdPipeline, fn: (*Debugger).cmdPipeline},
		{name: cmdPoke, args: "<address> <value> [<value>...]", minArgs: 2, maxArgs: -1, complete: completeAddress, fn: (*Debugger).cmdPoke},
		{name: cmdQuit, fn: (*Debugger).cmdQuit},
		{name: cmdReg, args: "<register> [<value>]", minArgs: 1, maxArgs: 2, complete: completeRegister, fn: (*Debugger).cmdReg},
		{name: cmdRegs, fn: (*Debugger).cmdRegs},
		{name: cmdReset, fn: (*Debugger).cmdReset},
		{name: cmdRestart, fn: (*Debugger).cmdRestart},
		{name: cmdRunTo, args: "<address>", minArgs: 1, maxArgs: 1, complete: completeAddress, fn: (*Debugger).cmdRunTo},
		{name: cmdStep, args: "[<n>]", maxArgs: 1, fn: (*Debugger).cmdStep},
		{name: cmdSymbol, args: "<name> | <address> | LIST", minArgs: 1, maxArgs: 1, complete: completeAddress, fn: (*Debugger).cmdSymbol},
		{name: cmdTrace, args: "[ON|OFF]", maxArgs: 1, fn: (*Debugger).cmdTrace},
	}

	commands = make(map[string]*command)
	for _, c := range list {
		commands[c.name] = c
		commandNames = append(commandNames, c.name)
	}
	sort.Strings(commandNames)
}

// lookupCommand finds the command for the name. the name can be an alias or
// any unique prefix of a command
func lookupCommand(name string) (*command, error) {
	name = strings.ToUpper(name)

	if c, ok := commands[name]; ok {
		return c, nil
	}
	if a, ok := aliases[name]; ok {
		return commands[a], nil
	}

	var match *command
	for _, n := range commandNames {
		if strings.HasPrefix(n, name) {
			if match != nil {
				return nil, curated.Errorf(AmbiguousInput, name)
			}
			match = commands[n]
		}
	}
	if match == nil {
		return nil, curated.Errorf(UnknownCommand, name)
	}

	return match, nil
}

// onOff parses an optional ON or OFF argument. with no argument the current
// setting is toggled
func onOff(tk *tokens, current bool) (bool, error) {
	s, ok := tk.get()
	if !ok {
		return !current, nil
	}
	switch strings.ToUpper(s) {
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	}
	return current, fmt.Errorf("expected ON or OFF (%s)", s)
}

func (dbg *Debugger) cmdBreak(tk *tokens) error {
	s, _ := tk.get()
	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdBreak, err)
	}
	if err := dbg.sys.SetBreakpoint(address); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint set at %08x", address)
	return nil
}

func (dbg *Debugger) cmdClear(tk *tokens) error {
	s, _ := tk.get()

	if strings.ToUpper(s) == "ALL" {
		for _, a := range dbg.sys.Breakpoints() {
			if err := dbg.sys.ClearBreakpoint(a); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}

	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdClear, err)
	}
	if err := dbg.sys.ClearBreakpoint(address); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint cleared at %08x", address)
	return nil
}

func (dbg *Debugger) cmdList(_ *tokens) error {
	bps := dbg.sys.Breakpoints()
	if len(bps) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return nil
	}
	for _, a := range bps {
		if l := dbg.tab.Label(a); l != "" {
			dbg.printLine(terminal.StyleFeedback, "%08x <%s>", a, l)
		} else {
			dbg.printLine(terminal.StyleFeedback, "%08x", a)
		}
	}
	return nil
}

func (dbg *Debugger) cmdExit(tk *tokens) error {
	s, _ := tk.get()
	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdExit, err)
	}
	if err := dbg.sys.ProgramExit(address); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "program exit at %08x", address)
	return nil
}

func (dbg *Debugger) cmdContinue(_ *tokens) error {
	dbg.report(dbg.run(dbg.sys.Continue))
	return nil
}

// count parses the optional count argument of a run command
func count(tk *tokens, name string) (uint64, error) {
	s, ok := tk.get()
	if !ok {
		return 1, nil
	}
	v, err := parseValue(s)
	if err != nil {
		return 0, curated.Errorf(InvalidArgs, name, err)
	}
	return uint64(v), nil
}

func (dbg *Debugger) cmdCycles(tk *tokens) error {
	n, err := count(tk, cmdCycles)
	if err != nil {
		return err
	}
	dbg.report(dbg.run(func() execution.RunStatus {
		return dbg.sys.RunCycles(n)
	}))
	return nil
}

func (dbg *Debugger) cmdInstructions(tk *tokens) error {
	n, err := count(tk, cmdInstructions)
	if err != nil {
		return err
	}
	dbg.report(dbg.run(func() execution.RunStatus {
		return dbg.sys.RunInstructions(n)
	}))
	return nil
}

func (dbg *Debugger) cmdStep(tk *tokens) error {
	n, err := count(tk, cmdStep)
	if err != nil {
		return err
	}

	st := dbg.run(func() execution.RunStatus {
		st := dbg.sys.Status()
		for i := uint64(0); i < n; i++ {
			st = dbg.sys.Step()
			if st != execution.RunNormal || dbg.interrupted.Load() {
				break
			}
		}
		return st
	})

	dbg.report(st)
	if st == execution.RunNormal {
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.stage(instructions.ExecuteStage))
	}
	return nil
}

func (dbg *Debugger) cmdRunTo(tk *tokens) error {
	s, _ := tk.get()
	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdRunTo, err)
	}
	dbg.report(dbg.run(func() execution.RunStatus {
		return dbg.sys.RunToAddress(address)
	}))
	return nil
}

func (dbg *Debugger) cmdRegs(_ *tokens) error {
	for _, l := range strings.Split(strings.TrimSuffix(dbg.sys.CPU.Registers().String(), "\n"), "\n") {
		dbg.printLine(terminal.StyleInstrument, "%s", l)
	}
	return nil
}

func (dbg *Debugger) cmdReg(tk *tokens) error {
	s, _ := tk.get()
	n, ok := registers.Number(s)
	if !ok {
		return curated.Errorf(InvalidArgs, cmdReg, fmt.Sprintf("unknown register (%s)", s))
	}

	if v, ok := tk.get(); ok {
		value, err := parseValue(v)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdReg, err)
		}
		if err := dbg.sys.CPU.SetDebugRegister(n, value); err != nil {
			return err
		}
	}

	v, err := dbg.sys.CPU.DebugRegister(n)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleInstrument, "%s = %08x (%d)", registers.Label(n), v, int32(v))
	return nil
}

func (dbg *Debugger) cmdCPU(_ *tokens) error {
	st := dbg.sys.CPU.Status()
	retired := dbg.sys.CPU.Instructions()

	cpi := 0.0
	if retired > 0 {
		cpi = float64(dbg.sys.Cycles()) / float64(retired)
	}

	dbg.printLine(terminal.StyleInstrument, "status        %s", dbg.sys.Status())
	dbg.printLine(terminal.StyleInstrument, "cycles        %d", dbg.sys.Cycles())
	dbg.printLine(terminal.StyleInstrument, "instructions  %d (%.3f cpi)", retired, cpi)
	dbg.printLine(terminal.StyleInstrument, "next pc       %08x", st.NextPC)
	if st.ImmFlag {
		dbg.printLine(terminal.StyleInstrument, "imm           %08x", st.Imm)
	} else {
		dbg.printLine(terminal.StyleInstrument, "imm           -")
	}
	dbg.printLine(terminal.StyleInstrument, "interrupts    enabled=%v line=%v", st.InterruptEnable, dbg.sys.Interrupt())
	dbg.printLine(terminal.StyleInstrument, "in progress   exception=%v break=%v", st.ExceptionInProgress, st.BreakInProgress)
	return nil
}

// stage returns a description of the instruction in the pipeline stage
func (dbg *Debugger) stage(stg instructions.Stage) string {
	ins := dbg.sys.CPU.StageInstruction(stg)
	if instructions.IsEmpty(ins) {
		return fmt.Sprintf("%-8s -", stg)
	}

	s := fmt.Sprintf("%-8s %08x %s", stg, ins.PC(), instructions.Disassemble(ins))
	if l := dbg.tab.Label(ins.PC()); l != "" {
		s = fmt.Sprintf("%s <%s>", s, l)
	}
	return s
}

func (dbg *Debugger) cmdPipeline(_ *tokens) error {
	for _, stg := range []instructions.Stage{instructions.ExecuteStage, instructions.DecodeStage, instructions.FetchStage} {
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.stage(stg))
	}
	return nil
}

func (dbg *Debugger) cmdPeek(tk *tokens) error {
	s, _ := tk.get()
	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdPeek, err)
	}
	address &^= 0x03

	n, err := count(tk, cmdPeek)
	if err != nil {
		return err
	}

	for i := uint64(0); i < n; i++ {
		v, err := dbg.sys.Mem.PeekWord(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "%08x: %08x", address, v)
		address += 4
	}
	return nil
}

func (dbg *Debugger) cmdPoke(tk *tokens) error {
	s, _ := tk.get()
	address, err := dbg.parseAddress(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdPoke, err)
	}
	address &^= 0x03

	for s, ok := tk.get(); ok; s, ok = tk.get() {
		v, err := parseValue(s)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdPoke, err)
		}
		if err := dbg.sys.Mem.PokeWord(address, v); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "%08x: %08x", address, v)
		address += 4
	}
	return nil
}

// the number of instructions shown by DISASM when no end address is given
const disasmLen = 8

func (dbg *Debugger) cmdDisasm(tk *tokens) error {
	var begin uint32
	if s, ok := tk.get(); ok {
		var err error
		begin, err = dbg.parseAddress(s)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdDisasm, err)
		}
	} else {
		begin, _ = dbg.sys.CPU.DebugRegister(registers.PC)
	}

	end := begin + (disasmLen-1)*4
	if s, ok := tk.get(); ok {
		var err error
		end, err = dbg.parseAddress(s)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdDisasm, err)
		}
	}

	w := dbg.writer(terminal.StyleDisasm)
	defer w.flush()
	return dbg.dsm.Write(w, begin, end)
}

func (dbg *Debugger) cmdTrace(tk *tokens) error {
	on, err := onOff(tk, dbg.tracing())
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdTrace, err)
	}

	dbg.sys.RemoveObserver(dbg.tracer)
	dbg.tracerAttached = on
	if on {
		dbg.sys.AddObserver(dbg.tracer)
		dbg.printLine(terminal.StyleFeedback, "tracing on")
	} else {
		dbg.printLine(terminal.StyleFeedback, "tracing off")
	}
	return nil
}

// tracing returns true if the tracer is attached to the hardware
func (dbg *Debugger) tracing() bool {
	return dbg.tracerAttached
}

func (dbg *Debugger) cmdLog(tk *tokens) error {
	s, ok := tk.get()
	if !ok {
		w := dbg.writer(terminal.StyleLog)
		if !logger.Write(w) {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		}
		return nil
	}

	switch strings.ToUpper(s) {
	case "LAST":
		n, err := count(tk, cmdLog)
		if err != nil {
			return err
		}
		logger.Tail(dbg.writer(terminal.StyleLog), int(n))
	case "CLEAR":
		logger.Clear()
	case "ECHO":
		on, err := onOff(tk, dbg.logEcho)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdLog, err)
		}
		dbg.logEcho = on
		if on {
			logger.SetEcho(dbg.writer(terminal.StyleLog), false)
		} else {
			logger.SetEcho(nil, false)
		}
	default:
		return curated.Errorf(InvalidArgs, cmdLog, fmt.Sprintf("unknown option (%s)", s))
	}
	return nil
}

func (dbg *Debugger) cmdLoad(tk *tokens) error {
	filename, _ := tk.get()

	var origin uint32
	if s, ok := tk.get(); ok {
		var err error
		origin, err = parseValue(s)
		if err != nil {
			return curated.Errorf(InvalidArgs, cmdLoad, err)
		}
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdLoad, err)
	}
	defer f.Close()

	n, err := dbg.sys.LoadImage(f, origin)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "loaded %d words at %08x", n, origin)
	return nil
}

func (dbg *Debugger) cmdMemviz(tk *tokens) error {
	filename, ok := tk.get()
	if !ok {
		filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", "cpu"))
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdMemviz, err)
	}
	defer f.Close()

	memviz.Map(f, dbg.sys.CPU)
	dbg.printLine(terminal.StyleFeedback, "cpu structure written to %s", filename)

	return nil
}

func (dbg *Debugger) cmdSymbol(tk *tokens) error {
	s, _ := tk.get()

	if strings.ToUpper(s) == "LIST" {
		if dbg.tab.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "no symbols")
			return nil
		}
		w := dbg.writer(terminal.StyleFeedback)
		dbg.tab.List(w)
		w.flush()
		return nil
	}

	if fn, ok := dbg.tab.Search(s); ok {
		dbg.printLine(terminal.StyleFeedback, "%s %08x to %08x", fn.Name, fn.Begin, fn.End)
		return nil
	}

	address, err := parseValue(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdSymbol, fmt.Sprintf("no symbol (%s)", s))
	}
	l := dbg.tab.Label(address)
	if l == "" {
		return curated.Errorf(InvalidArgs, cmdSymbol, fmt.Sprintf("no symbol for address (%08x)", address))
	}
	dbg.printLine(terminal.StyleFeedback, "%08x <%s>", address, l)
	return nil
}

func (dbg *Debugger) cmdReset(_ *tokens) error {
	dbg.sys.Reset()
	dbg.printLine(terminal.StyleFeedback, "hardware reset. memory and breakpoints cleared")
	return nil
}

func (dbg *Debugger) cmdRestart(_ *tokens) error {
	dbg.sys.Restart()
	dbg.printLine(terminal.StyleFeedback, "program restarted")
	return nil
}

func (dbg *Debugger) cmdQuit(_ *tokens) error {
	dbg.running = false
	return nil
}
