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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/disassembly"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/hardware/cpu/registers"
	"github.com/fireworks-sim/fireworks/logger"
	"github.com/fireworks-sim/fireworks/symbols"
)

// Error patterns.
const (
	CommandError   = "%v"
	UnknownCommand = "unrecognised command (%s)"
	AmbiguousInput = "ambiguous command (%s)"
	InvalidArgs    = "%s: %s"
	ScriptError    = "debugger: script: %v"
)

// Debugger is the basic debugging frontend for the simulated hardware.
type Debugger struct {
	sys  *hardware.System
	term terminal.Terminal

	// symbols table. never nil but may be empty
	tab *symbols.Table

	dsm *disassembly.Disassembly

	// the tracer is attached to the hardware while tracing is on
	tracer         *disassembly.Tracer
	tracerAttached bool

	// log entries are echoed to the terminal as they are added
	logEcho bool

	// the events checked by the terminal while waiting for input
	events terminal.ReadEvents

	// set by the interrupt watcher while a run command is in progress
	interrupted atomic.Bool

	// the input loop continues while running is true
	running bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The symbols table can be nil.
func NewDebugger(sys *hardware.System, term terminal.Terminal, tab *symbols.Table) (*Debugger, error) {
	if tab == nil {
		tab = symbols.NewTable()
	}

	dbg := &Debugger{
		sys:  sys,
		term: term,
		tab:  tab,
		events: terminal.ReadEvents{
			Interrupt: make(chan os.Signal, 1),
			SignalHandler: func(os.Signal) error {
				return curated.Errorf(terminal.UserInterrupt)
			},
		},
	}

	dbg.dsm = disassembly.NewDisassembly(sys.Mem, sys.Decoder)
	dbg.dsm.Symbols = tab

	dbg.tracer = disassembly.NewTracer(dbg.writer(terminal.StyleDisasm))
	dbg.tracer.Symbols = tab

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf(CommandError, err)
	}
	dbg.term.RegisterTabCompletion(newTabCompletion(dbg))

	return dbg, nil
}

// Start the main debugger sequence. The initScript is a file of debugger
// commands that are run before the first prompt. A script that can not be
// read is logged but is not an error.
func (dbg *Debugger) Start(initScript string) error {
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.Interrupt, os.Interrupt)
	defer signal.Stop(dbg.events.Interrupt)

	dbg.running = true

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
	}

	return dbg.inputLoop()
}

// runScript runs the commands in the named file as though they were typed at
// the prompt
func (dbg *Debugger) runScript(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() && dbg.running {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dbg.printLine(terminal.StyleEcho, "%s", line)
		dbg.parseInput(line)
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt(), &dbg.events)
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.running = false
				break
			}
			return curated.Errorf(CommandError, err)
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)
		dbg.parseInput(input)
	}

	return nil
}

// parseInput splits the input into commands and runs each one in turn. errors
// are printed to the terminal and stop any remaining commands on the line
func (dbg *Debugger) parseInput(input string) {
	for _, cmd := range splitCommands(input) {
		if err := dbg.parseCommand(cmd); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		if !dbg.running {
			return
		}
	}
}

func (dbg *Debugger) parseCommand(input string) error {
	tk := tokeniseInput(input)

	name, ok := tk.get()
	if !ok {
		return nil
	}

	cmd, err := lookupCommand(name)
	if err != nil {
		return err
	}

	if tk.remaining() < cmd.minArgs || (cmd.maxArgs >= 0 && tk.remaining() > cmd.maxArgs) {
		return curated.Errorf(InvalidArgs, cmd.name, fmt.Sprintf("usage: %s", cmd.usage()))
	}

	return cmd.fn(dbg, tk)
}

// prompt describes the instruction in the execute slot
func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type: terminal.PromptTypeCPUStep,
	}
	if dbg.sys.Status() == execution.RunStopped {
		p.Type = terminal.PromptTypeStopped
	}

	ins := dbg.sys.CPU.StageInstruction(instructions.ExecuteStage)
	if instructions.IsEmpty(ins) {
		p.PC, _ = dbg.sys.CPU.DebugRegister(registers.PC)
		return p
	}

	p.PC = ins.PC()
	p.Content = instructions.Disassemble(ins)
	p.Label = dbg.tab.Label(ins.PC())

	return p
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// run a function that advances the hardware with the interrupt signal
// watched. an interrupt halts the hardware
func (dbg *Debugger) run(f func() execution.RunStatus) execution.RunStatus {
	dbg.interrupted.Store(false)

	var wg sync.WaitGroup
	done := make(chan bool)

	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-dbg.events.Interrupt:
			dbg.interrupted.Store(true)
			dbg.sys.Halt()
		case <-done:
		}
	}()

	st := f()

	close(done)
	wg.Wait()

	return st
}

// report the status of the hardware after a run command
func (dbg *Debugger) report(st execution.RunStatus) {
	switch {
	case dbg.interrupted.Load():
		dbg.printLine(terminal.StyleFeedback, "halted after %d cycles", dbg.sys.Cycles())
	case st == execution.RunBreakpoint:
		pc, _ := dbg.sys.CPU.Register(16)
		if l := dbg.tab.Label(pc); l != "" {
			dbg.printLine(terminal.StyleFeedback, "breakpoint at %08x <%s>", pc, l)
		} else {
			dbg.printLine(terminal.StyleFeedback, "breakpoint at %08x", pc)
		}
	case st == execution.RunStopped:
		dbg.printLine(terminal.StyleFeedback, "program stopped after %d cycles (%d instructions)", dbg.sys.Cycles(), dbg.sys.CPU.Instructions())
	}
}

// parseValue converts the token to a 32 bit value. the token is decimal
// unless it has a 0x prefix
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value (%s)", s)
	}
	return uint32(v), nil
}

// parseAddress converts the token to an address. the token can be the name of
// a function in the symbols table or a value
func (dbg *Debugger) parseAddress(s string) (uint32, error) {
	if fn, ok := dbg.tab.Search(s); ok {
		return fn.Begin, nil
	}
	v, err := parseValue(s)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return v, nil
}
