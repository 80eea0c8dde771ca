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
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/debugger/terminal"
)

var help = map[string]string{
	cmdBreak:        "Set a breakpoint at an address. The address can be a function name",
	cmdClear:        "Clear the breakpoint at an address or clear every breakpoint with ALL",
	cmdContinue:     "Run until a breakpoint, the program exit or an interrupt",
	cmdCPU:          "Show the run status and internal state of the processor",
	cmdCycles:       "Run for the number of clock cycles",
	cmdDisasm:       "Disassemble memory. Without arguments the disassembly starts at the PC",
	cmdExit:         "Mark an address as the program exit. Execution stops when it is reached",
	cmdHelp:         "Show the list of commands or the help for a single command",
	cmdInstructions: "Run until the number of instructions have been retired",
	cmdList:         "List breakpoints",
	cmdLoad:         "Load a binary image of big-endian words into memory at the origin",
	cmdLog:          "Show the log. LAST shows the most recent entries",
	cmdMemviz:       "Write a graphviz description of the processor structure to a file. Without a file a unique name is chosen",
	cmdPeek:         "Show words of memory",
	cmdPipeline:     "Show the instruction in each stage of the pipeline",
	cmdPoke:         "Write words to memory, starting at the address",
	cmdQuit:         "End the debugging session",
	cmdReg:          "Show a register or set it to a new value",
	cmdRegs:         "Show the register file",
	cmdReset:        "Reset the hardware. Memory and breakpoints are cleared",
	cmdRestart:      "Restart the program. Memory is preserved",
	cmdRunTo:        "Run until the instruction at the address is in the execute stage",
	cmdStep:         "Run until the next instruction is retired. An optional count repeats the step",
	cmdSymbol:       "Find a function by name or address. LIST shows the symbols table",
	cmdTrace:        "Turn instruction tracing on or off",
}

func (dbg *Debugger) cmdHelp(tk *tokens) error {
	s, ok := tk.get()
	if !ok {
		dbg.printLine(terminal.StyleHelp, "commands:")

		// commands are listed in columns
		const columns = 5
		var l strings.Builder
		for i, n := range commandNames {
			l.WriteString(n)
			if (i+1)%columns == 0 || i == len(commandNames)-1 {
				dbg.printLine(terminal.StyleHelp, "%s", strings.TrimSpace(l.String()))
				l.Reset()
				continue
			}
			l.WriteString(strings.Repeat(" ", 14-len(n)))
		}
		return nil
	}

	cmd, err := lookupCommand(s)
	if err != nil {
		return curated.Errorf(InvalidArgs, cmdHelp, err)
	}

	dbg.printLine(terminal.StyleHelp, "%s", cmd.usage())
	dbg.printLine(terminal.StyleHelp, "%s", help[cmd.name])
	return nil
}
