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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/symbols"
)

// Tracer implements the hardware.Observer interface and writes one line for
// every retired instruction. Each line shows the cycle in which the
// instruction retired, its address, the disassembly and, if a symbols table
// is set, the function the instruction belongs to.
type Tracer struct {
	output io.Writer

	// symbols used to label the trace. can be nil
	Symbols *symbols.Table

	// number of lines written
	lines uint64
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(output io.Writer) *Tracer {
	return &Tracer{
		output: output,
	}
}

// Lines returns the number of lines written by the tracer.
func (trc *Tracer) Lines() uint64 {
	return trc.lines
}

// Retired implements the hardware.Observer interface.
func (trc *Tracer) Retired(ins instructions.Instruction, cycle uint64) {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%10d  %08x  %s", cycle, ins.PC(), instructions.Disassemble(ins)))

	if trc.Symbols != nil {
		if l := trc.Symbols.Label(ins.PC()); l != "" {
			s.WriteString(fmt.Sprintf("  <%s>", l))
		}
	}
	s.WriteString("\n")

	io.WriteString(trc.output, s.String())
	trc.lines++
}
