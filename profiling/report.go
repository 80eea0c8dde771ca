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

package profiling

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func percent(v uint64, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(v) / float64(total) * 100
}

// width of the function column. at least as wide as the column heading
func (p *Profiler) nameWidth() int {
	w := len("function")
	for _, e := range p.entries {
		if len(e.Function.Name) > w {
			w = len(e.Function.Name)
		}
	}
	return w
}

func writeMnemonics(output io.Writer, m map[string]uint64) {
	keys := make([]string, 0, len(m))
	var total uint64
	for k, v := range m {
		keys = append(keys, k)
		total += v
	}
	sort.Strings(keys)

	io.WriteString(output, fmt.Sprintf(" %-12s  %12s  %7s\n", "instruction", "#", "%"))
	for _, k := range keys {
		io.WriteString(output, fmt.Sprintf(" %-12s  %12d  %7.3f\n", k, m[k], percent(m[k], total)))
	}
	io.WriteString(output, fmt.Sprintf(" %-12s  %12d\n", "", total))
}

// WriteSummary writes the total instruction and cycle counts.
func (p *Profiler) WriteSummary(output io.Writer) {
	cpi := 0.0
	if p.instructions > 0 {
		cpi = float64(p.cycles) / float64(p.instructions)
	}
	io.WriteString(output, fmt.Sprintf(" instructions: %12d\n", p.instructions))
	io.WriteString(output, fmt.Sprintf(" cycles      : %12d\n", p.cycles))
	io.WriteString(output, fmt.Sprintf(" cpi         : %12.3f\n", cpi))
}

// WriteFlat writes one line per function, sorted by the number of cycles
// spent in the function.
func (p *Profiler) WriteFlat(output io.Writer) {
	io.WriteString(output, fmt.Sprintf(" %7s  %14s  %14s  %8s  %12s  %s\n",
		"% time", "cumulative", "self cycles", "calls", "cycles/call", "function"))

	var cumulative uint64
	for _, e := range p.Entries() {
		cumulative += e.Cycles
		if e.Calls > 0 {
			io.WriteString(output, fmt.Sprintf(" %7.2f  %14d  %14d  %8d  %12.2f  %s\n",
				percent(e.Cycles, p.cycles), cumulative, e.Cycles, e.Calls, e.CyclesPerCall(), e.Function.Name))
		} else {
			io.WriteString(output, fmt.Sprintf(" %7.2f  %14d  %14d  %8s  %12s  %s\n",
				percent(e.Cycles, p.cycles), cumulative, e.Cycles, "", "", e.Function.Name))
		}
	}
}

// WriteFunctions writes the counts for each function and the mnemonics
// retired in each function.
func (p *Profiler) WriteFunctions(output io.Writer) {
	w := p.nameWidth()
	heading := fmt.Sprintf(" %12s  %12s  %7s  %5s  %-*s\n", "cycles", "instructions", "execute", "calls", w, "function")

	for _, e := range p.Entries() {
		io.WriteString(output, heading)
		io.WriteString(output, fmt.Sprintf(" %12d  %12d  %7d  %5d  %-*s\n",
			e.Cycles, e.Instructions(), e.Executions, e.Calls, w, e.Function.Name))
		io.WriteString(output, "\n")
		writeMnemonics(output, e.Mnemonics)
		io.WriteString(output, "\n")
	}
}

// Write the complete profile report.
func (p *Profiler) Write(output io.Writer) {
	section := func(title string) {
		io.WriteString(output, fmt.Sprintf("%s\n%s\n", title, strings.Repeat("-", len(title))))
	}

	section("Performance")
	p.WriteSummary(output)
	io.WriteString(output, "\n")

	section("Flat profile")
	p.WriteFlat(output)
	io.WriteString(output, "\n")

	section("Instruction profile")
	writeMnemonics(output, p.Mnemonics())
	io.WriteString(output, "\n")

	section("Function profile")
	p.WriteFunctions(output)
}
