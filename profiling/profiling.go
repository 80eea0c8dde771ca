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
	"sort"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
	"github.com/fireworks-sim/fireworks/symbols"
)

// Error patterns.
const (
	ProfileError = "profiling: %v"
	Breakpoint   = "profiling: stopped at breakpoint (%08x)"
)

// Unknown is the name of the entry for instructions that are not in any
// function.
const Unknown = "[unknown]"

// Entry is the profile of a single function.
type Entry struct {
	Function symbols.Function

	Calls      uint64
	Executions uint64
	Cycles     uint64

	// mnemonic -> count
	Mnemonics map[string]uint64
}

func newEntry(fn symbols.Function) *Entry {
	return &Entry{
		Function:  fn,
		Mnemonics: make(map[string]uint64),
	}
}

// Instructions returns the total number of instructions retired in the
// function.
func (e *Entry) Instructions() uint64 {
	var n uint64
	for _, c := range e.Mnemonics {
		n += c
	}
	return n
}

// CyclesPerCall returns the mean number of cycles spent in the function for
// each call. Returns zero if the function was never called.
func (e *Entry) CyclesPerCall() float64 {
	if e.Calls == 0 {
		return 0
	}
	return float64(e.Cycles) / float64(e.Calls)
}

// Profiler implements the hardware.Observer interface.
type Profiler struct {
	tab *symbols.Table

	// all entries indexed by function name
	entries map[string]*Entry

	// the function that retired the most recent instruction. nil until the
	// first instruction retires
	current *Entry

	// the cycle number of the most recent retirement
	lastCycle uint64

	instructions uint64
	cycles       uint64
}

// NewProfiler is the preferred method of initialisation for the Profiler
// type. A nil table is the same as an empty table.
func NewProfiler(tab *symbols.Table) *Profiler {
	if tab == nil {
		tab = symbols.NewTable()
	}

	p := &Profiler{
		tab:     tab,
		entries: make(map[string]*Entry),
	}

	for _, fn := range tab.Functions() {
		p.entries[fn.Name] = newEntry(fn)
	}
	p.entries[Unknown] = newEntry(symbols.Function{Name: Unknown})

	return p
}

// Reset all counts. The cycle count of the hardware is assumed to restart at
// zero.
func (p *Profiler) Reset() {
	for k, e := range p.entries {
		p.entries[k] = newEntry(e.Function)
	}
	p.current = nil
	p.lastCycle = 0
	p.instructions = 0
	p.cycles = 0
}

// unwrap breakpoint and program exit markers
func unwrap(ins instructions.Instruction) instructions.Instruction {
	for {
		w, ok := ins.(instructions.Wrapper)
		if !ok {
			return ins
		}
		ins = w.Unwrap()
	}
}

// Retired implements the hardware.Observer interface.
func (p *Profiler) Retired(ins instructions.Instruction, cycle uint64) {
	ins = unwrap(ins)
	pc := ins.PC()

	var delta uint64
	if cycle > p.lastCycle {
		delta = cycle - p.lastCycle
	}
	p.lastCycle = cycle

	e := p.current
	if e == nil || !p.inside(e, pc) {
		fn, ok := p.tab.Lookup(pc)
		if ok {
			e = p.entries[fn.Name]
			if pc == fn.Begin {
				e.Calls++
			}
		} else {
			e = p.entries[Unknown]
		}
		e.Executions++
		p.current = e
	}

	e.Cycles += delta
	e.Mnemonics[ins.String()]++

	p.instructions++
	p.cycles += delta
}

// whether the address is inside the function of the entry. every address
// that is not in a function is inside the unknown entry
func (p *Profiler) inside(e *Entry, address uint32) bool {
	if e.Function.Name == Unknown {
		_, ok := p.tab.Lookup(address)
		return !ok
	}

	return e.Function.Contains(address)
}

// Instructions returns the number of instructions observed.
func (p *Profiler) Instructions() uint64 {
	return p.instructions
}

// Cycles returns the number of cycles attributed to observed instructions.
func (p *Profiler) Cycles() uint64 {
	return p.cycles
}

// Entry returns the profile of the named function. Entries exist for every
// function in the symbols table and for the Unknown pseudo-function.
func (p *Profiler) Entry(name string) (*Entry, bool) {
	e, ok := p.entries[name]
	return e, ok
}

// Entries returns the profile of every function that retired at least one
// instruction. Entries are sorted by descending cycle count and then by
// name.
func (p *Profiler) Entries() []*Entry {
	l := make([]*Entry, 0, len(p.entries))
	for _, e := range p.entries {
		if e.Executions > 0 {
			l = append(l, e)
		}
	}
	sort.Slice(l, func(i, j int) bool {
		if l[i].Cycles == l[j].Cycles {
			return l[i].Function.Name < l[j].Function.Name
		}
		return l[i].Cycles > l[j].Cycles
	})
	return l
}

// Mnemonics returns the total count of each mnemonic across all functions.
func (p *Profiler) Mnemonics() map[string]uint64 {
	m := make(map[string]uint64)
	for _, e := range p.entries {
		for k, v := range e.Mnemonics {
			m[k] += v
		}
	}
	return m
}

// Profile runs the system until the program stops, observing every retired
// instruction. The continueCheck() function is passed to hardware.Run() and
// may be nil.
//
// It is an error for the program to stop at a breakpoint.
func Profile(sys *hardware.System, tab *symbols.Table, continueCheck func() (bool, error)) (*Profiler, error) {
	p := NewProfiler(tab)

	sys.AddObserver(p)
	defer sys.RemoveObserver(p)

	// cycles are counted from the start of the run
	p.lastCycle = sys.Cycles()

	st, err := sys.Run(continueCheck)
	if err != nil {
		return p, curated.Errorf(ProfileError, err)
	}
	if st == execution.RunBreakpoint {
		pc, _ := sys.CPU.Register(16)
		return p, curated.Errorf(Breakpoint, pc)
	}

	return p, nil
}
