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

package symbols

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
)

// Error patterns.
const (
	SymbolsFileError = "symbols: %v"
	SymbolsSyntax    = "symbols: line %d: %s"
	InvalidFunction  = "symbols: %s: %s"
)

// Function is a named range of addresses. End is the address of the last
// instruction in the function.
type Function struct {
	Name  string
	Begin uint32
	End   uint32
}

func (fn Function) String() string {
	return fmt.Sprintf("%08x %08x %s", fn.Begin, fn.End, fn.Name)
}

// Contains returns true if the address is inside the function.
func (fn Function) Contains(address uint32) bool {
	return address >= fn.Begin && address <= fn.End
}

// Table is a list of functions ordered by their start address. Functions in
// the table do not overlap.
type Table struct {
	functions []Function

	// the longest function name in the table
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		functions: make([]Function, 0),
	}
}

func (tab *Table) String() string {
	s := strings.Builder{}
	for _, fn := range tab.functions {
		s.WriteString(fmt.Sprintf("%08x %08x %s\n", fn.Begin, fn.End, fn.Name))
	}
	return s.String()
}

// Len returns the number of functions in the table.
func (tab *Table) Len() int {
	return len(tab.functions)
}

// MaxWidth returns the length of the longest function name in the table.
func (tab *Table) MaxWidth() int {
	return tab.maxWidth
}

// Functions returns a copy of the functions in the table, in address order.
func (tab *Table) Functions() []Function {
	fns := make([]Function, len(tab.functions))
	copy(fns, tab.functions)
	return fns
}

// Add a function to the table. The function must have a name, must not end
// before it begins and must not overlap a function already in the table.
func (tab *Table) Add(fn Function) error {
	if fn.Name == "" || strings.ContainsAny(fn.Name, " \t") {
		return curated.Errorf(InvalidFunction, fn.Name, "invalid name")
	}
	if fn.End < fn.Begin {
		return curated.Errorf(InvalidFunction, fn.Name, "ends before it begins")
	}
	if _, ok := tab.Search(fn.Name); ok {
		return curated.Errorf(InvalidFunction, fn.Name, "duplicate name")
	}

	// index of the first function that begins after the new function
	i := sort.Search(len(tab.functions), func(i int) bool {
		return tab.functions[i].Begin > fn.Begin
	})
	if i > 0 && tab.functions[i-1].End >= fn.Begin {
		return curated.Errorf(InvalidFunction, fn.Name, fmt.Sprintf("overlaps %s", tab.functions[i-1].Name))
	}
	if i < len(tab.functions) && tab.functions[i].Begin <= fn.End {
		return curated.Errorf(InvalidFunction, fn.Name, fmt.Sprintf("overlaps %s", tab.functions[i].Name))
	}

	tab.functions = append(tab.functions, Function{})
	copy(tab.functions[i+1:], tab.functions[i:])
	tab.functions[i] = fn

	if len(fn.Name) > tab.maxWidth {
		tab.maxWidth = len(fn.Name)
	}

	return nil
}

// Lookup returns the function containing the address.
func (tab *Table) Lookup(address uint32) (Function, bool) {
	i := sort.Search(len(tab.functions), func(i int) bool {
		return tab.functions[i].Begin > address
	})
	if i == 0 {
		return Function{}, false
	}
	fn := tab.functions[i-1]
	if !fn.Contains(address) {
		return Function{}, false
	}
	return fn, true
}

// Search for a function by name. Matching is case-insensitive.
func (tab *Table) Search(name string) (Function, bool) {
	for _, fn := range tab.functions {
		if strings.EqualFold(fn.Name, name) {
			return fn, true
		}
	}
	return Function{}, false
}

// Label returns the name of the function containing the address and the
// offset of the address from the start of the function, in the form
// "name+offset". The empty string is returned if no function contains the
// address.
func (tab *Table) Label(address uint32) string {
	fn, ok := tab.Lookup(address)
	if !ok {
		return ""
	}
	if address == fn.Begin {
		return fn.Name
	}
	return fmt.Sprintf("%s+%#x", fn.Name, address-fn.Begin)
}

// List the functions in the table. Names are padded to the width of the
// longest name.
func (tab *Table) List(output io.Writer) {
	for _, fn := range tab.functions {
		io.WriteString(output, fmt.Sprintf("%-*s %08x %08x\n", tab.maxWidth, fn.Name, fn.Begin, fn.End))
	}
}

func parseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint32(v), nil
}

// Read functions into the table from a symbols file.
func (tab *Table) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		f := strings.Fields(line)
		if len(f) != 3 {
			return curated.Errorf(SymbolsSyntax, n, "expected name, begin and end")
		}

		begin, err := parseAddress(f[1])
		if err != nil {
			return curated.Errorf(SymbolsSyntax, n, err)
		}
		end, err := parseAddress(f[2])
		if err != nil {
			return curated.Errorf(SymbolsSyntax, n, err)
		}

		if err := tab.Add(Function{Name: f[0], Begin: begin, End: end}); err != nil {
			return curated.Errorf(SymbolsSyntax, n, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(SymbolsFileError, err)
	}

	return nil
}

// ReadFile creates a new table from the named symbols file.
func ReadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}
	defer f.Close()

	tab := NewTable()
	if err := tab.Read(f); err != nil {
		return nil, err
	}

	return tab, nil
}
