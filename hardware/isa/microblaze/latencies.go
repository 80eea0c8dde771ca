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

package microblaze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fireworks-sim/fireworks/curated"
)

// Error patterns.
const (
	UnknownMnemonic = "microblaze: %s latency for unknown instruction (%s)"
	InvalidLatency  = "microblaze: %s latency for %s must be at least one"
	NotConditional  = "microblaze: taken latency for %s, which is not a conditional branch"
)

// Latencies is the number of cycles each instruction spends in the execute
// slot, keyed by mnemonic. Instructions not in the Execute map take one cycle.
//
// The Taken map is used by conditional branches when the condition holds.
// Conditional branches without an entry in the Taken map use the value in the
// Execute map.
type Latencies struct {
	Execute map[string]int
	Taken   map[string]int
}

// DefaultLatencies returns the latencies of the processor when it is built
// with the hardware multiplier and divider.
func DefaultLatencies() Latencies {
	lat := Latencies{
		Execute: map[string]int{
			"mul":   3,
			"mulh":  3,
			"mulhu": 3,
			"muli":  3,
			"bsrl":  2,
			"bsra":  2,
			"bsll":  2,
			"bsrli": 2,
			"bsrai": 2,
			"bslli": 2,
			"idiv":  32,
			"idivu": 32,
		},
		Taken: make(map[string]int),
	}
	return lat
}

func (lat Latencies) execute(mnemonic string) int {
	if v, ok := lat.Execute[mnemonic]; ok && v > 0 {
		return v
	}
	return 1
}

func (lat Latencies) taken(mnemonic string) int {
	if v, ok := lat.Taken[mnemonic]; ok && v > 0 {
		return v
	}
	return lat.execute(mnemonic)
}

// Validate returns an error if a latency is given for a mnemonic that is not
// part of the instruction set, or if a value is less than one.
func (lat Latencies) Validate() error {
	for _, k := range sortedKeys(lat.Execute) {
		if !IsMnemonic(k) {
			return curated.Errorf(UnknownMnemonic, "execute", k)
		}
		if lat.Execute[k] < 1 {
			return curated.Errorf(InvalidLatency, "execute", k)
		}
	}

	for _, k := range sortedKeys(lat.Taken) {
		if !isConditional(k) {
			return curated.Errorf(NotConditional, k)
		}
		if lat.Taken[k] < 1 {
			return curated.Errorf(InvalidLatency, "taken", k)
		}
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (lat Latencies) String() string {
	s := strings.Builder{}
	for _, m := range Mnemonics() {
		e := lat.execute(m)
		if isConditional(m) {
			s.WriteString(fmt.Sprintf("%-8s%d/%d\n", m, e, lat.taken(m)))
		} else if e > 1 {
			s.WriteString(fmt.Sprintf("%-8s%d\n", m, e))
		}
	}
	return s.String()
}
