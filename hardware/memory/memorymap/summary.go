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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in the
// map. Useful for reference.
func (m Map) Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\t%s\tr%d w%d\n", m.LMB, LMB, m.LMB.ReadLatency, m.LMB.WriteLatency))
	if m.OPBEnabled {
		s.WriteString(fmt.Sprintf("%s\t%s\tr%d w%d\n", m.OPB, OPB, m.OPB.ReadLatency, m.OPB.WriteLatency))
	}
	s.WriteString(fmt.Sprintf("unmapped penalty\t%d\n", m.UnmappedPenalty))
	return s.String()
}
