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

package execution

// RunStatus is the externally visible result of a single pipeline cycle.
type RunStatus int

// List of valid RunStatus values.
const (
	RunNormal RunStatus = iota
	RunStopped
	RunBreakpoint
)

func (s RunStatus) String() string {
	switch s {
	case RunNormal:
		return "normal"
	case RunStopped:
		return "stopped"
	case RunBreakpoint:
		return "breakpoint"
	}
	return "unknown status"
}
