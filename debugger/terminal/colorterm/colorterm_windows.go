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

//go:build windows

package colorterm

import (
	"github.com/fireworks-sim/fireworks/debugger/terminal/plainterm"
)

// ColorTerminal is not available on windows and falls back to the
// PlainTerminal.
type ColorTerminal struct {
	plainterm.PlainTerminal
}
