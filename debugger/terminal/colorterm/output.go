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

package colorterm

import (
	"strings"

	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/debugger/terminal/colorterm/easyterm/ansi"
)

// stylise returns the string with the pen for the style and a terminating
// newline
func stylise(style terminal.Style, s string) string {
	b := strings.Builder{}

	switch style {
	case terminal.StyleCPUStep:
		b.WriteString(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		b.WriteString(ansi.Pens["cyan"])
	case terminal.StyleDisasm:
		b.WriteString(ansi.DimPens["yellow"])
	case terminal.StyleFeedback:
		b.WriteString(ansi.DimPens["white"])
	case terminal.StyleLog:
		b.WriteString(ansi.DimPens["blue"])
	case terminal.StyleHelp:
		b.WriteString(ansi.DimPens["white"])
		b.WriteString("  ")
	case terminal.StyleError:
		b.WriteString(ansi.Pens["red"])
		b.WriteString("* ")
	}

	b.WriteString(s)
	b.WriteString(ansi.NormalPen)
	b.WriteString("\n")

	return b.String()
}
