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

package terminal

// Style is used to identify the category of text being sent to the
// TermPrintLine() function. Terminal implementations can use this to display
// the text in an appropriate way.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user
	StyleEcho Style = iota

	// information about the simulated hardware
	StyleInstrument

	// the result of stepping the CPU
	StyleCPUStep

	// a disassembly or trace of the program
	StyleDisasm

	// information about the simulator rather than the simulated hardware
	StyleFeedback

	// help text
	StyleHelp

	// non-error output from the log package
	StyleLog

	// error messages
	StyleError
)

func (sty Style) String() string {
	switch sty {
	case StyleEcho:
		return "echo"
	case StyleInstrument:
		return "instrument"
	case StyleCPUStep:
		return "cpu step"
	case StyleDisasm:
		return "disasm"
	case StyleFeedback:
		return "feedback"
	case StyleHelp:
		return "help"
	case StyleLog:
		return "log"
	case StyleError:
		return "error"
	}
	return "unknown style"
}
