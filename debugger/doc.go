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

// Package debugger implements an interactive command line debugger for the
// simulated hardware.
//
// The debugger reads commands from a terminal.Terminal. Commands are not case
// sensitive and can be abbreviated to any unique prefix. More than one
// command can be entered on a single line by separating them with a
// semi-colon. The HELP command lists the available commands.
//
// Addresses can be given as a number or, if a symbols table has been
// supplied, as the name of a function. Numbers are decimal unless prefixed
// with 0x or $.
//
// Long running commands such as CONTINUE can be interrupted with the
// interrupt signal (usually ctrl-c). The interrupt signal at the prompt ends
// the debugging session.
package debugger
