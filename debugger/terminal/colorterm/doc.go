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

// Package colorterm implements the Terminal interface for the Fireworks
// debugger. It supports color output, history and tab completion.
//
// The terminal is put into cbreak mode while input is being read so that the
// line can be edited as it is typed. Output is coloured according to the
// terminal.Style of the text.
package colorterm
