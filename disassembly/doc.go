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

// Package disassembly prints the contents of memory as MicroBlaze assembly
// language and traces instructions as they are retired by the CPU.
//
// Memory is read through the debug path of the memory system, so creating a
// disassembly never advances the simulation or changes the state of an
// in-flight access. The exception is the receive register of a UART, which is
// emptied by any read.
//
// If a symbols table is available, the name of each function is printed on a
// line of its own before the first instruction of the function.
package disassembly
