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

// Package microblaze is the reference instruction set for the simulator. It
// implements the Decoder interface of the instructions package and so
// supplies the instructions that are placed in the pipeline.
//
// The decoder covers the integer instruction set of the processor. The
// floating point unit and the fast simplex link instructions are not present
// and their encodings decode as illegal instructions. Data cache and
// instruction cache maintenance instructions decode but have no effect.
//
// Every instruction has an execute latency, which is the number of cycles it
// occupies the execute slot before it has any effect. Conditional branches
// have a second latency that applies when the branch is taken. Latencies are
// specified by mnemonic with the Latencies type. For example:
//
//	lat := microblaze.DefaultLatencies()
//	lat.Execute["idiv"] = 34
//	lat.Taken["beqi"] = 3
//	dec := microblaze.NewDecoder(lat)
//
// Load and store instructions additionally take as many cycles as the memory
// system takes to complete the access.
//
// Disassemble() describes an instruction word without the need for a
// Decoder.
package microblaze
