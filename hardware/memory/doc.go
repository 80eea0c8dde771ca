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

// Package memory implements the memory bus arbiter. The address space is made
// up of the local memory bus (LMB), an optional peripheral bus (OPB) and any
// number of peripheral registers attached with MapRegister(). The layout of
// the LMB and OPB is described by the memorymap package.
//
// Data accesses are modelled as a state machine that is polled once per cycle
// by the instruction making the access. For an access with a latency of L
// cycles, the first L-1 polls return bus.Busy and poll L completes the access.
// A latency of one completes on the first poll.
//
// A misaligned access returns bus.Busy on the first poll and bus.Unaligned on
// the next, regardless of latency. An access to an address that is not mapped
// is held for the configured unmapped penalty before bus.Unmapped is
// reported.
//
// Storage is word addressed. Every word that is written is also decoded into
// an instruction by the Decoder given to NewMemory(). The decoded instruction
// is what Fetch() returns, which means that writes to memory that has already
// been fetched (self-modifying code) are seen by the next fetch.
//
// The debugging functions (PeekWord(), PokeWord(), Instruction(), etc.)
// bypass the latency model entirely.
package memory
