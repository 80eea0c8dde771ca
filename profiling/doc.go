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

// Package profiling attributes the execution of a program to the functions
// listed in a symbols table.
//
// A Profiler is attached to the hardware as an Observer and is notified of
// every retired instruction. For each function it records the number of
// calls (the number of times the function was entered at its first
// address), the number of executions (the number of times execution entered
// the function at any address), the number of cycles spent in the function
// and the number of times each instruction mnemonic was retired.
//
// The cycles attributed to a retired instruction are the cycles since the
// previous instruction retired. Stalls, memory latency and branch penalties
// are therefore charged to the instruction that caused them.
//
// Instructions outside of any function are attributed to an entry with the
// name in the Unknown constant.
package profiling
