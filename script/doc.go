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

// Package script runs Lua test scripts against the simulated hardware. A
// script loads a program, runs it and checks the state of the registers and
// memory with the expect() function:
//
//	load("sum.bin", 0)
//	exit(0x1c)
//	run()
//	expect(reg("r4") == 15, "sum of 1 to 5")
//	expect(peek(0x100) == 15)
//
// The functions available to a script are:
//
//	load(path [, origin])    load a program image. returns the number of words
//	poke(addr, v [, v...])   write words to memory
//	peek(addr)               read a word from memory
//	reg(n)                   read a register by number or name
//	setreg(n, v)             write a register by number or name
//	run()                    run until the program stops or hits a breakpoint
//	step()                   run until the next instruction retires
//	cycles([n])              run for n cycles. without an argument returns the
//	                         number of cycles so far
//	instructions()           the number of instructions retired
//	exit(addr)               mark the program exit
//	breakpoint(addr)         set a breakpoint
//	clear(addr)              clear a breakpoint
//	restart()                restart the program with memory preserved
//	expect(cond [, msg])     record the success or failure of an expectation
//
// The run functions return the run status as a string: "normal", "stopped"
// or "breakpoint". A run() that does not stop within the cycle limit raises
// an error.
//
// The outcome of a script is the number of failed expectations.
package script
