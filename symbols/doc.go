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

// Package symbols keeps track of the functions in a program image. Each
// function is a named range of addresses, from the address of its first
// instruction to the address of its last instruction inclusive.
//
// A Table is created with NewTable() and filled with Add() or by reading a
// symbols file with Read() or ReadFile(). A symbols file has one function per
// line:
//
//	name begin end
//
// where begin and end are hexadecimal addresses, with or without a leading
// 0x. Blank lines and lines beginning with a # are ignored.
//
// The table is used by the profiler to attribute retired instructions to
// functions and by the debugger to show where the program is.
package symbols
