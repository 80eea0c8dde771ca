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

// Package registers implements the register file of the processor: the general
// purpose registers, the program counter, the machine status register and the
// other special purpose registers.
//
// Register numbers (see Label() and Number()) are the numbering used by the
// debugging tools and are not the same as the selectors used by the mfs and
// mts instructions.
package registers
