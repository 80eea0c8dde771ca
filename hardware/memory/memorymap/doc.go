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

// Package memorymap describes the static layout of the address space: an
// inclusive local memory bus range and an optional peripheral bus range, each
// with their own read and write latency.
//
// The regions must be disjoint. Validate() returns a curated error if they are
// not. Peripheral device registers are not part of the map. They are attached
// to the memory system by address once the memory system has been created.
package memorymap
