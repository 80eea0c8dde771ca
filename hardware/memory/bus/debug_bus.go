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

package bus

// DebugBus defines the meta-operations for the memory system. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. They complete immediately and never affect the
// state of any in-flight data access.
type DebugBus interface {
	PeekWord(address uint32) (uint32, error)
	PokeWord(address uint32, value uint32) error
	PeekHalf(address uint32) (uint16, error)
	PokeHalf(address uint32, value uint16) error
	PeekByte(address uint32) (uint8, error)
	PokeByte(address uint32, value uint8) error
}
