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

// Package bus defines the memory bus concept. The DataBus interface is used by
// instructions that load and store data. The DebugBus is used by tooling that
// needs to inspect or alter memory without advancing the machine.
//
// Peripherals attach their registers to the memory system through the Mapper
// interface. The latency of a register access is taken from the Device that
// owns the register.
package bus
