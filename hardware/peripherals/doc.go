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

// Package peripherals defines the interface for devices on the on-chip
// peripheral bus. The devices themselves are in the sub-packages.
//
// Device registers are memory mapped through the bus.Mapper interface and
// are accessed with the latency reported by the device. The system ticks
// every peripheral once per cycle and ORs together the interrupt lines.
package peripherals
