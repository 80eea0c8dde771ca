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

// Package timer implements the two channel OPB timer/counter.
//
// Each channel has a control and status register (TCSR), a load register
// (TLR) and a counter register (TCR). Writes to the control and load
// registers are double buffered and only take effect once the device has
// completed the cycle in which the write occurred.
//
// In generate mode a channel counts up, or down if UDT is set. When the
// counter wraps the TINT bit is set and the counter is either reloaded from
// TLR (ARHT set) or left at the wrapped value. The interrupt line is raised
// while TINT and ENIT are both set for either channel. TINT is cleared by
// writing a one to it.
package timer
