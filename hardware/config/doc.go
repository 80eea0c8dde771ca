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

// Package config describes the simulated hardware: the memory map, the
// processor version registers, the instruction latencies and the peripherals
// on the peripheral bus.
//
// A Config value is normally created from a Preferences value, which is
// loaded from and saved to a prefs file:
//
//	p, err := config.NewPreferences(pth)
//	cfg, err := p.Config()
//
// The default configuration is used for any value not in the file.
package config
