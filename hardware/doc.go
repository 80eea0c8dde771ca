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

// Package hardware is the base package for the simulated MicroBlaze system.
// A System is created from a config.Config and contains the CPU, the memory
// and the peripherals on the peripheral bus. The sub-packages contain the
// implementation of each component.
//
// The System is driven one cycle at a time with Cycle() or with one of the
// run functions: Run(), Continue(), RunCycles(), RunInstructions(), Step()
// and RunToAddress(). The run functions stop when the program reaches a
// program exit marker or a breakpoint, or when Halt() is called.
//
// A System is not safe for concurrent use. The Shared type can be used when
// the System needs to be accessed from more than one goroutine.
package hardware
