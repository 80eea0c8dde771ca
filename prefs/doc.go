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

// Package prefs holds the typed preference values used to configure the
// simulator. Values are grouped in a Disk and saved in a plain text file, one
// value per line:
//
//	memory.lmb.begin :: 0
//	memory.lmb.read :: 2
//
// Values can be overridden for a single run by pushing a group onto the
// command line stack before the values are added to a Disk:
//
//	prefs.PushCommandLineStack("memory.lmb.read::4; memory.mapped::8")
package prefs
