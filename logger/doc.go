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

// Package logger is the central log for the simulator. Entries are tagged
// with the name of the subsystem making the entry. The log is bounded in size
// and consecutive identical entries are counted rather than repeated.
//
// Every log request is made with a Permission. The simulator's debug setting
// implements Permission so that exception and interrupt entries are only
// logged when debugging has been requested. Use logger.Allow for entries that
// should always be made.
package logger
