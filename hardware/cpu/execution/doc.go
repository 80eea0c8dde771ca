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

// Package execution contains the vocabulary of outcome codes exchanged between
// the instructions and the pipeline scheduler, and the externally visible run
// status of each cycle.
//
// Outcome values are returned by the Step() function of every instruction.
// They are never errors: a synchronous fault such as DivideByZero is an
// ordinary outcome and the scheduler decides whether it leads to the exception
// handler or whether it is masked.
package execution
