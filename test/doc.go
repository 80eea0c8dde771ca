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

// Package test contains helper functions that remove common boilerplate
// from the tests in the simulator.
//
// The Expect functions report a failure with t.Errorf() and return false
// when the test fails. The Demand functions are the same but call t.Fatalf().
// Use Demand when the value is needed by the remainder of the test, for
// example the error returned by a constructor.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A nil
// value is interpreted as a success because a nil error means no error.
//
// ExpectEquality() and ExpectInequality() are generic and so both arguments
// must be of the same type. Literal numbers adopt the type of the other
// argument so the following works when PC() returns uint32:
//
//	test.ExpectEquality(t, ins.PC(), 0x100)
//
// The CompareWriter and RingWriter types implement io.Writer and are used to
// capture output.
package test
