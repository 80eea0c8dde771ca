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

package test

import "testing"

// DemandEquality is the same as ExpectEquality() except that a failure is
// fatal. Use it for values that the rest of the test depends on, such as the
// length of a slice that is about to be indexed.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the same as ExpectSuccess() except that a failure is
// fatal.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		return
	}
	if err, ok := v.(error); ok {
		t.Fatalf("%ssuccess demanded (error: %v)", id(tags...), err)
	}
	t.Fatalf("%ssuccess demanded (%T)", id(tags...), v)
}

// DemandFailure is the same as ExpectFailure() except that a failure is
// fatal.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sfailure demanded (%T)", id(tags...), v)
	}
}
