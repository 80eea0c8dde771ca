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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/fireworks-sim/fireworks/test"
)

func TestSuccessAndFailure(t *testing.T) {
	var err error

	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.DemandSuccess(t, err, "nil error")

	err = errors.New("unmapped")
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, err)
	test.DemandFailure(t, err, "error")
}

func TestEquality(t *testing.T) {
	var pc uint32 = 0x100

	// untyped constants take the type of the other argument
	test.ExpectEquality(t, pc, 0x100)
	test.ExpectEquality(t, 0x0c, pc-0xf4)
	test.ExpectInequality(t, pc, 0x104)
	test.DemandEquality(t, len([]int{1, 2, 3}), 3)

	test.ExpectEquality(t, "brlid", "brl"+"id")
	test.ExpectInequality(t, true, false)
}

func TestApproximate(t *testing.T) {
	test.ExpectApproximate(t, 1.31, 1.25, 0.05)
	test.ExpectApproximate(t, 100, 95, 0.1)
	test.ExpectApproximate(t, uint64(1000), 1000, 0)
}

func TestLines(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, len(w.Lines()), 0)

	io.WriteString(w, "00000000  80000000  or\n00000004  80000000  or\n")
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "00000004  80000000  or")
}
