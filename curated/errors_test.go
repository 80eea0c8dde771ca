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

package curated_test

import (
	"errors"
	"testing"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/test"
)

const testPattern = "test: value %d"
const wrapPattern = "wrap: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", curated.Errorf("memory: unmapped"))
	test.ExpectEquality(t, e.Error(), "memory: unmapped")

	e = curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", curated.Errorf("cpu: bad register")))
	test.ExpectEquality(t, e.Error(), "cpu: bad register")

	// non-adjacent duplicates are kept
	e = curated.Errorf("a: b: a")
	test.ExpectEquality(t, e.Error(), "a: b: a")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectEquality(t, e.Error(), "test: value 10")

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, "plain error"))
	test.ExpectFailure(t, curated.Has(e, "plain error"))
	test.ExpectFailure(t, curated.IsAny(nil))

	// plain errors can still be found in a curated chain with errors.Is()
	f := curated.Errorf(wrapPattern, e)
	test.ExpectSuccess(t, errors.Is(f, e))
}
