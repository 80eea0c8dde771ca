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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/prefs"
	"github.com/fireworks-sim/fireworks/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "fireworks_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var begin, latency prefs.Int
	test.ExpectSuccess(t, dsk.Add("memory.lmb.begin", &begin))
	test.ExpectSuccess(t, dsk.Add("memory.lmb.read", &latency))

	// hexadecimal strings are accepted
	test.ExpectSuccess(t, begin.Set("0x1000"))
	test.ExpectEquality(t, begin.Get().(int), 0x1000)
	test.ExpectSuccess(t, latency.Set(2))

	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "memory.lmb.begin :: 4096\nmemory.lmb.read :: 2\n")

	test.ExpectFailure(t, latency.Set("---"))
	test.ExpectFailure(t, latency.Set(1.0))
	test.ExpectEquality(t, latency.Get().(int), 2)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("name", &s))
	test.ExpectSuccess(t, dsk.Add("penalty", &n))

	// file does not exist. saveOnFail creates it
	test.ExpectSuccess(t, n.Set(5))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "name :: \npenalty :: 5\n")

	test.ExpectSuccess(t, s.Set("fireworks"))
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectSuccess(t, s.Reset())
	test.ExpectSuccess(t, n.Reset())

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "fireworks")
	test.ExpectEquality(t, n.Get().(int), 5)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &a))
	err = dsk.Add("key", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
	err = dsk.Add("bad :: key", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidKey))
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int
	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// entries saved by one Disk instance survive a save by another instance
func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("latency", &n))
	test.ExpectSuccess(t, n.Set(4))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("latency::7")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var m prefs.Int
	test.ExpectSuccess(t, dsk.Add("latency", &m))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, m.Get().(int), 7)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))

	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// cropped information does not reappear
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var post bool
	b.SetHookPre(func(v prefs.Value) error {
		if !v.(bool) {
			return fmt.Errorf("refused")
		}
		return nil
	})
	b.SetHookPost(func(v prefs.Value) error {
		post = v.(bool)
		return nil
	})
	test.ExpectFailure(t, b.Set(false))
	test.ExpectFailure(t, post)
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, post)
}
