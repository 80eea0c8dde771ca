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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fireworks-sim/fireworks/logger"
	"github.com/fireworks-sim/fireworks/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "cpu", "exception entry")
	log.Log(logger.Allow, "timer", "interrupt")

	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "cpu: exception entry\ntimer: interrupt\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "timer: interrupt\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatAndBound(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "stall")
	log.Log(logger.Allow, "cpu", "stall")
	log.Log(logger.Allow, "cpu", "stall")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: stall (repeat x3)\n")

	// oldest entries are dropped once the maximum is reached
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "a: 1\nb: 2\n")
}

type debugSetting bool

func (d debugSetting) AllowLogging() bool {
	return bool(d)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(debugSetting(false), "cpu", "hidden")
	test.ExpectFailure(t, log.Write(w))

	log.Log(debugSetting(true), "cpu", "visible")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: visible\n")
}

type stringer struct{}

func (stringer) String() string {
	return "brai 0x10"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("unmapped"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "pc=%08x", 0x20)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: unmapped\ntag: brai 0x10\ntag: 100\ntag: pc=00000020\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	// echo
	log.SetEcho(w, false)
	log.Log(logger.Allow, "c", "3")
	test.ExpectEquality(t, w.String(), "c: 3\n")
}
