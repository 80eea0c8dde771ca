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

// Package limiter slows the simulation to a target clock rate. For example,
// limiting the system to 50MHz:
//
//	lim := limiter.NewLimiter(50000000)
//	for {
//		sys.Cycle()
//		lim.Tick()
//	}
//
// The limiter measures the wall clock every batch of cycles and sleeps if the
// simulation is ahead. It is only effective when the host is able to run the
// simulation faster than the target rate.
package limiter

import (
	"time"
)

// the number of cycles between measurements
const batch = 10000

// Limiter holds the simulation to a fixed rate.
type Limiter struct {
	hz uint64

	// the expected duration of one batch of cycles
	period time.Duration

	count int
	start time.Time

	// the number of batches since start
	batches int64
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero means the limiter never waits.
func NewLimiter(hz uint64) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(hz)
	return lim
}

// SetLimit changes the target rate. Measurement begins again from the next
// call to Tick().
func (lim *Limiter) SetLimit(hz uint64) {
	lim.hz = hz
	if hz > 0 {
		lim.period = time.Duration(float64(time.Second) * batch / float64(hz))
	}
	lim.count = 0
	lim.batches = 0
	lim.start = time.Time{}
}

// Limit returns the target rate.
func (lim *Limiter) Limit() uint64 {
	return lim.hz
}

// Tick should be called once per simulated cycle.
func (lim *Limiter) Tick() {
	if lim.hz == 0 {
		return
	}

	if lim.start.IsZero() {
		lim.start = time.Now()
	}

	lim.count++
	if lim.count < batch {
		return
	}
	lim.count = 0
	lim.batches++

	// sleeping against the start time rather than the previous batch means
	// that errors in the sleep duration do not accumulate
	ahead := time.Duration(lim.batches)*lim.period - time.Since(lim.start)
	if ahead > 0 {
		time.Sleep(ahead)
	}
}
