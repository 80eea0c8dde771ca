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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/hardware"
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
)

// sentinal error returned by the continue check when time is up
var timedOut = errors.New("performance timed out")

// Result of a performance check.
type Result struct {
	Duration     time.Duration
	Cycles       uint64
	Instructions uint64

	// number of times the program ran to completion and was restarted
	Restarts int
}

// CyclesPerSecond is the simulated clock rate.
func (r Result) CyclesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MHz (%d cycles, %d instructions in %.2f seconds, %d restarts)",
		r.CyclesPerSecond()/1000000, r.Cycles, r.Instructions, r.Duration.Seconds(), r.Restarts)
}

// Check the performance of the simulator by running the program already
// loaded into the System for the duration. If the program stops before time
// is up then the System is restarted and the program is run again. A
// program that reaches a breakpoint is an error.
func Check(output io.Writer, profile Profile, sys *hardware.System, duration time.Duration) (Result, error) {
	var res Result

	runner := func() error {
		done := time.After(duration)
		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
		}()

		// only check for the end of the measurement every PerformanceBrake
		// cycles. checking the channel is relatively expensive
		brake := 0

		check := func() (bool, error) {
			brake++
			if brake < hardware.PerformanceBrake {
				return true, nil
			}
			brake = 0
			select {
			case <-done:
				return false, timedOut
			default:
			}
			return true, nil
		}

		for {
			st, err := sys.Run(check)
			res.Cycles += sys.Cycles()
			res.Instructions += sys.CPU.Instructions()
			if err != nil {
				return err
			}

			switch st {
			case execution.RunNormal:
				// the system was halted
				return nil
			case execution.RunBreakpoint:
				return curated.Errorf(ProfileError, "program reached a breakpoint")
			case execution.RunStopped:
				res.Restarts++
				sys.Restart()
			}
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, err
	}

	fmt.Fprintln(output, res)

	return res, nil
}
