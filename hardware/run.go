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

package hardware

import (
	"github.com/fireworks-sim/fireworks/hardware/cpu/execution"
	"github.com/fireworks-sim/fireworks/hardware/cpu/instructions"
)

// While the continueCheck() function only runs at the end of a cycle it can
// still be expensive to do a full continue check every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// resume is called at the start of every run function. a breakpoint that
// stopped the previous run is released so that the wrapped instruction can
// execute. returns false if the program has already stopped
func (sys *System) resume() bool {
	sys.halt.Store(false)
	switch sys.status {
	case execution.RunStopped:
		return false
	case execution.RunBreakpoint:
		sys.CPU.ReleaseBreakpoint()
		sys.status = execution.RunNormal
	}
	return true
}

// halted returns true if Halt() has been called since the run started
func (sys *System) halted() bool {
	return sys.halt.Load()
}

// Run the system until the program stops, a breakpoint is reached or the
// continueCheck() function returns false. A nil continueCheck() is the same
// as one that always returns true.
func (sys *System) Run(continueCheck func() (bool, error)) (execution.RunStatus, error) {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	if !sys.resume() {
		return sys.status, nil
	}

	for !sys.halted() {
		if sys.Cycle() != execution.RunNormal {
			break
		}
		ok, err := continueCheck()
		if err != nil {
			return sys.status, err
		}
		if !ok {
			break
		}
	}

	return sys.status, nil
}

// Continue runs the system until the status is no longer normal.
func (sys *System) Continue() execution.RunStatus {
	st, _ := sys.Run(nil)
	return st
}

// RunCycles runs the system for the number of cycles or until the status is
// no longer normal.
func (sys *System) RunCycles(n uint64) execution.RunStatus {
	if !sys.resume() {
		return sys.status
	}

	for i := uint64(0); i < n && !sys.halted(); i++ {
		if sys.Cycle() != execution.RunNormal {
			break
		}
	}

	return sys.status
}

// RunInstructions runs the system until the number of instructions have
// retired or the status is no longer normal.
func (sys *System) RunInstructions(n uint64) execution.RunStatus {
	if !sys.resume() {
		return sys.status
	}

	target := sys.CPU.Instructions() + n
	for sys.CPU.Instructions() < target && !sys.halted() {
		if sys.Cycle() != execution.RunNormal {
			break
		}
	}

	return sys.status
}

// Step runs the system until one more instruction has retired and the
// instruction in the execute slot is not a pipeline bubble. After a
// successful Step() the execute slot holds the next instruction to execute.
func (sys *System) Step() execution.RunStatus {
	if !sys.resume() {
		return sys.status
	}

	target := sys.CPU.Instructions() + 1
	for !sys.halted() {
		if sys.Cycle() != execution.RunNormal {
			break
		}
		if sys.CPU.Instructions() >= target && !instructions.IsEmpty(sys.CPU.StageInstruction(instructions.ExecuteStage)) {
			break
		}
	}

	return sys.status
}

// RunToAddress runs the system until the instruction at the address reaches
// the execute slot or the status is no longer normal. At least one cycle is
// always run.
func (sys *System) RunToAddress(address uint32) execution.RunStatus {
	if !sys.resume() {
		return sys.status
	}

	for !sys.halted() {
		if sys.Cycle() != execution.RunNormal {
			break
		}
		ex := sys.CPU.StageInstruction(instructions.ExecuteStage)
		if !instructions.IsEmpty(ex) && ex.PC() == address {
			break
		}
	}

	return sys.status
}
