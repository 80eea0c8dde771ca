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

import "sync"

// Shared allows a System to be used from more than one goroutine. All access
// to the System goes through Borrow().
type Shared struct {
	crit sync.Mutex
	sys  *System
}

// NewShared is the preferred method of initialisation for the Shared type.
func NewShared(sys *System) *Shared {
	return &Shared{sys: sys}
}

// Borrow gives the provided function the critical section and access to the
// System. The System must not be retained after the function returns.
func (sh *Shared) Borrow(f func(*System) error) error {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	return f(sh.sys)
}

// Halt stops the System if it is running. It does not need the critical
// section.
func (sh *Shared) Halt() {
	sh.sys.Halt()
}
