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

//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch writes a message to output explaining that the statistics server is
// not in this build. The returned function does nothing.
func Launch(output io.Writer) func() {
	fmt.Fprintln(output, "stats server not available in this build (use the statsview build tag)")
	return func() {}
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return false
}
