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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// the timestamp part of a unique filename
const uniqueLayout = "20060102_150405"

// UniqueFilename returns a filename made from the prepend string, the label
// and the current time. The label can be empty. For example:
//
//	memviz_cpu_20261014_101500
func UniqueFilename(prepend string, label string) string {
	timestamp := time.Now().Format(uniqueLayout)

	if label = strings.TrimSpace(label); label == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, label, timestamp)
}
