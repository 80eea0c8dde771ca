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

package test

import "strings"

// CompareWriter implements io.Writer. Output is accumulated and can be
// compared against an expected string.
type CompareWriter struct {
	strings.Builder
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.Reset()
}

// Compare returns true if the buffered output is equal to s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// Lines returns the buffered output divided into lines. A trailing newline
// does not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
