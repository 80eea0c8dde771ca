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
	"path/filepath"
)

// ResourcePath returns the path to a file in the configuration directory. The
// subPth argument is a directory, or a path of directories, below the base
// configuration directory. The directory will be created if it does not exist.
//
// Both subPth and file can be empty. If file is empty then the path to the
// directory is returned.
func ResourcePath(subPth string, file string) (string, error) {
	basePth, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePth, file), nil
}
