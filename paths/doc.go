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

// Package paths contains functions to prepare paths to the simulator's
// configuration files.
//
// The ResourcePath() function prepends the configuration directory to the
// requested resource. For example, the following returns the path to the
// hardware configuration file:
//
//	pth, err := paths.ResourcePath("", "hardware")
//
// Development builds use the ".fireworks" directory in the current working
// directory. Builds with the release tag use the user's configuration
// directory as returned by os.UserConfigDir(). On a Linux system the path in
// the example above will be:
//
//	/home/user/.config/fireworks/hardware
//
// Because this package handles project specific details it should be used
// instead of the Go standard path packages for configuration files.
package paths
