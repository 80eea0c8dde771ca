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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// Packages in the simulator declare the patterns they use as exported
// constants. Callers test for a pattern with Is():
//
//	const UnmappedAddress = "memory: address %08x is not mapped"
//
//	err := curated.Errorf(UnmappedAddress, addr)
//	if curated.Is(err, UnmappedAddress) {
//		...
//	}
//
// Has() is like Is() but searches the whole chain of curated errors. Given:
//
//	f := curated.Errorf("cpu: %v", err)
//
// Is(f, UnmappedAddress) is false but Has(f, UnmappedAddress) is true.
//
// IsAny() answers whether the error was created by curated.Errorf() at all.
// We can think of curated errors as "expected" errors and all other errors as
// "unexpected".
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means a
// function can always prefix its own context without worrying whether the
// error it received already has the same prefix:
//
//	memory: memory: address 00002000 is not mapped
//
// is reported as:
//
//	memory: address 00002000 is not mapped
package curated
