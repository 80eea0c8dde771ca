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
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/fireworks-sim/fireworks/curated"
)

// LoadImage writes a flat binary image to memory starting at the origin
// address. The image is a sequence of big-endian words. A short final word is
// padded with zero bytes. Returns the number of words written.
func (sys *System) LoadImage(r io.Reader, origin uint32) (int, error) {
	if origin&0x03 != 0 {
		return 0, curated.Errorf(LoadError, origin, "origin is not word aligned")
	}

	br := bufio.NewReader(r)
	address := origin
	n := 0

	var buf [4]byte
	for {
		c, err := io.ReadFull(br, buf[:])
		if c == 0 && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
			break
		}
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return n, curated.Errorf(LoadError, origin, err)
		}
		clear(buf[c:])

		if err := sys.Mem.PokeWord(address, binary.BigEndian.Uint32(buf[:])); err != nil {
			return n, curated.Errorf(LoadError, origin, err)
		}
		address += 4
		n++

		if c < len(buf) {
			break
		}
	}

	return n, nil
}

// LoadWords writes the words to memory starting at the origin address.
func (sys *System) LoadWords(origin uint32, words ...uint32) error {
	for i, w := range words {
		if err := sys.Mem.PokeWord(origin+uint32(i)*4, w); err != nil {
			return curated.Errorf(LoadError, origin, err)
		}
	}
	return nil
}
