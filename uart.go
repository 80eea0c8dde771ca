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

package main

import (
	"bufio"
	"os"
	"time"

	"github.com/fireworks-sim/fireworks/hardware/peripherals/uartlite"
	"golang.org/x/term"
)

// how long to wait before offering a byte to a full receive queue again
const uartRetry = time.Millisecond

// uartInput sends bytes read from input to the uart receive queue. If the
// input is an interactive terminal then it is put into cbreak mode so that
// each key is sent as soon as it is pressed.
//
// The returned function stops the input and restores the terminal. The
// goroutine reading the input may remain blocked in a read until the next
// byte arrives.
func uartInput(uart *uartlite.UARTLite, input *os.File) func() {
	restore := func() {}
	if term.IsTerminal(int(input.Fd())) {
		restore = cbreak(input)
	}

	done := make(chan bool)
	go func() {
		r := bufio.NewReader(input)
		for {
			// a read error, including io.EOF, ends the input
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			for uart.Receive([]byte{b}) == 0 {
				select {
				case <-done:
					return
				case <-time.After(uartRetry):
				}
			}
			select {
			case <-done:
				return
			default:
			}
		}
	}()

	return func() {
		close(done)
		restore()
	}
}
