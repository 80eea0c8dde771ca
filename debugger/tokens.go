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

package debugger

import (
	"fmt"
	"strings"
)

// tokens is the user input divided into words
type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// remainder returns the tokens that have not yet been read, as a string
func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// remaining returns the number of tokens that have not yet been read
func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk tokens) num() int {
	return len(tk.tokens)
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func (tk *tokens) unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// tokeniseInput divides the input into tokens. hex values written with a
// leading $ are normalised to the 0x notation
func tokeniseInput(input string) *tokens {
	tk := &tokens{
		tokens: strings.Fields(input),
	}

	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' && len(tk.tokens[i]) > 1 {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}

// splitCommands divides the input into separate commands. commands are
// separated by a semi-colon
func splitCommands(input string) []string {
	cmds := make([]string, 0, 1)
	for _, c := range strings.Split(input, ";") {
		c = strings.TrimSpace(c)
		if c != "" {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
