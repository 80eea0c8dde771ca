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

package terminal_test

import (
	"testing"

	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		PC:      0x100,
		Content: "addik   r3, r0, 5 ",
	}
	test.ExpectEquality(t, p.String(), "[ 00000100 addik   r3, r0, 5 ] >> ")

	p.Label = "main+0x4"
	test.ExpectEquality(t, p.String(), "[ 00000100 <main+0x4> addik   r3, r0, 5 ] >> ")

	p.Type = terminal.PromptTypeStopped
	p.Label = ""
	p.Content = ""
	test.ExpectEquality(t, p.String(), "[ 00000100 ] (stopped) >> ")

	p.Type = terminal.PromptTypeConfirm
	p.Content = "are you sure? "
	test.ExpectEquality(t, p.String(), "are you sure? ")
}

func TestStyle(t *testing.T) {
	test.ExpectEquality(t, terminal.StyleError.String(), "error")
	test.ExpectEquality(t, terminal.Style(100).String(), "unknown style")
}
