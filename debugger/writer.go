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
	"strings"

	"github.com/fireworks-sim/fireworks/debugger/terminal"
)

// termWriter implements io.Writer and sends each complete line to the
// terminal in the given style. an incomplete line is held until the rest of
// the line is written or the writer is flushed
type termWriter struct {
	term    terminal.Output
	style   terminal.Style
	partial strings.Builder
}

func (dbg *Debugger) writer(style terminal.Style) *termWriter {
	return &termWriter{
		term:  dbg.term,
		style: style,
	}
}

func (tw *termWriter) Write(p []byte) (int, error) {
	tw.partial.Write(p)

	s := tw.partial.String()
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return len(p), nil
	}

	for _, l := range strings.Split(s[:i], "\n") {
		tw.term.TermPrintLine(tw.style, l)
	}

	tw.partial.Reset()
	tw.partial.WriteString(s[i+1:])

	return len(p), nil
}

// flush any incomplete line to the terminal
func (tw *termWriter) flush() {
	if tw.partial.Len() > 0 {
		tw.term.TermPrintLine(tw.style, tw.partial.String())
		tw.partial.Reset()
	}
}
