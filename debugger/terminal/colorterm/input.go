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

package colorterm

import (
	"io"
	"os"
	"unicode"

	"github.com/fireworks-sim/fireworks/curated"
	"github.com/fireworks-sim/fireworks/debugger/terminal"
	"github.com/fireworks-sim/fireworks/debugger/terminal/colorterm/easyterm"
	"github.com/fireworks-sim/fireworks/debugger/terminal/colorterm/easyterm/ansi"
)

// the result of reading a single rune from the input
type readRune struct {
	r   rune
	err error
}

// runeReader reads runes from an io.RuneReader and sends them over a channel.
// this allows reading to be interrupted by another event
func runeReader(r io.RuneReader) chan readRune {
	c := make(chan readRune)
	go func() {
		for {
			v, _, err := r.ReadRune()
			c <- readRune{r: v, err: err}
			if err != nil {
				return
			}
		}
	}()
	return c
}

// editor is a line editor with history and tab completion
type editor struct {
	history       [][]rune
	tabCompletion terminal.TabCompletion

	// output of the editor. the prompt and the line being edited are redrawn
	// after every key
	print func(string)

	// style of the prompt
	promptPen string
}

// addHistory appends the line to the history if it is not the same as the
// most recent entry
func (ed *editor) addHistory(line []rune) {
	if len(line) == 0 {
		return
	}
	if len(ed.history) > 0 && string(ed.history[len(ed.history)-1]) == string(line) {
		return
	}
	ed.history = append(ed.history, append([]rune{}, line...))
}

func (ed *editor) read(prompt string, input chan readRune, events *terminal.ReadEvents) (string, error) {
	var interrupt chan os.Signal
	if events != nil {
		interrupt = events.Interrupt
	}

	buf := make([]rune, 0, 80)
	cursor := 0

	// the history entry being edited. buffer holds the input at the time
	// the history was first scrolled
	history := len(ed.history)
	var buffered []rune

	promptLen := len([]rune(prompt))

	redraw := func() {
		ed.print("\r" + ansi.ClearLine + ed.promptPen + prompt + ansi.NormalPen + string(buf) + "\r" + ansi.CursorMove(promptLen+cursor))
	}

	recall := func(line []rune) {
		buf = append(buf[:0], line...)
		cursor = len(buf)
	}

	if ed.tabCompletion != nil {
		ed.tabCompletion.Reset()
	}

	for {
		redraw()

		var rr readRune
		select {
		case rr = <-input:
		case sig := <-interrupt:
			ed.print("\n")
			return "", events.SignalHandler(sig)
		}

		if rr.err != nil {
			return "", rr.err
		}

		if rr.r != easyterm.KeyTab && ed.tabCompletion != nil {
			ed.tabCompletion.Reset()
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ed.tabCompletion != nil {
				s := []rune(ed.tabCompletion.Complete(string(buf[:cursor])))
				buf = append(s, buf[cursor:]...)
				cursor = len(s)
			}

		case easyterm.KeyInterrupt:
			ed.print("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOT:
			if len(buf) == 0 {
				ed.print("\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ed.addHistory(buf)
			ed.print("\n")
			return string(buf), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				buf = append(buf[:cursor-1], buf[cursor:]...)
				cursor--
				history = len(ed.history)
			}

		case easyterm.KeyEsc:
			rr = <-input
			if rr.err != nil {
				return "", rr.err
			}
			if rr.r != easyterm.EscCursor {
				continue
			}
			rr = <-input
			if rr.err != nil {
				return "", rr.err
			}

			switch rr.r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ed.history) {
						buffered = append([]rune{}, buf...)
					}
					history--
					recall(ed.history[history])
				}
			case easyterm.CursorDown:
				if history < len(ed.history)-1 {
					history++
					recall(ed.history[history])
				} else if history == len(ed.history)-1 {
					history++
					recall(buffered)
				}
			case easyterm.CursorForward:
				if cursor < len(buf) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(buf)
			case easyterm.CursorDelete:
				// the delete sequence is terminated with a tilde
				rr = <-input
				if rr.err != nil {
					return "", rr.err
				}
				if cursor < len(buf) {
					buf = append(buf[:cursor], buf[cursor+1:]...)
					history = len(ed.history)
				}
			}

		default:
			if unicode.IsPrint(rr.r) {
				buf = append(buf, 0)
				copy(buf[cursor+1:], buf[cursor:])
				buf[cursor] = rr.r
				cursor++
				history = len(ed.history)
			}
		}
	}
}
