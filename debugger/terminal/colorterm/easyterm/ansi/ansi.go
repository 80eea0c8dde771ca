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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colours
var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi attributes
var attributes = map[string]int{
	"bold":      1,
	"dim":       2,
	"italic":    3,
	"underline": 4,
	"inverse":   7,
}

// ansi target
const (
	targetPen       = 30
	targetPaper     = 40
	targetBrightPen = 90
)

// Pens is the table of bright colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of normal intensity colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	for c := range colours {
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}
	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background colour and attribute. Empty strings leave the
// corresponding part of the pen unchanged.
func ColorBuild(pen string, paper string, attribute string, brightPen bool) (string, error) {
	p := make([]string, 0, 3)

	if pen != "" {
		c, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		if brightPen {
			p = append(p, fmt.Sprintf("%d", targetBrightPen+c))
		} else {
			p = append(p, fmt.Sprintf("%d", targetPen+c))
		}
	}

	if paper != "" {
		c, ok := colours[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		p = append(p, fmt.Sprintf("%d", targetPaper+c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		p = append(p, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(p, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
