// This file is part of Timefuse.
//
// Timefuse is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Timefuse is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Timefuse.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm implements the Terminal interface for the timefuse
// debugger. It embellishes the plain terminal with colour and reads input
// one keypress at a time, which allows single key editing shortcuts.
package colorterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/timefuse/timefuse/debugger/terminal"
	"github.com/timefuse/timefuse/debugger/terminal/colorterm/easyterm"
)

// ansi pens for each output style
const (
	penNormal = "\033[0m"
	penCyan   = "\033[36m"
	penYellow = "\033[33m"
	penGreen  = "\033[32;1m"
	penRed    = "\033[31;1m"
	penDimmed = "\033[2m"
	penPrompt = "\033[34;1m"
)

// ColorTerm implements the Terminal interface for color enabled terminals.
type ColorTerm struct {
	easyterm.Terminal
}

// NewTerminal creates a color terminal over stdin/stdout.
func NewTerminal() *ColorTerm {
	return &ColorTerm{}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerm) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerm) CleanUp() {
	ct.Terminal.CleanUp()
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerm) TermPrintLine(style terminal.Style, s string) {
	pen := penNormal
	switch style {
	case terminal.StyleHelp:
		pen = penDimmed
	case terminal.StyleInstruction:
		pen = penCyan
	case terminal.StyleRegister:
		pen = penYellow
	case terminal.StyleWon:
		pen = penGreen
	case terminal.StyleLost, terminal.StyleError:
		pen = penRed
	}
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	ct.Print("%s%s%s\n", pen, s, penNormal)
}

// TermRead implements the terminal.Input interface. Input is read a
// keypress at a time in cbreak mode; a bare space steps the machine
// without waiting for a newline.
func (ct *ColorTerm) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.Print("%s%s%s", penPrompt, prompt, penNormal)

	input := strings.Builder{}

	for {
		b, err := ct.ReadRune()
		if err != nil {
			ct.Print("\n")
			return "", err
		}

		switch b {
		case 3, 4: // ctrl-c, ctrl-d
			ct.Print("\n")
			return "", io.EOF

		case '\n', '\r':
			ct.Print("\n")
			return strings.TrimSpace(input.String()), nil

		case 127, 8: // delete, backspace
			s := input.String()
			if len(s) > 0 {
				input.Reset()
				input.WriteString(s[:len(s)-1])
				ct.Print("\b \b")
			}

		case ' ':
			// a space on an empty line is the step shortcut
			if input.Len() == 0 {
				ct.Print("\n")
				return "STEP", nil
			}
			input.WriteByte(b)
			ct.Print(" ")

		default:
			if b >= 32 && b < 127 {
				input.WriteByte(b)
				ct.Print("%c", b)
			}
		}
	}
}
