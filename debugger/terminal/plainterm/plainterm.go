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

// Package plainterm implements the Terminal interface for the timefuse
// debugger. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/timefuse/timefuse/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. Suitable for
// piped input as well as interactive use.
type PlainTerminal struct {
	input     *bufio.Reader
	output    io.Writer
	realInput bool
}

// NewTerminal creates a plain terminal over stdin/stdout.
func NewTerminal() *PlainTerminal {
	return &PlainTerminal{}
}

// NewScriptedTerminal creates a plain terminal over arbitrary reader/writer
// pairs. Used by the tests.
func NewScriptedTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = bufio.NewReader(os.Stdin)
		pt.output = os.Stdout
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	// only show the prompt when a human is on the other end. scripted input
	// does not want its output cluttered.
	if pt.realInput {
		fmt.Fprint(pt.output, prompt)
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(strings.TrimSpace(s)) > 0 {
			return strings.TrimSpace(s), nil
		}
		return "", err
	}

	return strings.TrimSpace(s), nil
}
