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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it
// provides the small amount of terminal mode juggling the colorterm
// implementation needs: switching between canonical mode and cbreak mode
// and back again on cleanup.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the container for a posix terminal. usually embedded in other
// struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct.
func (et *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return fmt.Errorf("easyterm requires an input and an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// remember canonical attributes so CleanUp can restore them
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return err
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (et *Terminal) CleanUp() {
	et.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// CBreakMode puts terminal into cbreak mode: one keypress at a time, no
// local echo.
func (et *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Print writes the formatted string to the output file.
func (et *Terminal) Print(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
}

// ReadRune reads a single byte from the input file. The name is historic;
// multi-byte input is handled a byte at a time.
func (et *Terminal) ReadRune() (byte, error) {
	b := make([]byte, 1)
	n, err := et.input.Read(b)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("easyterm read no bytes")
	}
	return b[0], nil
}
