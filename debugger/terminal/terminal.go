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

// Package terminal defines the interface between the debugger and whatever
// is reading the player's commands and printing the bomb's progress. Two
// implementations are provided in the plainterm and colorterm sub-packages.
package terminal

// Style hints at how a line of output should be presented. Implementations
// are free to ignore styles they cannot express.
type Style int

// List of valid Style values.
const (
	StyleNormal Style = iota
	StyleHelp
	StyleInstruction
	StyleRegister
	StyleWon
	StyleLost
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one line of input. The prompt may or may not be
	// displayed depending on the implementation.
	TermRead(prompt string) (string, error)
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. used to make
	// sure a raw mode terminal is returned to canonical mode.
	CleanUp()
}
