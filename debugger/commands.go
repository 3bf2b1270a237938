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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/timefuse/timefuse/curated"
	"github.com/timefuse/timefuse/debugger/terminal"
	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/session"
)

// Sentinal error messages for the parseCommand function.
const (
	UnknownCommand  = "unknown command %s (HELP for the list)"
	MissingArgument = "%s requires an argument"
	BadArgument     = "%s: %s is not a number"
)

const helpText = `STEP [n]       execute one instruction (or n instructions)
RUN            step on a timer until the bomb defuses or explodes
RESET <n>      rearm the bomb with the player register set to n
LIST           show the program around the stored lines and the pc
REGS           show the registers
TOOLTIP <line> describe the instruction at the given line
LEVELS         list the built-in levels
VIZ <file>     write the session state graph to file in dot format
HELP           this text
QUIT           leave the debugger`

// parseCommand dispatches one line of input. An empty line steps; this is
// what makes "watching the bomb" a matter of leaning on the return key.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		tokens = []string{"STEP"}
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "STEP", "S":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil {
				return curated.Errorf(BadArgument, command, args[0])
			}
		}
		for i := 0; i < n; i++ {
			if !dbg.sess.Step() {
				dbg.term.TermPrintLine(terminal.StyleHelp, "game over. RESET to go again")
				return nil
			}
			dbg.printState()
		}

	case "RUN", "R":
		if dbg.sess.Status() == session.Won || dbg.sess.Status() == session.Lost {
			dbg.term.TermPrintLine(terminal.StyleHelp, "game over. RESET to go again")
			return nil
		}
		dbg.run()

	case "RESET":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, command, args[0])
		}
		dbg.sess.Reset(v)
		dbg.printListing()

	case "LIST", "L":
		dbg.printListing()

	case "REGS":
		dbg.term.TermPrintLine(terminal.StyleRegister, dbg.sess.Registers().String())

	case "TOOLTIP", "T":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		line, err := strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, command, args[0])
		}
		ins := dbg.sess.Instruction(line)
		dbg.term.TermPrintLine(terminal.StyleInstruction, ins.String())
		dbg.term.TermPrintLine(terminal.StyleHelp, instructions.Tooltip(ins))

	case "LEVELS":
		for _, lvl := range levels.List() {
			dbg.term.TermPrintLine(terminal.StyleNormal, lvl.Name)
			dbg.term.TermPrintLine(terminal.StyleHelp, lvl.Description)
		}

	case "VIZ":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, dbg.sess)
		dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("session graph written to %s", args[0]))

	case "HELP", "H":
		dbg.term.TermPrintLine(terminal.StyleHelp, helpText)

	case "QUIT", "Q":
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

// printState shows the result of a step: the registers and, if the game has
// ended, the verdict.
func (dbg *Debugger) printState() {
	dbg.term.TermPrintLine(terminal.StyleInstruction,
		fmt.Sprintf("pc=%d  %s", dbg.sess.PC(), dbg.sess.Instruction(dbg.sess.PC())))
	dbg.term.TermPrintLine(terminal.StyleRegister, dbg.sess.Registers().String())

	switch dbg.sess.Status() {
	case session.Won:
		dbg.term.TermPrintLine(terminal.StyleWon, "the bomb is defused")
	case session.Lost:
		dbg.term.TermPrintLine(terminal.StyleLost, "the bomb explodes")
	}
}

// printListing shows the viewport.
func (dbg *Debugger) printListing() {
	b := strings.Builder{}
	dbg.sess.WriteListing(&b)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		dbg.term.TermPrintLine(terminal.StyleNormal, line)
	}
}
